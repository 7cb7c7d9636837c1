package main

// General API documentation for swaggo. Regenerate with `swag init` before
// building with -tags=swagger.
//
// @title           irisd API
// @version         1.0
// @description     HTTP API for classifying iris flowers with pre-trained models.
//
// @BasePath  /
//
// @schemes http
