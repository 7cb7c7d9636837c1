package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"irisd/internal/serving"
	"irisd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListModels() []types.ModelInfo
	Predict(ctx context.Context, modelType string, features types.Features) (types.Prediction, error)
	Ready() bool
}

// NewMux builds the router: the three envelope endpoints plus the
// operational surfaces (healthz, readyz, metrics, docs).
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(requestLogger)
	r.Use(MetricsMiddleware)

	r.Get("/", handleIndex)
	r.Get("/models", handleListModels(svc))
	r.Post("/models/{type}", handlePredict(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleIndex returns the static welcome message.
//
// @Summary      Root endpoint
// @Tags         general
// @Produce      json
// @Success      200 {object} types.Envelope
// @Router       / [get]
func handleIndex(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusOK, http.StatusText(http.StatusOK), map[string]string{
		"message": "Welcome to the iris classifier! Please, read the `/docs`!",
	})
}

// handleListModels returns the projection of every loaded bundle, in load
// order. An empty registry is a valid, non-error result.
//
// @Summary      List available models
// @Tags         prediction
// @Produce      json
// @Success      200 {object} types.Envelope{data=[]types.ModelInfo}
// @Router       /models [get]
func handleListModels(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, r, http.StatusOK, http.StatusText(http.StatusOK), svc.ListModels())
	}
}

// handlePredict classifies iris flowers based on sepal and petal sizes.
//
// @Summary      Classify a flower
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Param        type     path  string               true  "model type"
// @Param        payload  body  types.PredictRequest true  "flower measurements"
// @Success      200 {object} types.Envelope{data=types.Prediction}
// @Failure      400 {object} types.Envelope
// @Failure      422 {object} types.Envelope
// @Router       /models/{type} [post]
func handlePredict(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeError(w, r, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		// Limit body size (configurable, default 1MiB)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid JSON body")
			return
		}
		modelType := chi.URLParam(r, "type")
		if msg := req.Validate(); msg != "" {
			observePredictionFailure(modelType, "invalid")
			writeError(w, r, http.StatusUnprocessableEntity, msg)
			return
		}

		start := time.Now()
		// Join server base context with request context so shutdown cancels
		// in-flight work too.
		joined, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		pred, err := svc.Predict(joined, modelType, req.Features())
		if err != nil {
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status := http.StatusInternalServerError
			msg := err.Error()
			reason := "error"
			switch {
			case serving.IsModelNotFound(err):
				status = http.StatusBadRequest
				msg = "Model not found"
				reason = "not_found"
			case serving.IsPredictionFailure(err):
				reason = "prediction"
			default:
				if he, ok := err.(HTTPError); ok {
					status = he.StatusCode()
				}
			}
			observePredictionFailure(modelType, reason)
			logPredict(r, modelType, status, time.Since(start), err)
			writeError(w, r, status, msg)
			return
		}
		observePrediction(pred.ModelType, pred.PredictedType)
		logPredict(r, modelType, http.StatusOK, time.Since(start), nil)
		writeEnvelope(w, r, http.StatusOK, http.StatusText(http.StatusOK), pred)
	}
}
