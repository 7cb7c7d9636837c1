package serving

// modelNotFoundError signals a type absent from the registry for 400 mapping.
type modelNotFoundError struct{ modelType string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.modelType }

// ErrModelNotFound returns an error when a requested model type is not present in the registry.
func ErrModelNotFound(modelType string) error { return modelNotFoundError{modelType: modelType} }

// IsModelNotFound reports whether the error indicates a missing model type.
func IsModelNotFound(err error) bool {
	_, ok := err.(modelNotFoundError)
	return ok
}

// predictionError wraps a classifier failure for 500 mapping.
type predictionError struct {
	modelType string
	err       error
}

// ErrPredictionFailure wraps a classifier failure for the given model type.
func ErrPredictionFailure(modelType string, err error) error {
	return predictionError{modelType: modelType, err: err}
}

func (e predictionError) Error() string {
	return "prediction failed for " + e.modelType + ": " + e.err.Error()
}

func (e predictionError) Unwrap() error { return e.err }

// IsPredictionFailure reports whether err came from the inference boundary.
func IsPredictionFailure(err error) bool {
	_, ok := err.(predictionError)
	return ok
}
