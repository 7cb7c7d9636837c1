// Package serving sits between the registry and the HTTP layer: it resolves
// model types, runs predictions behind an error boundary, and maps class
// indices to species labels.
package serving

import (
	"context"
	"fmt"

	"irisd/internal/classifier"
	"irisd/internal/registry"
	"irisd/pkg/types"
)

// Service answers model listing and prediction requests against an
// immutable registry.
type Service struct {
	reg *registry.Registry
}

// New builds a Service over an already-loaded registry.
func New(reg *registry.Registry) *Service {
	return &Service{reg: reg}
}

// ListModels returns the registry's client-facing projection in load order.
func (s *Service) ListModels() []types.ModelInfo {
	return s.reg.List()
}

// Ready reports whether the service can answer predictions.
func (s *Service) Ready() bool {
	return s.reg != nil
}

// Predict resolves the bundle for modelType and classifies the given
// measurements. Classifier errors and panics are wrapped as prediction
// errors so the HTTP layer can map them to a server-error response instead
// of crashing the request.
func (s *Service) Predict(ctx context.Context, modelType string, features types.Features) (types.Prediction, error) {
	var out types.Prediction
	if err := ctx.Err(); err != nil {
		return out, err
	}
	b, ok := s.reg.Find(modelType)
	if !ok {
		return out, ErrModelNotFound(modelType)
	}
	index, err := safePredict(b.Model, features.Vector())
	if err != nil {
		return out, ErrPredictionFailure(modelType, err)
	}
	label, err := classifier.SpeciesName(index)
	if err != nil {
		return out, ErrPredictionFailure(modelType, err)
	}
	out = types.Prediction{
		ModelType:     b.Type,
		Features:      features,
		Prediction:    index,
		PredictedType: label,
	}
	return out, nil
}

// safePredict invokes the classifier behind a recover boundary.
func safePredict(c classifier.Classifier, features []float64) (index int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()
	return c.Predict(features)
}
