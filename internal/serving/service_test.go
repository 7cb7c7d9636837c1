package serving

import (
	"context"
	"errors"
	"testing"

	"irisd/internal/registry"
	"irisd/pkg/types"
)

// stubClassifier returns a fixed class index, an error, or panics.
type stubClassifier struct {
	index    int
	err      error
	panicMsg string
}

func (s stubClassifier) Predict(features []float64) (int, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.index, s.err
}

func newService(bundles ...registry.Bundle) *Service {
	return New(registry.New(bundles))
}

func sample() types.Features {
	return types.Features{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2}
}

func TestPredict_MapsIndexToLabel(t *testing.T) {
	svc := newService(registry.Bundle{Type: "tree", Model: stubClassifier{index: 0}})
	pred, err := svc.Predict(context.Background(), "tree", sample())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if pred.ModelType != "tree" || pred.Prediction != 0 || pred.PredictedType != "setosa" {
		t.Fatalf("unexpected prediction: %+v", pred)
	}
	if pred.Features != sample() {
		t.Fatalf("features not echoed: %+v", pred.Features)
	}
}

func TestPredict_ModelNotFound(t *testing.T) {
	svc := newService(registry.Bundle{Type: "tree", Model: stubClassifier{}})
	_, err := svc.Predict(context.Background(), "forest", sample())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsModelNotFound(err) {
		t.Fatalf("expected model-not-found, got %v", err)
	}
	if IsPredictionFailure(err) {
		t.Fatal("not-found must not read as a prediction failure")
	}
}

func TestPredict_ClassifierError(t *testing.T) {
	svc := newService(registry.Bundle{Type: "tree", Model: stubClassifier{err: errors.New("bad table")}})
	_, err := svc.Predict(context.Background(), "tree", sample())
	if !IsPredictionFailure(err) {
		t.Fatalf("expected prediction failure, got %v", err)
	}
}

func TestPredict_ClassifierPanicRecovered(t *testing.T) {
	svc := newService(registry.Bundle{Type: "tree", Model: stubClassifier{panicMsg: "boom"}})
	_, err := svc.Predict(context.Background(), "tree", sample())
	if !IsPredictionFailure(err) {
		t.Fatalf("expected prediction failure, got %v", err)
	}
}

func TestPredict_IndexOutsideEnumeration(t *testing.T) {
	svc := newService(registry.Bundle{Type: "tree", Model: stubClassifier{index: 7}})
	_, err := svc.Predict(context.Background(), "tree", sample())
	if !IsPredictionFailure(err) {
		t.Fatalf("expected prediction failure for index 7, got %v", err)
	}
}

func TestPredict_CanceledContext(t *testing.T) {
	svc := newService(registry.Bundle{Type: "tree", Model: stubClassifier{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Predict(ctx, "tree", sample()); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestListModelsAndReady(t *testing.T) {
	svc := newService(
		registry.Bundle{Type: "tree", Metrics: map[string]float64{"accuracy": 0.95}, Model: stubClassifier{}},
		registry.Bundle{Type: "logreg", Model: stubClassifier{}},
	)
	infos := svc.ListModels()
	if len(infos) != 2 || infos[0].Type != "tree" || infos[1].Type != "logreg" {
		t.Fatalf("unexpected listing: %+v", infos)
	}
	if !svc.Ready() {
		t.Fatal("expected ready")
	}
}
