// Package registry loads serialized model bundles from disk once at startup
// and serves read-only views of them to the rest of the process.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"irisd/internal/classifier"
	"irisd/internal/common/fsutil"
	"irisd/pkg/types"
)

// bundleExt is the recognized model-bundle file extension.
const bundleExt = ".json"

// Bundle is one loaded model: its identifying type, the hyperparameters it
// was trained with, its evaluation metrics, and the classifier itself.
// Bundles are immutable after load.
type Bundle struct {
	Type    string
	Params  map[string]any
	Metrics map[string]float64
	Model   classifier.Classifier
}

// bundleFile is the on-disk schema of a bundle document.
type bundleFile struct {
	Type    string             `json:"type"`
	Params  map[string]any     `json:"params"`
	Metrics map[string]float64 `json:"metrics"`
	Model   modelSpec          `json:"model"`
}

// modelSpec names the algorithm and carries its learned parameters verbatim
// for the matching decoder.
type modelSpec struct {
	Algorithm string          `json:"algorithm"`
	Params    json.RawMessage `json:"params"`
}

// Registry is the in-memory bundle collection. It is populated exactly once
// by LoadDir and never mutated while serving, so handlers share it without
// locking.
type Registry struct {
	bundles []Bundle
}

// New builds a registry from already-decoded bundles, in the given order.
func New(bundles []Bundle) *Registry {
	return &Registry{bundles: bundles}
}

// LoadDir scans dir for *.json bundle files and decodes each into the
// registry in directory order. Any unreadable or malformed bundle fails the
// whole load: silently serving without a model is worse than refusing to
// start. Duplicate bundle types are rejected for the same reason.
func LoadDir(dir string) (*Registry, error) {
	abs, err := fsutil.Resolve(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var bundles []Bundle
	seen := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), bundleExt) {
			continue
		}
		b, err := loadBundle(filepath.Join(abs, name))
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", name, err)
		}
		if prev, dup := seen[b.Type]; dup {
			return nil, fmt.Errorf("bundle %s: duplicate type %q (already loaded from %s)", name, b.Type, prev)
		}
		seen[b.Type] = name
		bundles = append(bundles, b)
	}
	return New(bundles), nil
}

func loadBundle(path string) (Bundle, error) {
	var b Bundle
	raw, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	var f bundleFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return b, fmt.Errorf("decode: %w", err)
	}
	if strings.TrimSpace(f.Type) == "" {
		return b, fmt.Errorf("missing type")
	}
	model, err := classifier.FromSpec(f.Model.Algorithm, f.Model.Params)
	if err != nil {
		return b, err
	}
	b = Bundle{Type: f.Type, Params: f.Params, Metrics: f.Metrics, Model: model}
	return b, nil
}

// Find returns the first bundle whose type matches. Duplicates are rejected
// at load time, so first-match is exact-match.
func (r *Registry) Find(modelType string) (Bundle, bool) {
	for _, b := range r.bundles {
		if b.Type == modelType {
			return b, true
		}
	}
	return Bundle{}, false
}

// List projects every bundle to its client-facing form, in load order. The
// result is never nil so an empty registry serializes as an empty array.
func (r *Registry) List() []types.ModelInfo {
	out := make([]types.ModelInfo, 0, len(r.bundles))
	for _, b := range r.bundles {
		out = append(out, types.ModelInfo{Type: b.Type, Parameters: b.Params, Accuracy: b.Metrics})
	}
	return out
}

// Len reports the number of loaded bundles.
func (r *Registry) Len() int { return len(r.bundles) }

// Close releases the bundle list. Bundles hold no external resources, so
// dropping the references is the whole teardown.
func (r *Registry) Close() { r.bundles = nil }
