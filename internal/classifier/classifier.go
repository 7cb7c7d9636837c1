// Package classifier defines the capability interface a model bundle must
// provide and the portable decoders for the supported algorithms.
package classifier

import (
	"encoding/json"
	"fmt"
)

// Classifier is the single capability the router depends on: map an ordered
// feature vector to a class index.
type Classifier interface {
	Predict(features []float64) (int, error)
}

// FromSpec decodes the learned-parameter document for the named algorithm.
// Unknown algorithms are a load-time error, not a serving-time one.
func FromSpec(algorithm string, params json.RawMessage) (Classifier, error) {
	switch algorithm {
	case "tree":
		return decodeTree(params)
	case "logreg":
		return decodeLogreg(params)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}
