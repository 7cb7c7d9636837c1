package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// LogisticRegression scores each class as coef·x + intercept and predicts
// the argmax. Softmax is monotonic, so probabilities are never materialized.
type LogisticRegression struct {
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

func decodeLogreg(params json.RawMessage) (*LogisticRegression, error) {
	var m LogisticRegression
	if err := json.Unmarshal(params, &m); err != nil {
		return nil, fmt.Errorf("logreg params: %w", err)
	}
	if len(m.Coef) == 0 {
		return nil, errors.New("logreg params: empty coefficient matrix")
	}
	if len(m.Coef) != len(m.Intercept) {
		return nil, fmt.Errorf("logreg params: %d coefficient rows but %d intercepts", len(m.Coef), len(m.Intercept))
	}
	width := len(m.Coef[0])
	if width == 0 {
		return nil, errors.New("logreg params: empty coefficient row")
	}
	for i, row := range m.Coef {
		if len(row) != width {
			return nil, fmt.Errorf("logreg params: row %d has %d weights, want %d", i, len(row), width)
		}
	}
	return &m, nil
}

// Predict returns the class with the highest linear score.
func (m *LogisticRegression) Predict(features []float64) (int, error) {
	best, bestScore := 0, math.Inf(-1)
	for class, row := range m.Coef {
		if len(row) != len(features) {
			return 0, fmt.Errorf("logreg: class %d expects %d features, got %d", class, len(row), len(features))
		}
		score := m.Intercept[class]
		for i, w := range row {
			score += w * features[i]
		}
		if score > bestScore {
			best, bestScore = class, score
		}
	}
	return best, nil
}
