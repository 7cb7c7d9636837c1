package types

// Features is one flower measurement in classifier input order.
type Features struct {
	// Sepal length in centimeters.
	// example: 5.1
	SepalLength float64 `json:"sepal_length" example:"5.1"`
	// Sepal width in centimeters.
	// example: 3.5
	SepalWidth float64 `json:"sepal_width" example:"3.5"`
	// Petal length in centimeters.
	// example: 1.4
	PetalLength float64 `json:"petal_length" example:"1.4"`
	// Petal width in centimeters.
	// example: 0.2
	PetalWidth float64 `json:"petal_width" example:"0.2"`
}

// Vector returns the measurements as the ordered feature vector a
// classifier consumes.
func (f Features) Vector() []float64 {
	return []float64{f.SepalLength, f.SepalWidth, f.PetalLength, f.PetalWidth}
}

// ModelInfo is the client-facing projection of a loaded model bundle.
// The classifier object itself is never serialized back to a client.
type ModelInfo struct {
	// Identifier of the model bundle.
	// example: tree
	Type string `json:"type" example:"tree"`
	// Hyperparameters the model was trained with.
	Parameters map[string]any `json:"parameters"`
	// Evaluation metrics recorded at training time.
	Accuracy map[string]float64 `json:"accuracy"`
}
