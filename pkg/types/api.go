package types

import "math"

// PredictRequest is the payload of POST /models/{type}. All four fields are
// required numbers; pointers distinguish a missing field from a legitimate
// zero value.
type PredictRequest struct {
	// Sepal length in centimeters.
	// example: 5.1
	SepalLength *float64 `json:"sepal_length" example:"5.1"`
	// Sepal width in centimeters.
	// example: 3.5
	SepalWidth *float64 `json:"sepal_width" example:"3.5"`
	// Petal length in centimeters.
	// example: 1.4
	PetalLength *float64 `json:"petal_length" example:"1.4"`
	// Petal width in centimeters.
	// example: 0.2
	PetalWidth *float64 `json:"petal_width" example:"0.2"`
}

// Validate checks that every measurement is present and a finite,
// non-negative number. It returns an empty string when the payload is valid
// and a human-readable reason otherwise.
func (p PredictRequest) Validate() string {
	fields := []struct {
		name  string
		value *float64
	}{
		{"sepal_length", p.SepalLength},
		{"sepal_width", p.SepalWidth},
		{"petal_length", p.PetalLength},
		{"petal_width", p.PetalWidth},
	}
	for _, f := range fields {
		if f.value == nil {
			return f.name + " is required"
		}
		if math.IsNaN(*f.value) || math.IsInf(*f.value, 0) {
			return f.name + " must be a finite number"
		}
		if *f.value < 0 {
			return f.name + " must be non-negative"
		}
	}
	return ""
}

// Features converts a validated request into the classifier input form.
// Call Validate first; Features dereferences every field.
func (p PredictRequest) Features() Features {
	return Features{
		SepalLength: *p.SepalLength,
		SepalWidth:  *p.SepalWidth,
		PetalLength: *p.PetalLength,
		PetalWidth:  *p.PetalWidth,
	}
}

// Prediction is the data section of a successful predict response.
type Prediction struct {
	// Type of the bundle that served the prediction.
	// example: tree
	ModelType string `json:"model-type" example:"tree"`
	// Echo of the measurements the prediction was made from.
	Features Features `json:"features"`
	// Raw class index returned by the classifier.
	// example: 0
	Prediction int `json:"prediction" example:"0"`
	// Species label mapped from the class index.
	// example: setosa
	PredictedType string `json:"predicted_type" example:"setosa"`
}

// Envelope is the uniform wrapper applied to every domain endpoint response.
type Envelope struct {
	// Human-readable outcome, e.g. the status phrase or an error reason.
	// example: OK
	Message string `json:"message" example:"OK"`
	// HTTP method of the originating request.
	// example: GET
	Method string `json:"method" example:"GET"`
	// HTTP status code, duplicated in the body.
	// example: 200
	StatusCode int `json:"status-code" example:"200"`
	// ISO-8601 timestamp taken when the response was built.
	// example: 2024-05-01T12:00:00.000000Z
	Timestamp string `json:"timestamp" example:"2024-05-01T12:00:00.000000Z"`
	// Full URL of the originating request.
	// example: http://localhost:8080/models
	URL string `json:"url" example:"http://localhost:8080/models"`
	// Endpoint-specific payload; omitted on failures.
	Data any `json:"data,omitempty"`
}
