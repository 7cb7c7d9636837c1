package classifier

import (
	"encoding/json"
	"testing"
)

// irisLogregJSON favors class 0 on small petals, class 2 on large ones.
// setosa  (3.5, 1.4, 0.2): scores 3.00, 0.34, -4.39 -> 0
// virginica (3.0, 5.5, 2.0): scores -5.10, 1.70, 3.00 -> 2
const irisLogregJSON = `{
	"coef":[
		[0, 0.8, -1.0, -2.0],
		[0, 0, 0.2, 0.3],
		[0, -0.5, 0.6, 2.6]
	],
	"intercept":[2.0, 0.0, -4.0]
}`

func mustLogreg(t *testing.T, raw string) Classifier {
	t.Helper()
	c, err := FromSpec("logreg", json.RawMessage(raw))
	if err != nil {
		t.Fatalf("decode logreg: %v", err)
	}
	return c
}

func TestLogisticRegression_PredictsSpecies(t *testing.T) {
	c := mustLogreg(t, irisLogregJSON)
	cases := []struct {
		name     string
		features []float64
		want     int
	}{
		{"setosa", []float64{5.1, 3.5, 1.4, 0.2}, 0},
		{"virginica", []float64{6.5, 3.0, 5.5, 2.0}, 2},
	}
	for _, tc := range cases {
		got, err := c.Predict(tc.features)
		if err != nil {
			t.Fatalf("%s: predict: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got class %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLogisticRegression_WidthMismatch(t *testing.T) {
	c := mustLogreg(t, irisLogregJSON)
	if _, err := c.Predict([]float64{1, 2}); err == nil {
		t.Fatal("expected error for short feature vector")
	}
}

func TestDecodeLogreg_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty matrix":       `{"coef":[],"intercept":[]}`,
		"intercept mismatch": `{"coef":[[1,2]],"intercept":[1,2]}`,
		"empty row":          `{"coef":[[]],"intercept":[0]}`,
		"ragged rows":        `{"coef":[[1,2],[1]],"intercept":[0,0]}`,
		"not json":           `nope`,
	}
	for name, raw := range cases {
		if _, err := FromSpec("logreg", json.RawMessage(raw)); err == nil {
			t.Fatalf("%s: expected decode error", name)
		}
	}
}

func TestSpeciesName(t *testing.T) {
	cases := map[int]string{0: "setosa", 1: "versicolor", 2: "virginica"}
	for idx, want := range cases {
		got, err := SpeciesName(idx)
		if err != nil {
			t.Fatalf("SpeciesName(%d): %v", idx, err)
		}
		if got != want {
			t.Fatalf("SpeciesName(%d) = %q, want %q", idx, got, want)
		}
	}
	for _, idx := range []int{-1, 3, 42} {
		if _, err := SpeciesName(idx); err == nil {
			t.Fatalf("SpeciesName(%d): expected error", idx)
		}
	}
}
