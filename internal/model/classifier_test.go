package model

import (
	"errors"
	"testing"

	"github.com/smartinvest/apiserver/types"
)

func testArtifacts() *Artifacts {
	return &Artifacts{
		ColumnOrder: []string{"a", "b"},
		Scaler: Scaler{
			Mean:  []float64{1, 1},
			Scale: []float64{1, 1},
		},
		Classifier: ClassifierParams{
			// Class scores: Low tracks feature a, High tracks feature b,
			// Medium is a constant floor.
			Coefficients: [][]float64{{1, 0}, {0, 0}, {0, 1}},
			Intercepts:   []float64{0, 0.5, 0},
		},
		Encoder: LabelEncoder{TargetClasses: []string{"Low", "Medium", "High"}},
	}
}

func TestPredict_Argmax(t *testing.T) {
	classifier := NewRiskClassifier(testArtifacts())

	cases := []struct {
		name     string
		features []float64
		want     types.RiskCategory
	}{
		{"low wins", []float64{5, 1}, types.RiskLow},
		{"high wins", []float64{1, 5}, types.RiskHigh},
		{"medium floor wins", []float64{1, 1}, types.RiskMedium},
	}
	for _, tc := range cases {
		got, err := classifier.Predict(tc.features)
		if err != nil {
			t.Fatalf("%s: Predict: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: Predict = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPredict_ShapeMismatchFails(t *testing.T) {
	classifier := NewRiskClassifier(testArtifacts())

	if _, err := classifier.Predict([]float64{1, 2, 3}); !errors.Is(err, ErrFeatureShape) {
		t.Fatalf("expected ErrFeatureShape, got %v", err)
	}
}

func TestScaler_Transform(t *testing.T) {
	s := Scaler{Mean: []float64{10, 0}, Scale: []float64{2, 0}}

	got, err := s.Transform([]float64{14, 3})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got[0] != 2 {
		t.Fatalf("got[0] = %v, want 2", got[0])
	}
	// Zero scale must not divide by zero.
	if got[1] != 3 {
		t.Fatalf("got[1] = %v, want 3", got[1])
	}
}

func TestArtifactsValidate_TargetClassMismatchFails(t *testing.T) {
	a := testArtifacts()
	a.Encoder.TargetClasses = []string{"Low", "High", "Medium"}

	if err := a.validate(); err == nil {
		t.Fatalf("expected validation error for reordered target classes")
	}
}

func TestArtifactsValidate_DimensionMismatchFails(t *testing.T) {
	a := testArtifacts()
	a.Scaler.Mean = []float64{1}

	if err := a.validate(); err == nil {
		t.Fatalf("expected validation error for scaler dimension mismatch")
	}
}
