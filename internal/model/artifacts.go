package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/smartinvest/apiserver/types"
)

// Artifact file names produced by the offline training pipeline. The files
// are opaque inputs to this service: they are loaded once at startup and
// never written.
const (
	ColumnOrderFile  = "column_order.json"
	ScalerFile       = "scaler.json"
	ClassifierFile   = "classifier.json"
	LabelEncoderFile = "label_encoder.json"
)

// ArtifactFiles lists every artifact the server needs at startup.
var ArtifactFiles = []string{ColumnOrderFile, ScalerFile, ClassifierFile, LabelEncoderFile}

// ErrFeatureShape is returned when a feature vector does not match the
// shape the scaler and classifier were trained on. There is no partial
// result: the whole prediction fails.
var ErrFeatureShape = errors.New("feature vector shape mismatch")

// ErrUnknownCategory is returned when a categorical value is not in the
// persisted encoder's vocabulary for its column.
var ErrUnknownCategory = errors.New("unknown categorical value")

// ArtifactSource opens named artifact objects. Satisfied by the storage
// layer's local, MinIO and GCS backends.
type ArtifactSource interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// Scaler normalizes a feature vector with the mean/scale parameters the
// training pipeline fitted (z-score standardization).
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform returns the standardized copy of features.
func (s *Scaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) || len(features) != len(s.Scale) {
		return nil, fmt.Errorf("%w: scaler expects %d features, got %d", ErrFeatureShape, len(s.Mean), len(features))
	}
	scaled := make([]float64, len(features))
	for i, f := range features {
		div := s.Scale[i]
		if div == 0 {
			div = 1
		}
		scaled[i] = (f - s.Mean[i]) / div
	}
	return scaled, nil
}

// ClassifierParams holds the serialized multiclass classifier: one
// coefficient row and intercept per class, scored as a single forward
// pass with argmax over the class scores.
type ClassifierParams struct {
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// LabelEncoder is the persisted categorical encoder fitted by the training
// pipeline. Columns maps a categorical column name to its vocabulary in
// fitted order; a value encodes to its vocabulary index. TargetClasses is
// the class-id to class-name mapping of the prediction target.
type LabelEncoder struct {
	TargetClasses []string            `json:"target_classes"`
	Columns       map[string][]string `json:"columns"`
}

// Encode returns the integer code of a categorical value in the given
// column's fitted vocabulary.
func (e *LabelEncoder) Encode(column, value string) (float64, error) {
	vocab, ok := e.Columns[column]
	if !ok {
		return 0, fmt.Errorf("%w: no encoder fitted for column %q", ErrUnknownCategory, column)
	}
	for i, v := range vocab {
		if v == value {
			return float64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a known value of column %q", ErrUnknownCategory, value, column)
}

// Artifacts bundles the four startup artifacts.
type Artifacts struct {
	ColumnOrder []string
	Scaler      Scaler
	Classifier  ClassifierParams
	Encoder     LabelEncoder
}

// LoadArtifacts reads and validates all model artifacts from the source.
func LoadArtifacts(ctx context.Context, source ArtifactSource) (*Artifacts, error) {
	var a Artifacts

	if err := loadJSON(ctx, source, ColumnOrderFile, &a.ColumnOrder); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, source, ScalerFile, &a.Scaler); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, source, ClassifierFile, &a.Classifier); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, source, LabelEncoderFile, &a.Encoder); err != nil {
		return nil, err
	}

	if err := a.validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func loadJSON(ctx context.Context, source ArtifactSource, name string, v any) error {
	r, err := source.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("load artifact %s: %w", name, err)
	}
	defer r.Close()

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode artifact %s: %w", name, err)
	}
	return nil
}

func (a *Artifacts) validate() error {
	n := len(a.ColumnOrder)
	if n == 0 {
		return errors.New("column order artifact is empty")
	}
	if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
		return fmt.Errorf("scaler dimensions (%d/%d) do not match column order (%d)",
			len(a.Scaler.Mean), len(a.Scaler.Scale), n)
	}
	if len(a.Classifier.Coefficients) != len(a.Classifier.Intercepts) {
		return fmt.Errorf("classifier has %d coefficient rows but %d intercepts",
			len(a.Classifier.Coefficients), len(a.Classifier.Intercepts))
	}
	for i, row := range a.Classifier.Coefficients {
		if len(row) != n {
			return fmt.Errorf("classifier class %d expects %d features, column order has %d", i, len(row), n)
		}
	}

	// The service presents risk labels through the fixed RiskCategory
	// mapping. The encoder artifact carries its own target class list;
	// the two could drift apart, so a disagreement fails startup loudly
	// instead of being silently reconciled.
	for i, name := range a.Encoder.TargetClasses {
		if want := types.RiskCategory(i).String(); name != want {
			return fmt.Errorf("label encoder target class %d is %q, display mapping expects %q", i, name, want)
		}
	}
	if len(a.Encoder.TargetClasses) != len(a.Classifier.Intercepts) {
		return fmt.Errorf("label encoder has %d target classes, classifier has %d",
			len(a.Encoder.TargetClasses), len(a.Classifier.Intercepts))
	}
	return nil
}
