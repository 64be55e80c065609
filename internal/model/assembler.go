package model

import (
	"github.com/smartinvest/apiserver/types"
)

// FeatureAssembler turns a form submission into the fixed-order numeric
// feature vector the classifier was trained on. Columns in the reference
// ordering that the submission does not provide are filled with 0;
// submission fields outside the ordering are dropped. Categorical values
// are encoded through the persisted encoder loaded at startup, so the
// same category always maps to the same code across requests.
type FeatureAssembler struct {
	columns []string
	encoder *LabelEncoder
}

// NewFeatureAssembler constructs an assembler for the given reference
// column ordering and persisted categorical encoder.
func NewFeatureAssembler(columns []string, encoder *LabelEncoder) *FeatureAssembler {
	return &FeatureAssembler{columns: columns, encoder: encoder}
}

// Columns returns the reference column ordering.
func (a *FeatureAssembler) Columns() []string {
	return a.columns
}

// Assemble builds the feature vector for one submission. The result has
// exactly len(Columns()) entries in reference order. Username is never a
// feature and is ignored.
func (a *FeatureAssembler) Assemble(sub types.Submission) ([]float64, error) {
	features := sub.Features()

	vector := make([]float64, len(a.columns))
	for i, col := range a.columns {
		fv, ok := features[col]
		if !ok {
			// Expected column the form does not collect: zero default.
			continue
		}
		if fv.IsText {
			code, err := a.encoder.Encode(col, fv.Text)
			if err != nil {
				return nil, err
			}
			vector[i] = code
			continue
		}
		vector[i] = fv.Number
	}
	return vector, nil
}
