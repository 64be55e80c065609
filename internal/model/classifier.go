package model

import (
	"fmt"

	"github.com/smartinvest/apiserver/types"
)

// Classifier assigns a risk category to an assembled feature vector.
// Implemented by RiskClassifier; a stub suffices in tests.
type Classifier interface {
	Predict(features []float64) (types.RiskCategory, error)
}

// RiskClassifier wraps the pretrained scaler and classifier artifacts.
// Prediction is a single forward pass: standardize, score each class,
// take the argmax. Any shape mismatch fails the whole prediction; there
// are no retries and no fallback result.
type RiskClassifier struct {
	scaler       Scaler
	coefficients [][]float64
	intercepts   []float64
}

// NewRiskClassifier constructs the adapter from loaded artifacts.
func NewRiskClassifier(artifacts *Artifacts) *RiskClassifier {
	return &RiskClassifier{
		scaler:       artifacts.Scaler,
		coefficients: artifacts.Classifier.Coefficients,
		intercepts:   artifacts.Classifier.Intercepts,
	}
}

// Predict returns the risk category for the feature vector.
func (c *RiskClassifier) Predict(features []float64) (types.RiskCategory, error) {
	scaled, err := c.scaler.Transform(features)
	if err != nil {
		return 0, err
	}

	best := -1
	var bestScore float64
	for class, coef := range c.coefficients {
		if len(coef) != len(scaled) {
			return 0, fmt.Errorf("%w: class %d expects %d features, got %d",
				ErrFeatureShape, class, len(coef), len(scaled))
		}
		score := c.intercepts[class]
		for i, w := range coef {
			score += w * scaled[i]
		}
		if best == -1 || score > bestScore {
			best = class
			bestScore = score
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("%w: classifier has no classes", ErrFeatureShape)
	}
	return types.RiskCategory(best), nil
}
