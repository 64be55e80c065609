package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/smartinvest/apiserver/internal/model"
	"github.com/smartinvest/apiserver/internal/mq"
	"github.com/smartinvest/apiserver/internal/predlog"
	"github.com/smartinvest/apiserver/internal/recommend"
	"github.com/smartinvest/apiserver/types"
)

const topRecommendations = 5

// PredictionResult is the outcome of scoring one submission.
type PredictionResult struct {
	Category        types.RiskCategory        `json:"category"`
	DisplayLabel    string                    `json:"display_label"`
	Advice          string                    `json:"advice"`
	Recommendations []types.RecommendationRow `json:"recommendations"`
	TopSymbols      string                    `json:"top_symbols"`
}

// PredictionService runs one submission end to end: assemble the feature
// vector, score it, dispatch the recommendation table, append the log row
// and publish the prediction event. Each request is processed
// synchronously; an error at any step fails the whole request with no
// partial result.
type PredictionService struct {
	assembler  *model.FeatureAssembler
	classifier model.Classifier
	log        *predlog.Log
	events     mq.Publisher
	channel    string
}

// NewPredictionService constructs the service. events may be nil when no
// broker is configured.
func NewPredictionService(
	assembler *model.FeatureAssembler,
	classifier model.Classifier,
	predictionLog *predlog.Log,
	events mq.Publisher,
	channel string,
) *PredictionService {
	return &PredictionService{
		assembler:  assembler,
		classifier: classifier,
		log:        predictionLog,
		events:     events,
		channel:    channel,
	}
}

// Predict scores a submission and records the outcome.
func (s *PredictionService) Predict(ctx context.Context, sub types.Submission) (PredictionResult, error) {
	vector, err := s.assembler.Assemble(sub)
	if err != nil {
		return PredictionResult{}, err
	}

	category, err := s.classifier.Predict(vector)
	if err != nil {
		return PredictionResult{}, err
	}

	rows := recommend.ForCategory(category)
	result := PredictionResult{
		Category:        category,
		DisplayLabel:    category.DisplayLabel(),
		Advice:          recommend.Advice(category),
		Recommendations: rows,
		TopSymbols:      recommend.TopSymbols(rows, topRecommendations),
	}

	record := predlog.Record{
		Submission:        sub,
		PredictedRisk:     result.DisplayLabel,
		RecommendedStocks: result.TopSymbols,
	}
	if err := s.log.Append(record); err != nil {
		return PredictionResult{}, err
	}

	s.publish(ctx, record)
	return result, nil
}

// Records returns the full prediction log for the admin view.
func (s *PredictionService) Records(ctx context.Context) ([]predlog.Record, error) {
	return s.log.ReadAll()
}

// publish emits the logged record to the prediction event channel.
// Best-effort: the row is already durable, so a broker failure must not
// fail the request.
func (s *PredictionService) publish(ctx context.Context, record predlog.Record) {
	if s.events == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("encode prediction event: %v", err)
		return
	}
	attrs := map[string]string{"predicted_risk": record.PredictedRisk}
	if _, err := s.events.Publish(ctx, s.channel, data, attrs); err != nil {
		log.Printf("publish prediction event: %v", err)
	}
}
