package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ckd-predictor/api-service/internal/domain/entity"
	"github.com/ckd-predictor/api-service/internal/domain/service"
)

// probabilityDecimals is the precision of probabilities in responses
const probabilityDecimals = 4

// PredictionOutput represents the output of a prediction
type PredictionOutput struct {
	Label         entity.DiagnosisLabel
	Probabilities map[entity.DiagnosisLabel]float64
	Timestamp     time.Time
}

// PredictionUsecase defines the interface for prediction business logic
type PredictionUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error)
}

type predictionUsecase struct {
	classifier service.Classifier
	now        func() time.Time
}

// NewPredictionUsecase creates a new prediction usecase around a loaded model
func NewPredictionUsecase(classifier service.Classifier) PredictionUsecase {
	return &predictionUsecase{
		classifier: classifier,
		now:        time.Now,
	}
}

func (u *predictionUsecase) Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error) {
	features, err := input.Features()
	if err != nil {
		return nil, err
	}

	row := features.Vector()

	class, err := u.classifier.Classify(ctx, row)
	if err != nil {
		return nil, NewInferenceError(fmt.Errorf("classify: %w", err))
	}

	label, err := entity.LabelForClass(class)
	if err != nil {
		return nil, NewInferenceError(err)
	}

	probs, err := u.classifier.EstimateProbabilities(ctx, row)
	if err != nil {
		return nil, NewInferenceError(fmt.Errorf("estimate probabilities: %w", err))
	}
	if len(probs) != len(entity.DiagnosisLabels) {
		return nil, NewInferenceError(fmt.Errorf("model returned %d probabilities, want %d", len(probs), len(entity.DiagnosisLabels)))
	}

	probabilities := make(map[entity.DiagnosisLabel]float64, len(probs))
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, NewInferenceError(errors.New("model returned a non-finite probability"))
		}
		probabilities[entity.DiagnosisLabels[i]] = RoundProbability(p)
	}

	return &PredictionOutput{
		Label:         label,
		Probabilities: probabilities,
		Timestamp:     u.now(),
	}, nil
}

// RoundProbability rounds p to four decimal places, correctly rounded from
// the exact binary value of p.
func RoundProbability(p float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(p, 'f', probabilityDecimals, 64), 64)
	if err != nil {
		return p
	}
	return r
}
