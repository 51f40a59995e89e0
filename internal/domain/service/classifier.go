package service

import "context"

// ModelInfo describes the loaded model artifact
type ModelInfo struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Kernel     string `json:"kernel"`
	Dimensions int    `json:"dimensions"`
}

// Classifier defines the interface of a loaded CKD model.
// Implementations must be safe for concurrent use and must not change
// state between calls.
type Classifier interface {
	// Classify returns the predicted class index for one feature row
	Classify(ctx context.Context, features []float64) (int, error)

	// EstimateProbabilities returns per-class probabilities for one feature row,
	// indexed by class
	EstimateProbabilities(ctx context.Context, features []float64) ([]float64, error)

	// Info describes the model
	Info() ModelInfo
}
