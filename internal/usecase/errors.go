package usecase

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a prediction failed
type ErrorKind int

const (
	// KindUnexpected covers anything not classified below
	KindUnexpected ErrorKind = iota
	// KindValidation means the request body could not be turned into features
	KindValidation
	// KindInference means the model failed or returned an unusable result
	KindInference
)

// String returns the kind name used in logs and metrics
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInference:
		return "inference"
	default:
		return "unexpected"
	}
}

// PredictionError carries the kind of a prediction failure and its cause
type PredictionError struct {
	Kind ErrorKind
	Err  error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps err as a validation failure
func NewValidationError(err error) error {
	return &PredictionError{Kind: KindValidation, Err: err}
}

// NewInferenceError wraps err as an inference failure
func NewInferenceError(err error) error {
	return &PredictionError{Kind: KindInference, Err: err}
}

// KindOf returns the kind of err, or KindUnexpected when err carries none
func KindOf(err error) ErrorKind {
	var pe *PredictionError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnexpected
}
