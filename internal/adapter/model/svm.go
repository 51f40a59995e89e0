package model

import (
	"context"
	"fmt"
	"math"

	"github.com/ckd-predictor/api-service/internal/domain/service"
)

// SVM is a trained binary support vector classifier with Platt-scaled
// probabilities. It is immutable after construction.
type SVM struct {
	info      service.ModelInfo
	kernel    func(a, b []float64) float64
	weights   []float64
	vectors   [][]float64
	dualCoef  []float64
	intercept float64
	platt     PlattParams
	dim       int
}

var _ service.Classifier = (*SVM)(nil)

// New builds a classifier from a validated artifact
func New(a *Artifact) (*SVM, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}

	m := &SVM{
		info: service.ModelInfo{
			Name:    a.Name,
			Version: a.Version,
			Kernel:  a.Kernel,
		},
		intercept: a.Intercept,
		platt:     a.Platt,
	}

	if a.Kernel == KernelLinear && len(a.Weights) > 0 {
		m.weights = append([]float64(nil), a.Weights...)
		m.dim = len(m.weights)
	} else {
		m.vectors = make([][]float64, len(a.SupportVectors))
		for i, sv := range a.SupportVectors {
			m.vectors[i] = append([]float64(nil), sv...)
		}
		m.dualCoef = append([]float64(nil), a.DualCoef...)
		m.kernel = kernelFunc(a)
		m.dim = len(m.vectors[0])
	}
	m.info.Dimensions = m.dim

	return m, nil
}

func kernelFunc(a *Artifact) func(x, y []float64) float64 {
	gamma, coef0, degree := a.Gamma, a.Coef0, float64(a.Degree)
	switch a.Kernel {
	case KernelRBF:
		return func(x, y []float64) float64 {
			var d float64
			for i := range x {
				diff := x[i] - y[i]
				d += diff * diff
			}
			return math.Exp(-gamma * d)
		}
	case KernelPoly:
		return func(x, y []float64) float64 {
			return math.Pow(gamma*dot(x, y)+coef0, degree)
		}
	case KernelSigmoid:
		return func(x, y []float64) float64 {
			return math.Tanh(gamma*dot(x, y) + coef0)
		}
	default:
		return dot
	}
}

// Info describes the model
func (m *SVM) Info() service.ModelInfo {
	return m.info
}

// Classify returns 1 when the decision value is positive, 0 otherwise
func (m *SVM) Classify(_ context.Context, features []float64) (int, error) {
	f, err := m.decision(features)
	if err != nil {
		return 0, err
	}
	if f > 0 {
		return 1, nil
	}
	return 0, nil
}

// EstimateProbabilities returns [P(class 0), P(class 1)]
func (m *SVM) EstimateProbabilities(_ context.Context, features []float64) ([]float64, error) {
	f, err := m.decision(features)
	if err != nil {
		return nil, err
	}
	p1 := sigmoid(m.platt.A*f + m.platt.B)
	return []float64{1 - p1, p1}, nil
}

func (m *SVM) decision(features []float64) (float64, error) {
	if len(features) != m.dim {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), m.dim)
	}

	if m.weights != nil {
		return dot(m.weights, features) + m.intercept, nil
	}

	sum := m.intercept
	for i, sv := range m.vectors {
		sum += m.dualCoef[i] * m.kernel(sv, features)
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("decision value is not finite")
	}
	return sum, nil
}

// sigmoid computes 1/(1+exp(z)) without overflowing for large |z|
func sigmoid(z float64) float64 {
	if z >= 0 {
		e := math.Exp(-z)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(z))
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
