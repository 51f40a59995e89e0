package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ckd-predictor/api-service/internal/domain/entity"
)

// Kernel names accepted in an artifact
const (
	KernelLinear  = "linear"
	KernelRBF     = "rbf"
	KernelPoly    = "poly"
	KernelSigmoid = "sigmoid"
)

// PlattParams are the sigmoid coefficients mapping a decision value to P(class 1)
type PlattParams struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Artifact is the serialized form of a trained binary SVM
type Artifact struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	Kernel         string      `json:"kernel"`
	FeatureNames   []string    `json:"feature_names,omitempty"`
	Gamma          float64     `json:"gamma,omitempty"`
	Coef0          float64     `json:"coef0,omitempty"`
	Degree         int         `json:"degree,omitempty"`
	Weights        []float64   `json:"weights,omitempty"`
	SupportVectors [][]float64 `json:"support_vectors,omitempty"`
	DualCoef       []float64   `json:"dual_coef,omitempty"`
	Intercept      float64     `json:"intercept"`
	Platt          PlattParams `json:"platt"`
}

// Load reads the artifact at path and builds a classifier from it
func Load(path string) (*SVM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer f.Close()

	var a Artifact
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact %s: %w", path, err)
	}

	return New(&a)
}

// Validate checks the artifact is internally consistent and matches the
// feature order of the service
func (a *Artifact) Validate() error {
	if len(a.FeatureNames) > 0 {
		if len(a.FeatureNames) != entity.FeatureCount {
			return fmt.Errorf("artifact declares %d features, want %d", len(a.FeatureNames), entity.FeatureCount)
		}
		for i, name := range a.FeatureNames {
			if name != entity.FeatureNames[i] {
				return fmt.Errorf("feature %d is %q, want %q", i, name, entity.FeatureNames[i])
			}
		}
	}

	if !finite(a.Intercept, a.Platt.A, a.Platt.B, a.Gamma, a.Coef0) {
		return errors.New("artifact contains non-finite coefficients")
	}

	switch a.Kernel {
	case KernelLinear:
		if len(a.Weights) > 0 {
			if len(a.Weights) != entity.FeatureCount {
				return fmt.Errorf("linear artifact has %d weights, want %d", len(a.Weights), entity.FeatureCount)
			}
			if !finite(a.Weights...) {
				return errors.New("artifact contains non-finite weights")
			}
			return nil
		}
		return a.validateSupportVectors()
	case KernelRBF, KernelSigmoid:
		if a.Gamma <= 0 {
			return fmt.Errorf("%s kernel requires a positive gamma", a.Kernel)
		}
		return a.validateSupportVectors()
	case KernelPoly:
		if a.Gamma <= 0 {
			return errors.New("poly kernel requires a positive gamma")
		}
		if a.Degree < 1 {
			return errors.New("poly kernel requires degree >= 1")
		}
		return a.validateSupportVectors()
	case "":
		return errors.New("artifact kernel is missing")
	default:
		return fmt.Errorf("unsupported kernel %q", a.Kernel)
	}
}

func (a *Artifact) validateSupportVectors() error {
	if len(a.SupportVectors) == 0 {
		return errors.New("artifact has no support vectors")
	}
	if len(a.SupportVectors) != len(a.DualCoef) {
		return fmt.Errorf("artifact has %d support vectors but %d dual coefficients", len(a.SupportVectors), len(a.DualCoef))
	}
	if !finite(a.DualCoef...) {
		return errors.New("artifact contains non-finite dual coefficients")
	}
	for i, sv := range a.SupportVectors {
		if len(sv) != entity.FeatureCount {
			return fmt.Errorf("support vector %d has %d values, want %d", i, len(sv), entity.FeatureCount)
		}
		if !finite(sv...) {
			return fmt.Errorf("support vector %d contains non-finite values", i)
		}
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
