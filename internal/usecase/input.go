package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ckd-predictor/api-service/internal/domain/entity"
)

// CategoryCode is a categorical feature value. It decodes from a JSON
// integer, a number (truncated toward zero), a decimal integer string or a
// boolean; anything else is rejected.
type CategoryCode int

// maxExactFloat is the largest magnitude a float64 holds as an exact integer
const maxExactFloat = 1 << 53

// UnmarshalJSON implements json.Unmarshaler
func (c *CategoryCode) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	n, err := coerceInt(raw)
	if err != nil {
		return err
	}
	*c = CategoryCode(n)
	return nil
}

func coerceInt(raw any) (int, error) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 0); err == nil {
			return int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid number %s", v)
		}
		f = math.Trunc(f)
		if math.IsNaN(f) || math.Abs(f) > maxExactFloat {
			return 0, fmt.Errorf("number %s out of range", v)
		}
		return int(f), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid literal for integer: %q", v)
		}
		return i, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case nil:
		return 0, errors.New("null is not an integer")
	default:
		return 0, fmt.Errorf("%T is not an integer", raw)
	}
}

// PredictInput is the request body of a prediction
type PredictInput struct {
	HaemoglobinCat        *CategoryCode `json:"haemoglobin_cat" binding:"required"`
	SpecificGravityCat    *CategoryCode `json:"specific_gravity_cat" binding:"required"`
	AlbuminCat            *CategoryCode `json:"albumin_cat" binding:"required"`
	BloodGlucoseRandomCat *CategoryCode `json:"blood_glucose_random_cat" binding:"required"`
	SugarCat              *CategoryCode `json:"sugar_cat" binding:"required"`
	AgeCat                *CategoryCode `json:"age_cat" binding:"required"`
	BloodUreaCat          *CategoryCode `json:"blood_urea_cat" binding:"required"`
	BloodPressureCat      *CategoryCode `json:"blood_pressure_cat" binding:"required"`
	SerumCreatinineCat    *CategoryCode `json:"serum_creatinine_cat" binding:"required"`
	SodiumCat             *CategoryCode `json:"sodium_cat" binding:"required"`
}

// UnmarshalJSON decodes a JSON object, matching the feature keys exactly.
// Keys differing only in case are ignored and leave the field missing.
func (in *PredictInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("prediction input must be a JSON object")
	}

	*in = PredictInput{}
	for i, field := range in.fields() {
		value, ok := raw[entity.FeatureNames[i]]
		if !ok || string(bytes.TrimSpace(value)) == "null" {
			continue
		}
		code := new(CategoryCode)
		if err := code.UnmarshalJSON(value); err != nil {
			return fmt.Errorf("%s: %w", entity.FeatureNames[i], err)
		}
		*field = code
	}
	return nil
}

// fields returns the addresses of the feature fields in model order
func (in *PredictInput) fields() [entity.FeatureCount]**CategoryCode {
	return [entity.FeatureCount]**CategoryCode{
		&in.HaemoglobinCat,
		&in.SpecificGravityCat,
		&in.AlbuminCat,
		&in.BloodGlucoseRandomCat,
		&in.SugarCat,
		&in.AgeCat,
		&in.BloodUreaCat,
		&in.BloodPressureCat,
		&in.SerumCreatinineCat,
		&in.SodiumCat,
	}
}

// Features converts the input into patient features, reporting every
// missing field as a validation failure.
func (in *PredictInput) Features() (*entity.PatientFeatures, error) {
	if in == nil {
		return nil, NewValidationError(errors.New("empty prediction input"))
	}

	var missing []string
	for i, f := range in.fields() {
		if *f == nil {
			missing = append(missing, entity.FeatureNames[i])
		}
	}
	if len(missing) > 0 {
		return nil, NewValidationError(fmt.Errorf("missing fields: %s", strings.Join(missing, ", ")))
	}

	return &entity.PatientFeatures{
		Haemoglobin:        int(*in.HaemoglobinCat),
		SpecificGravity:    int(*in.SpecificGravityCat),
		Albumin:            int(*in.AlbuminCat),
		BloodGlucoseRandom: int(*in.BloodGlucoseRandomCat),
		Sugar:              int(*in.SugarCat),
		Age:                int(*in.AgeCat),
		BloodUrea:          int(*in.BloodUreaCat),
		BloodPressure:      int(*in.BloodPressureCat),
		SerumCreatinine:    int(*in.SerumCreatinineCat),
		Sodium:             int(*in.SodiumCat),
	}, nil
}
