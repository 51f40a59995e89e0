package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckd-predictor/api-service/internal/domain/entity"
)

func TestCategoryCode_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    CategoryCode
		wantErr bool
	}{
		{name: "integer", raw: `2`, want: 2},
		{name: "zero", raw: `0`, want: 0},
		{name: "negative integer", raw: `-1`, want: -1},
		{name: "float truncates", raw: `2.7`, want: 2},
		{name: "negative float truncates toward zero", raw: `-2.7`, want: -2},
		{name: "exponent", raw: `1e1`, want: 10},
		{name: "numeric string", raw: `"3"`, want: 3},
		{name: "padded numeric string", raw: `" 3 "`, want: 3},
		{name: "signed string", raw: `"+4"`, want: 4},
		{name: "true", raw: `true`, want: 1},
		{name: "false", raw: `false`, want: 0},
		{name: "decimal string", raw: `"2.5"`, wantErr: true},
		{name: "word", raw: `"abc"`, wantErr: true},
		{name: "empty string", raw: `""`, wantErr: true},
		{name: "array", raw: `[1]`, wantErr: true},
		{name: "object", raw: `{"v":1}`, wantErr: true},
		{name: "huge number", raw: `1e400`, wantErr: true},
		{name: "beyond exact range", raw: `1e300`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c CategoryCode
			err := json.Unmarshal([]byte(tt.raw), &c)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestPredictInput_Decode(t *testing.T) {
	t.Run("null leaves the field missing", func(t *testing.T) {
		var in PredictInput
		err := json.Unmarshal([]byte(`{"haemoglobin_cat": null}`), &in)

		require.NoError(t, err)
		assert.Nil(t, in.HaemoglobinCat)
	})

	t.Run("keys must match exactly", func(t *testing.T) {
		body := `{"HAEMOGLOBIN_CAT":2,"Specific_Gravity_Cat":1,"albumin_cat":3,
			"blood_glucose_random_cat":1,"sugar_cat":0,"age_cat":2,"blood_urea_cat":2,
			"blood_pressure_cat":1,"serum_creatinine_cat":2,"sodium_cat":1}`

		var in PredictInput
		require.NoError(t, json.Unmarshal([]byte(body), &in))
		assert.Nil(t, in.HaemoglobinCat)
		assert.Nil(t, in.SpecificGravityCat)
		require.NotNil(t, in.AlbuminCat)
		assert.Equal(t, CategoryCode(3), *in.AlbuminCat)

		_, err := in.Features()
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.Contains(t, err.Error(), "haemoglobin_cat")
		assert.Contains(t, err.Error(), "specific_gravity_cat")
	})

	t.Run("invalid value names the field", func(t *testing.T) {
		var in PredictInput
		err := json.Unmarshal([]byte(`{"sugar_cat":"high"}`), &in)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sugar_cat")
	})

	t.Run("non object body", func(t *testing.T) {
		var in PredictInput
		assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &in))
	})

	t.Run("all fields decode in model order", func(t *testing.T) {
		body := `{"haemoglobin_cat":0,"specific_gravity_cat":1,"albumin_cat":2,
			"blood_glucose_random_cat":3,"sugar_cat":4,"age_cat":5,"blood_urea_cat":6,
			"blood_pressure_cat":7,"serum_creatinine_cat":8,"sodium_cat":"9"}`

		var in PredictInput
		require.NoError(t, json.Unmarshal([]byte(body), &in))

		features, err := in.Features()
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, features.Vector())
	})
}

func TestPredictInput_Features(t *testing.T) {
	t.Run("complete input", func(t *testing.T) {
		features, err := sampleInput().Features()

		require.NoError(t, err)
		assert.Equal(t, &entity.PatientFeatures{
			Haemoglobin:        2,
			SpecificGravity:    1,
			Albumin:            3,
			BloodGlucoseRandom: 1,
			Sugar:              0,
			Age:                2,
			BloodUrea:          2,
			BloodPressure:      1,
			SerumCreatinine:    2,
			Sodium:             1,
		}, features)
	})

	t.Run("empty input lists every field", func(t *testing.T) {
		_, err := (&PredictInput{}).Features()

		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		for _, name := range entity.FeatureNames {
			assert.Contains(t, err.Error(), name)
		}
	})
}

func TestKindOf(t *testing.T) {
	cause := errors.New("cause")

	assert.Equal(t, KindValidation, KindOf(NewValidationError(cause)))
	assert.Equal(t, KindInference, KindOf(NewInferenceError(cause)))
	assert.Equal(t, KindUnexpected, KindOf(cause))
	assert.Equal(t, KindUnexpected, KindOf(nil))

	wrapped := errors.Join(errors.New("outer"), NewInferenceError(cause))
	assert.Equal(t, KindInference, KindOf(wrapped))

	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "inference", KindInference.String())
	assert.Equal(t, "unexpected", KindUnexpected.String())
	assert.Equal(t, "inference failure: cause", NewInferenceError(cause).Error())
}
