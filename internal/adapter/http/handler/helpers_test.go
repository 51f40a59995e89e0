package handler

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ckd-predictor/api-service/internal/usecase"
)

func TestBindPredictInput(t *testing.T) {
	t.Run("complete body", func(t *testing.T) {
		input, err := BindPredictInput([]byte(sampleBody))

		require.NoError(t, err)
		features, err := input.Features()
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 1, 3, 1, 0, 2, 2, 1, 2, 1}, features.Vector())
	})

	t.Run("zero values satisfy required", func(t *testing.T) {
		body := `{"haemoglobin_cat":0,"specific_gravity_cat":0,"albumin_cat":0,"blood_glucose_random_cat":0,"sugar_cat":0,"age_cat":0,"blood_urea_cat":0,"blood_pressure_cat":0,"serum_creatinine_cat":0,"sodium_cat":0}`

		_, err := BindPredictInput([]byte(body))

		assert.NoError(t, err)
	})

	t.Run("missing fields are validation failures", func(t *testing.T) {
		_, err := BindPredictInput([]byte(`{"haemoglobin_cat":2}`))

		require.Error(t, err)
		assert.Equal(t, usecase.KindValidation, usecase.KindOf(err))

		fields := InvalidFields(err)
		assert.Len(t, fields, 9)
		assert.Contains(t, fields, "sodium_cat")
		assert.NotContains(t, fields, "haemoglobin_cat")
	})

	t.Run("decode errors are validation failures", func(t *testing.T) {
		_, err := BindPredictInput([]byte(`{"haemoglobin_cat":"two"}`))

		require.Error(t, err)
		assert.Equal(t, usecase.KindValidation, usecase.KindOf(err))
		assert.Empty(t, InvalidFields(err))
	})
}

func TestInvalidFields_NonValidationError(t *testing.T) {
	assert.Nil(t, InvalidFields(errors.New("plain")))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(RequestIDKey, "req-123")

	requestLogger(c, base).Info("hello")

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
}
