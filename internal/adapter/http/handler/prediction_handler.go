package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ckd-predictor/api-service/internal/infrastructure/metrics"
	"github.com/ckd-predictor/api-service/internal/usecase"
)

// PredictionHandler handles prediction requests
type PredictionHandler struct {
	predictionUC usecase.PredictionUsecase
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewPredictionHandler creates a new prediction handler. m may be nil.
func NewPredictionHandler(predictionUC usecase.PredictionUsecase, logger *zap.Logger, m *metrics.Metrics) *PredictionHandler {
	return &PredictionHandler{
		predictionUC: predictionUC,
		logger:       logger,
		metrics:      m,
	}
}

// Predict handles POST /predict
func (h *PredictionHandler) Predict(c *gin.Context) {
	start := time.Now()
	log := requestLogger(c, h.logger)

	raw, err := c.GetRawData()
	if err != nil {
		h.fail(c, log, start, usecase.NewValidationError(err))
		return
	}
	log.Info("Received prediction request", zap.ByteString("payload", raw))

	input, err := BindPredictInput(raw)
	if err != nil {
		h.fail(c, log, start, err)
		return
	}

	output, err := h.predictionUC.Predict(c.Request.Context(), input)
	if err != nil {
		h.fail(c, log, start, err)
		return
	}

	h.metrics.ObservePrediction(string(output.Label), time.Since(start))
	respondSuccess(c, http.StatusOK, newPredictionResponse(output))
}

func (h *PredictionHandler) fail(c *gin.Context, log *zap.Logger, start time.Time, err error) {
	m := HandlePredictionError(c, err)

	fields := []zap.Field{zap.Error(err), zap.Stringer("kind", m.Kind)}
	if invalid := InvalidFields(err); len(invalid) > 0 {
		fields = append(fields, zap.Strings("fields", invalid))
	}
	log.Error("Prediction error", fields...)

	h.metrics.ObserveFailure(m.Kind.String(), time.Since(start))
}
