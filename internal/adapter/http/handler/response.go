package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ckd-predictor/api-service/internal/usecase"
)

// TimestampLayout is ISO-8601 local time with microseconds
const TimestampLayout = "2006-01-02T15:04:05.000000"

// timestampLayoutWholeSecond is used when the microsecond part is zero
const timestampLayoutWholeSecond = "2006-01-02T15:04:05"

// GenericErrorMessage is the only error text ever returned to clients
const GenericErrorMessage = "Internal server error"

// PredictionResponse represents a successful prediction
type PredictionResponse struct {
	Success        bool               `json:"success"`
	PredictedLabel string             `json:"predicted_label"`
	Probabilities  map[string]float64 `json:"probabilities"`
	Timestamp      string             `json:"timestamp"`
}

// ErrorResponse represents a failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse represents a static informational payload
type MessageResponse struct {
	Message string `json:"message"`
}

func newPredictionResponse(out *usecase.PredictionOutput) PredictionResponse {
	probabilities := make(map[string]float64, len(out.Probabilities))
	for label, p := range out.Probabilities {
		probabilities[string(label)] = p
	}
	return PredictionResponse{
		Success:        true,
		PredictedLabel: string(out.Label),
		Probabilities:  probabilities,
		Timestamp:      formatTimestamp(out.Timestamp),
	}
}

func formatTimestamp(t time.Time) string {
	t = t.Local()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayoutWholeSecond)
	}
	return t.Format(TimestampLayout)
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
