package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ckd-predictor/api-service/internal/usecase"
)

// ErrorMapping is the HTTP outcome of a prediction error
type ErrorMapping struct {
	StatusCode int
	Kind       usecase.ErrorKind
	Message    string
}

// MapPredictionError maps a prediction error to its HTTP response.
// Every kind currently yields 500 with the generic message; the kind is kept
// for logging and metrics only.
func MapPredictionError(err error) ErrorMapping {
	kind := usecase.KindOf(err)
	switch kind {
	case usecase.KindValidation, usecase.KindInference:
		return ErrorMapping{
			StatusCode: http.StatusInternalServerError,
			Kind:       kind,
			Message:    GenericErrorMessage,
		}
	default:
		return ErrorMapping{
			StatusCode: http.StatusInternalServerError,
			Kind:       usecase.KindUnexpected,
			Message:    GenericErrorMessage,
		}
	}
}

// HandlePredictionError sends the response for a prediction error and
// returns the mapping used.
func HandlePredictionError(c *gin.Context, err error) ErrorMapping {
	m := MapPredictionError(err)
	respondError(c, m.StatusCode, m.Message)
	return m
}

// HandleInternalError sends the generic error response
func HandleInternalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, GenericErrorMessage)
}
