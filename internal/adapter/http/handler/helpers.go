package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ckd-predictor/api-service/internal/usecase"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// BindPredictInput decodes and validates a raw prediction body. Any failure
// is returned as a validation error.
func BindPredictInput(raw []byte) (*usecase.PredictInput, error) {
	var input usecase.PredictInput
	if err := binding.JSON.BindBody(raw, &input); err != nil {
		return nil, usecase.NewValidationError(err)
	}
	return &input, nil
}

// InvalidFields returns the JSON names of the fields rejected by struct
// validation, if err carries any.
func InvalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// requestLogger returns logger annotated with the request id
func requestLogger(c *gin.Context, logger *zap.Logger) *zap.Logger {
	if id := c.GetString(RequestIDKey); id != "" {
		return logger.With(zap.String("request_id", id))
	}
	return logger
}
