package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ckd-predictor/api-service/internal/domain/service"
)

// RootMessage is the static payload of GET /
const RootMessage = "Test API"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier service.Classifier
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(classifier service.Classifier) *HealthHandler {
	return &HealthHandler{classifier: classifier}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string             `json:"status"`
	Components map[string]string  `json:"components"`
	Model      *service.ModelInfo `json:"model,omitempty"`
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: RootMessage})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, HealthStatus{
			Status:     "unhealthy",
			Components: map[string]string{"model": "not loaded"},
		})
		return
	}

	info := h.classifier.Info()
	c.JSON(http.StatusOK, HealthStatus{
		Status:     "healthy",
		Components: map[string]string{"model": "ok"},
		Model:      &info,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
