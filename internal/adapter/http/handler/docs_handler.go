package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ckd-predictor/api-service/internal/domain/entity"
)

// featureExamples are the documented example codes, in model order
var featureExamples = [entity.FeatureCount]int{2, 1, 3, 1, 0, 2, 2, 1, 2, 1}

// DocsHandler serves the OpenAPI description of the prediction endpoint
type DocsHandler struct {
	spec gin.H
}

// NewDocsHandler builds the document once; it never changes at runtime
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{spec: buildAPISpec()}
}

// APISpec handles GET /apispec.json
func (h *DocsHandler) APISpec(c *gin.Context) {
	c.JSON(http.StatusOK, h.spec)
}

func buildAPISpec() gin.H {
	properties := gin.H{}
	required := make([]string, 0, entity.FeatureCount)
	for i, name := range entity.FeatureNames {
		properties[name] = gin.H{"type": "integer", "example": featureExamples[i]}
		required = append(required, name)
	}

	return gin.H{
		"swagger": "2.0",
		"info": gin.H{
			"title":   "CKD Prediction API",
			"version": "1.0.0",
		},
		"paths": gin.H{
			"/predict": gin.H{
				"post": gin.H{
					"tags":        []string{"Prediction"},
					"summary":     "Predict Kidney Disease Classification",
					"description": "Accepts categorical features and returns the kidney disease classification.",
					"consumes":    []string{"application/json"},
					"produces":    []string{"application/json"},
					"parameters": []gin.H{{
						"name":     "body",
						"in":       "body",
						"required": true,
						"schema": gin.H{
							"type":       "object",
							"properties": properties,
							"required":   required,
						},
					}},
					"responses": gin.H{
						"200": gin.H{
							"description": "Prediction result",
							"schema": gin.H{
								"type": "object",
								"properties": gin.H{
									"success":         gin.H{"type": "boolean", "example": true},
									"predicted_label": gin.H{"type": "string", "example": string(entity.LabelCKD)},
									"probabilities": gin.H{
										"type": "object",
										"properties": gin.H{
											string(entity.LabelNotCKD): gin.H{"type": "number", "example": 0.1345},
											string(entity.LabelCKD):    gin.H{"type": "number", "example": 0.8655},
										},
									},
									"timestamp": gin.H{"type": "string", "example": "2025-06-15T12:34:56.789123"},
								},
							},
						},
						"500": gin.H{
							"description": GenericErrorMessage,
							"schema": gin.H{
								"type": "object",
								"properties": gin.H{
									"success": gin.H{"type": "boolean", "example": false},
									"error":   gin.H{"type": "string", "example": GenericErrorMessage},
								},
							},
						},
					},
				},
			},
		},
	}
}
