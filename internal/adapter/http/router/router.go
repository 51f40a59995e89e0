package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ckd-predictor/api-service/internal/adapter/http/handler"
	"github.com/ckd-predictor/api-service/internal/adapter/http/middleware"
	"github.com/ckd-predictor/api-service/internal/domain/service"
	"github.com/ckd-predictor/api-service/internal/infrastructure/metrics"
	"github.com/ckd-predictor/api-service/internal/usecase"
)

// Options carries everything the router needs
type Options struct {
	Classifier     service.Classifier
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// Setup creates and configures the Gin router
func Setup(opts Options) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins...))

	// Health endpoints
	healthHandler := handler.NewHealthHandler(opts.Classifier)
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	var m *metrics.Metrics
	if opts.Registry != nil {
		m = metrics.New(opts.Registry)
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	// API documentation
	docsHandler := handler.NewDocsHandler()
	router.GET("/apispec.json", docsHandler.APISpec)

	// Initialize usecases
	predictionUC := usecase.NewPredictionUsecase(opts.Classifier)

	// Initialize handlers
	predictionHandler := handler.NewPredictionHandler(predictionUC, opts.Logger, m)

	router.POST("/predict", middleware.BodyLimit(opts.MaxBodyBytes), predictionHandler.Predict)

	return router
}
