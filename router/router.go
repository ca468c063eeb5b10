package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MotorDesk/policy-extraction-backend/config"
	"github.com/MotorDesk/policy-extraction-backend/handlers"
	"github.com/MotorDesk/policy-extraction-backend/middleware"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config            *config.Config
	HealthHandler     *handlers.HealthHandler
	ProcessingHandler *handlers.ProcessingHandler
	Logger            *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Versioned API Group (v1)
	v1 := r.Group("/v1")
	{
		processing := v1.Group("/processing")
		{
			processing.POST("/start", deps.ProcessingHandler.StartProcessing)
			processing.GET("/status/:company_id", deps.ProcessingHandler.GetProcessingStatus)
		}
	}

	return r
}
