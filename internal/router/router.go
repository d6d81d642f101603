package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vietscan/docs"
	"vietscan/internal/handler"
	"vietscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	docH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Document processing routes (trailing slashes kept for client compatibility)
	r.POST("/process-id-card/", docH.ProcessIDCard)
	r.POST("/process-motobike-registration/", docH.ProcessMotorbikeRegistration)
	r.POST("/process-car-registration/", docH.ProcessCarRegistration)
	r.POST("/process-car-inspection/", docH.ProcessCarInspection)

	return r
}
