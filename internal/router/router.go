package router

import (
	"github.com/gin-gonic/gin"

	"finodex/internal/handler"
	"finodex/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	documentH *handler.DocumentHandler,
	offerH *handler.OfferHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Document processing routes
	documents := v1.Group("/documents")
	documents.POST("/process", documentH.Process)
	documents.POST("/compare", documentH.Compare)
	documents.POST("/register", documentH.Register)
	documents.POST("/verify", documentH.Verify)

	v1.GET("/document-types", documentH.ListDocumentTypes)

	// Stored offer routes
	offers := v1.Group("/offers")
	offers.GET("", offerH.List)
	offers.GET("/export", offerH.Export)

	return r
}
