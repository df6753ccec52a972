package v1

import (
	"net/http"
	"time"

	"go-pcbuilder-backend/config"
	"go-pcbuilder-backend/internal/delivery/http/middleware"
	"go-pcbuilder-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "pc-builder-backend"

type RouterDeps struct {
	QuoteUC          domain.QuoteUsecase
	RecommendationUC domain.RecommendationUsecase
	Forwarder        domain.InferenceForwarder
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	})

	// Public routes (the whole surface is public; callers are gated by origin only)
	public := r.Group("")
	NewQuoteHandler(public, deps.QuoteUC)
	NewRecommendationHandler(public, deps.RecommendationUC)
	NewPredictHandler(public, deps.Forwarder)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
