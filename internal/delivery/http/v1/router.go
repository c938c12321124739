package v1

import (
	"net/http"

	"go-jobportal-forms/config"
	"go-jobportal-forms/internal/delivery/http/middleware"
	"go-jobportal-forms/internal/delivery/http/response"
	"go-jobportal-forms/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	RegistrationUC domain.RegistrationUsecase
	ApplicationUC  domain.ApplicationUsecase
	InflightGuard  domain.InflightGuard
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	guard := func(form string) gin.HandlerFunc {
		return middleware.SingleSubmission(form, deps.InflightGuard, deps.Config.InflightTTL)
	}

	// Public routes
	NewRegistrationHandler(v1, deps.RegistrationUC, guard)

	// Logged-in routes
	protected := v1.Group("")
	protected.Use(middleware.RequireUser())
	{
		NewApplicationHandler(protected, deps.ApplicationUC, guard)
	}

	return r
}
