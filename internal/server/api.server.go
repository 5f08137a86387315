package serverApp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"draftorder-gateway/internal/pkg/middleware"
	"draftorder-gateway/internal/pkg/shopify"

	draftorderHandler "draftorder-gateway/internal/handler/draftorder"
	draftorderService "draftorder-gateway/internal/service/draftorder"

	"draftorder-gateway/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup initializes the HTTP server with middleware and routes
func Setup(
	engine *gin.Engine,
	ctx context.Context,
	wg *sync.WaitGroup,
	shopifyClient *shopify.Client,
	baseURL string,
) {
	InitMiddleware(engine)

	// Set swagger host dynamically from APP_BASE_URL
	if parsed, err := url.Parse(baseURL); err == nil {
		docs.SwaggerInfo.Host = parsed.Host
		if strings.HasPrefix(baseURL, "https") {
			docs.SwaggerInfo.Schemes = []string{"https"}
		} else {
			docs.SwaggerInfo.Schemes = []string{"http"}
		}
	}

	// Swagger UI
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": 200})
	})

	// Gin routes per method, so "any other method" needs NoMethod to
	// produce the 405 contract instead of a 404.
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":   "method_not_allowed",
			"message": fmt.Sprintf("method %s is not allowed on this route", c.Request.Method),
		})
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "route not found",
		})
	})

	e := engine.Group(BasePath())
	InitRoutes(e, ctx, shopifyClient)
}

// BasePath returns the base API path
func BasePath() string {
	return "/api"
}

// InitMiddleware initializes global middleware
func InitMiddleware(e *gin.Engine) {
	e.Use(middleware.CorsMiddleware())
	e.Use(middleware.RequestInit())
	e.Use(middleware.ResponseInit())
}

func InitRoutes(e *gin.RouterGroup, ctx context.Context, shopifyClient *shopify.Client) {
	// === Draft orders ===
	DraftOrderService := draftorderService.NewService(ctx, shopifyClient)
	DraftOrderHandler := draftorderHandler.NewHandler(ctx, DraftOrderService)
	DraftOrderHandler.NewRoutes(e)
}
