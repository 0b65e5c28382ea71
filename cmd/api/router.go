package main

import (
	"context"
	"net/http"
	"time"

	"travelblog-backend/internal/shared/middleware"
	"travelblog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupPostRoutes(api, c)
		setupTagRoutes(api, c)
	}

	return router
}

// ========================================
// POST ROUTES
// ========================================
// Static segments (featured, search, by-tag, by-slug) must be registered
// alongside :id; gin routes statics before the parameter.
func setupPostRoutes(api *gin.RouterGroup, c *container.Container) {
	posts := api.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/featured", c.PostHandler.GetFeatured)
		posts.GET("/search", c.PostHandler.Search)
		posts.GET("/by-tag/:tagId", c.PostHandler.ListByTag)
		posts.GET("/by-slug/:slug", c.PostHandler.GetBySlug)
		posts.GET("/:id", c.PostHandler.GetByID)
		posts.PUT("/:id", c.PostHandler.Update)
		posts.DELETE("/:id", c.PostHandler.Delete)
	}

	// Creation lives on its own path for compatibility with the admin
	// console, which posts here rather than to the collection.
	api.POST("/posts-create", c.PostHandler.Create)
}

// ========================================
// TAG ROUTES
// ========================================
func setupTagRoutes(api *gin.RouterGroup, c *container.Container) {
	tags := api.Group("/tags")
	{
		tags.GET("", c.TagHandler.List)
		tags.PUT("/:id", c.TagHandler.Update)
		tags.DELETE("/:id", c.TagHandler.Delete)
	}

	api.POST("/tags-create", c.TagHandler.Create)
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"backend":   appCtx.Config.Storage.Backend,
		}

		statusCode := http.StatusOK
		if appCtx.DB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				health["status"] = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		c.JSON(statusCode, health)
	}
}
