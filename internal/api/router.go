package api

import (
	"net/http"
	"time"

	"github.com/cinestream-cms/internal/config"
	"github.com/cinestream-cms/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	publicHandler := NewPublicHandler(services, log)
	adminHandler := NewAdminHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public reading surface
		v1.GET("/articles", publicHandler.ListArticles)
		v1.GET("/articles/:slug", publicHandler.GetArticle)
		v1.GET("/homepage", publicHandler.Homepage)
		v1.GET("/site-config", publicHandler.SiteConfig)

		// Admin console
		admin := v1.Group("/admin")
		admin.POST("/login", adminHandler.Login)

		authed := admin.Group("")
		authed.Use(adminHandler.requireSession())
		{
			authed.POST("/logout", adminHandler.Logout)
			authed.GET("/notice", adminHandler.Notice)
			authed.GET("/articles", adminHandler.ListArticles)
			authed.DELETE("/articles/:id", adminHandler.DeleteArticle)

			authed.POST("/drafts", adminHandler.NewDraft)
			authed.POST("/drafts/from/:id", adminHandler.EditArticle)
			authed.GET("/draft", adminHandler.GetDraft)
			authed.PATCH("/draft", adminHandler.UpdateDraft)
			authed.PUT("/draft/category", adminHandler.ChangeCategory)
			authed.POST("/draft/publish", adminHandler.Publish)
			authed.DELETE("/draft", adminHandler.Discard)

			authed.POST("/draft/faqs", adminHandler.AddFAQ)
			authed.PUT("/draft/faqs/:index", adminHandler.UpdateFAQ)
			authed.DELETE("/draft/faqs/:index", adminHandler.RemoveFAQ)

			authed.POST("/draft/movie-list", adminHandler.AddListItem)
			authed.PUT("/draft/movie-list/:item_id", adminHandler.UpdateListItem)
			authed.DELETE("/draft/movie-list/:item_id", adminHandler.RemoveListItem)

			authed.GET("/site-config", adminHandler.GetSiteConfig)
			authed.PUT("/site-config", adminHandler.SaveSiteConfig)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "cinestream-cms",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Token")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
