package router

import (
	"net/http"

	"github.com/ngocdev/portfolio-api/internal/cache"
	"github.com/ngocdev/portfolio-api/internal/http/handlers/admin"
	"github.com/ngocdev/portfolio-api/internal/http/handlers/public"
	"github.com/ngocdev/portfolio-api/internal/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires the middleware chain and all API routes.
func SetupRouter(container *provider.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(zap.L()))
	r.Use(CORSMiddleware(container.Config.CORS))

	publicHandler := public.New(container)
	adminHandler := admin.New(container)

	writeLimiter := writeRateLimiter(container)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		blog := api.Group("/blog")
		{
			blog.GET("", publicHandler.GetBlogPosts)
			blog.GET("/tags", publicHandler.GetBlogTags)
			blog.GET("/:slug", publicHandler.GetBlogPostBySlug)

			blog.POST("", writeLimiter, adminHandler.CreateBlogPost)
			blog.PUT("/:id", writeLimiter, adminHandler.UpdateBlogPost)
			blog.DELETE("/:id", writeLimiter, adminHandler.DeleteBlogPost)
		}

		tags := api.Group("/tags")
		{
			tags.POST("", writeLimiter, adminHandler.CreateTag)
			tags.DELETE("/:id", writeLimiter, adminHandler.DeleteTag)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", publicHandler.GetSkills)
			skills.GET("/slug/:slug", publicHandler.GetSkillBySlug)
			skills.GET("/:id", publicHandler.GetSkillByID)

			skills.POST("", writeLimiter, adminHandler.CreateSkill)
			skills.PUT("/:id", writeLimiter, adminHandler.UpdateSkill)
			skills.DELETE("/:id", writeLimiter, adminHandler.DeleteSkill)
		}
	}

	return r
}

// writeRateLimiter limits write endpoints per client IP. Without
// redis the limiter is a no-op passthrough.
func writeRateLimiter(container *provider.Container) gin.HandlerFunc {
	rule := RateLimitRule{
		Prefix:        cache.Prefix() + ":rl:write",
		WindowSeconds: container.Config.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   container.Config.Security.WriteRateLimit.MaxRequests,
		MessageKey:    "error.rate_limited",
	}
	return RateLimitMiddleware(cache.Client(), rule, KeyByIP)
}
