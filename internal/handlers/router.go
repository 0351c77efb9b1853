package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage"
	"portfolio-backend/pkg/logger"
)

// NewRouter wires middleware, handlers and the route table.
func NewRouter(cfg *config.Config, stores *storage.Stores, tokens auth.TokenStore, authService *services.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(
		logger.GinRecovery(),
		middleware.RequestID(),
		logger.GinLogger(),
		middleware.CORS(cfg.CORS.Origins),
	)

	authHandler := NewAuthHandler(authService)
	themeHandler := NewThemeHandler(stores.Themes)
	userHandler := NewUserHandler(stores.Users)
	projectHandler := NewProjectHandler(stores.Projects, stores.Users)
	skillHandler := NewSkillHandler(stores.Skills)
	healthHandler := NewHealthHandler(stores)

	requireAuth := middleware.TokenRequired(tokens)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login",
			middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
			authHandler.Login)
		authGroup.POST("/logout", requireAuth, authHandler.Logout)
	}

	theme := r.Group("/theme")
	{
		theme.GET("", themeHandler.List)
		theme.GET("/:themeName", themeHandler.GetByName)
		theme.POST("", requireAuth, themeHandler.Create)
		theme.PUT("/:themeName", requireAuth, themeHandler.Update)
		theme.DELETE("/:themeName", themeHandler.Delete)
	}

	user := r.Group("/user")
	{
		user.GET("", userHandler.List)
		user.GET("/:username", userHandler.GetByUsername)
		user.POST("", userHandler.Create)
		user.PUT("/:username", userHandler.Update)
		user.DELETE("/:username", userHandler.Delete)
	}

	project := r.Group("/project")
	{
		project.GET("", projectHandler.List)
		project.GET("/:id", projectHandler.GetByID)
		project.POST("", requireAuth, projectHandler.Create)
		project.PUT("/:id", projectHandler.Update)
		project.DELETE("/:id", projectHandler.Delete)
	}

	skill := r.Group("/skill")
	{
		skill.GET("", skillHandler.List)
		skill.GET("/:name", skillHandler.GetByName)
		skill.POST("", skillHandler.Create)
		skill.PUT("/:name", skillHandler.Update)
		skill.DELETE("/:name", skillHandler.Delete)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/test/collections", healthHandler.Collections)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Not Found",
			"message": "route not found",
			"endpoints": gin.H{
				"auth":     "/auth/login, /auth/logout",
				"themes":   "/theme, /theme/:themeName",
				"users":    "/user, /user/:username",
				"projects": "/project, /project/:id",
				"skills":   "/skill, /skill/:name",
				"misc":     "/health, /test/collections",
			},
		})
	})

	return r
}
