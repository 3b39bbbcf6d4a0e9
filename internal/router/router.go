package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/culinacart/recipes-api/internal/api"
	"github.com/culinacart/recipes-api/internal/logger"
	"github.com/culinacart/recipes-api/internal/middleware"
	"github.com/culinacart/recipes-api/internal/types"
)

// Setup configures the application routes. Reads (GET /recipes,
// GET /recipes/:id) are public; all mutations require a bearer token.
func Setup(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
	validator middleware.TokenValidator,
	log *logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsCfg))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.Response{Success: false, Message: "Not found"})
	})

	router.POST("/login", authHandler.Login)
	router.GET("/health", healthHandler.Check)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", recipeHandler.List)
		recipes.GET("/:id", recipeHandler.Get)

		protected := recipes.Group("")
		protected.Use(middleware.AuthMiddleware(validator))
		{
			protected.POST("", recipeHandler.Create)
			protected.PATCH("/:id", recipeHandler.Update)
			protected.DELETE("/:id", recipeHandler.Delete)
		}
	}

	return router
}
