package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgarza/pluma/config"
	"github.com/dgarza/pluma/controllers"
	"github.com/dgarza/pluma/middleware"
	"github.com/dgarza/pluma/repository"
	"github.com/dgarza/pluma/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authorController := controllers.NewAuthorController(repository.NewAuthorRepository(db))
	postController := controllers.NewPostController(repository.NewPostRepository(db))

	api := r.Group("/api")
	api.Use(middleware.RateLimit())
	api.Use(middleware.ResourceLog(cfg))

	authors := api.Group("/authors")
	authors.GET("", authorController.List)
	authors.GET("/:id", authorController.Get)
	authors.GET("/discharge/:id", authorController.Discharge)
	authors.POST("", authorController.Create)
	authors.PUT("/:id", authorController.Update)
	authors.DELETE("/:id", authorController.Delete)

	posts := api.Group("/posts")
	posts.GET("", postController.List)
	posts.GET("/:id", postController.Get)
	posts.POST("/:authorId", postController.Create)
	posts.PUT("/:id", postController.Update)
	posts.DELETE("/:id", postController.Delete)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Message(ctx, http.StatusNotFound, "route not found")
	})

	return r
}
