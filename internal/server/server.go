package server

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"userboard/internal/common/config"
	"userboard/internal/common/middleware"
	userhttp "userboard/internal/features/user/delivery/http"
	"userboard/internal/features/user/repository"
	"userboard/internal/features/user/service"
	"userboard/web"
)

// New builds the gin engine with routes and middlewares wired.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.Server.Origin},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	userhttp.NewUserHandler(svc).RegisterRoutes(router, api)

	return router
}
