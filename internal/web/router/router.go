// Package router serves the web front-end: it maps paths to views and renders them.
package router

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/api/middleware"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"github.com/princeprakhar/dealership-reviews/internal/web/views"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Handler struct {
	api      views.API
	sessions *session.Manager
}

func SetupRoutes(router *gin.Engine, api views.API, sessions *session.Manager) {
	router.Use(middleware.RequestLogger("web"))
	router.Use(gin.Recovery())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	h := &Handler{api: api, sessions: sessions}

	router.GET("/", h.Home)
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterPage)
	router.POST("/register", h.Register)
	router.GET("/logout", h.Logout)
	router.GET("/dealers", h.Dealers)
	router.GET("/dealer/:id", h.Dealer)
	router.GET("/postreview/:id", h.PostReviewPage)
	router.POST("/postreview/:id", h.PostReview)

	router.NoRoute(h.NotFound)

	logger.Info("Web routes initialized successfully")
}
