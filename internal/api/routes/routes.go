package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/api/handlers"
	"github.com/princeprakhar/dealership-reviews/internal/api/middleware"
	"github.com/princeprakhar/dealership-reviews/internal/config"
	"github.com/princeprakhar/dealership-reviews/internal/utils"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
)

// Authenticator issues, validates and revokes bearer tokens.
type Authenticator interface {
	handlers.AuthService
	middleware.TokenAuthenticator
}

// Services bundles what the api routes are served from.
type Services struct {
	Auth    Authenticator
	Dealers handlers.DealerService
	Reviews handlers.ReviewService
	Cars    handlers.CarService
}

func SetupRoutes(router *gin.Engine, svc Services, cfg *config.Config) {
	// Middleware
	router.Use(middleware.RequestLogger("api"))
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(svc.Auth)
	dealerHandler := handlers.NewDealerHandler(svc.Dealers, svc.Cars)
	reviewHandler := handlers.NewReviewHandler(svc.Reviews)

	limited := middleware.RateLimitMiddleware(cfg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Dealers and inventory
	router.GET("/get_dealers/*state", dealerHandler.GetDealers)
	router.GET("/dealer/:id", dealerHandler.GetDealer)
	router.GET("/inventory/dealer/:id", dealerHandler.GetInventory)
	router.GET("/get_cars/", dealerHandler.GetCars)

	// Reviews
	router.GET("/reviews/dealer/:id", reviewHandler.GetDealerReviews)
	router.POST("/add_review/", limited, middleware.AuthMiddleware(svc.Auth), reviewHandler.AddReview)

	// Auth
	router.POST("/login", limited, authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.POST("/register/", limited, authHandler.Register)

	router.NoRoute(utils.SendNotFound)

	logger.Info("Routes initialized successfully")
}
