package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/services"
	"github.com/princeprakhar/dealership-reviews/internal/types"
)

// The handlers depend on these narrow views of the services package.

type DealerService interface {
	GetDealers(ctx context.Context, state string) ([]models.Dealer, error)
	GetDealer(ctx context.Context, id int) (*models.Dealer, error)
	GetInventory(ctx context.Context, dealerID int) ([]models.Vehicle, error)
}

type CarService interface {
	GetCarModels(ctx context.Context) ([]models.CarChoice, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, req types.AddReviewRequest) (*models.Review, error)
	GetDealerReviews(ctx context.Context, dealerID int) ([]models.Review, error)
}

type AuthService interface {
	Login(ctx context.Context, req types.LoginRequest) (*services.AuthResult, error)
	Register(ctx context.Context, req types.RegisterRequest) (*services.AuthResult, error)
	Logout(ctx context.Context, token string) error
}

func dealerIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
