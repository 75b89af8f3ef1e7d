package services

import (
	"context"
	"time"

	"github.com/princeprakhar/dealership-reviews/internal/models"
)

// The store interfaces are satisfied by the repository package.

type DealerStore interface {
	Find(ctx context.Context, state string) ([]models.Dealer, error)
	FindByID(ctx context.Context, id int) (*models.Dealer, error)
}

type ReviewStore interface {
	FindByDealer(ctx context.Context, dealerID int) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) error
}

type VehicleStore interface {
	FindByDealer(ctx context.Context, dealerID int) ([]models.Vehicle, error)
}

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, userID uint, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type CarStore interface {
	CountMakes(ctx context.Context) (int64, error)
	ListChoices(ctx context.Context) ([]models.CarChoice, error)
	CreateMakes(ctx context.Context, makes []models.CarMake) error
}

type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}

type Mailer interface {
	SendWelcomeEmail(to, name string) error
}
