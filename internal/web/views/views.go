// Package views holds the state and behaviour of each front-end view,
// independent of how the router renders it.
package views

import (
	"context"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

// StaticHome is the landing page the Home view and logout send the browser to.
const StaticHome = "/static/Home.html"

// API is the backend as the views see it; *client.Client satisfies it.
type API interface {
	GetDealers(ctx context.Context, state string) ([]models.Dealer, error)
	GetDealer(ctx context.Context, id string) (*models.Dealer, error)
	GetDealerReviews(ctx context.Context, id string) ([]models.Review, error)
	GetCars(ctx context.Context) ([]models.CarChoice, error)
	AddReview(ctx context.Context, token string, review types.AddReviewRequest) (*types.StatusResponse, error)
	Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error)
	Logout(ctx context.Context, token string) (*types.LogoutResponse, error)
	Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error)
}

// Navigation asks the router to move the browser to Path. FullReload marks
// navigations that leave the current view state behind entirely.
type Navigation struct {
	Path       string
	FullReload bool
}

// Home redirects to the static landing page.
func Home() Navigation {
	return Navigation{Path: StaticHome, FullReload: true}
}

func logFetchFailure(view, endpoint string, err error) {
	logger.WithFields(logrus.Fields{
		"view":     view,
		"endpoint": endpoint,
		"error":    err,
	}).Error("fetch failed")
}
