package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/repository"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/utils"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrMissingReviewFields = errors.New("all details are mandatory")

type ReviewService struct {
	reviews  ReviewStore
	dealers  DealerStore
	analyzer SentimentAnalyzer
}

func NewReviewService(reviews ReviewStore, dealers DealerStore, analyzer SentimentAnalyzer) *ReviewService {
	return &ReviewService{reviews: reviews, dealers: dealers, analyzer: analyzer}
}

// CreateReview validates req, labels it and stores it.
func (s *ReviewService) CreateReview(ctx context.Context, req types.AddReviewRequest) (*models.Review, error) {
	review := models.Review{
		ID:           uuid.NewString(),
		Name:         utils.SanitizeString(req.Name),
		Dealership:   req.Dealership,
		Review:       utils.SanitizeString(req.Review),
		Purchase:     req.Purchase,
		PurchaseDate: utils.SanitizeString(req.PurchaseDate),
		CarMake:      utils.SanitizeString(req.CarMake),
		CarModel:     utils.SanitizeString(req.CarModel),
		CarYear:      req.CarYear,
	}

	if review.Name == "" || review.Review == "" || review.PurchaseDate == "" ||
		review.CarMake == "" || review.CarModel == "" || review.CarYear <= 0 {
		return nil, ErrMissingReviewFields
	}

	if _, err := s.dealers.FindByID(ctx, review.Dealership); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDealerNotFound
		}
		return nil, fmt.Errorf("failed to fetch dealer %d: %w", review.Dealership, err)
	}

	review.Sentiment = s.sentimentOf(ctx, review.Review)

	if err := s.reviews.Insert(ctx, &review); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	return &review, nil
}

// GetDealerReviews returns the reviews of a dealer, labelling any that were stored without a sentiment.
func (s *ReviewService) GetDealerReviews(ctx context.Context, dealerID int) ([]models.Review, error) {
	reviews, err := s.reviews.FindByDealer(ctx, dealerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	for i := range reviews {
		if reviews[i].Sentiment == "" {
			reviews[i].Sentiment = s.sentimentOf(ctx, reviews[i].Review)
		}
	}
	return reviews, nil
}

func (s *ReviewService) sentimentOf(ctx context.Context, text string) string {
	if s.analyzer == nil {
		return models.SentimentNeutral
	}
	label, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		logger.WithFields(logrus.Fields{"error": err}).Warn("sentiment analysis failed, defaulting to neutral")
		return models.SentimentNeutral
	}
	return models.NormalizeSentiment(label)
}
