package repository

import (
	"context"
	"fmt"

	"github.com/princeprakhar/dealership-reviews/internal/database"
	"github.com/princeprakhar/dealership-reviews/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(database.ReviewsCollection)}
}

func (r *ReviewRepository) FindByDealer(ctx context.Context, dealerID int) ([]models.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{"dealership": dealerID})
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByDealer: %w", err)
	}
	reviews := make([]models.Review, 0)
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByDealer decode: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("ReviewRepository.Insert: %w", err)
	}
	return nil
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *ReviewRepository) InsertMany(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	docs := make([]interface{}, len(reviews))
	for i := range reviews {
		docs[i] = reviews[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("ReviewRepository.InsertMany: %w", err)
	}
	return nil
}
