package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/princeprakhar/dealership-reviews/internal/database"
	"github.com/princeprakhar/dealership-reviews/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DealerRepository struct {
	coll *mongo.Collection
}

func NewDealerRepository(db *mongo.Database) *DealerRepository {
	return &DealerRepository{coll: db.Collection(database.DealershipsCollection)}
}

// Find returns dealers in id order, restricted to state unless it is empty.
func (r *DealerRepository) Find(ctx context.Context, state string) ([]models.Dealer, error) {
	filter := bson.M{}
	if state != "" {
		filter["state"] = state
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("DealerRepository.Find: %w", err)
	}
	dealers := make([]models.Dealer, 0)
	if err := cur.All(ctx, &dealers); err != nil {
		return nil, fmt.Errorf("DealerRepository.Find decode: %w", err)
	}
	return dealers, nil
}

func (r *DealerRepository) FindByID(ctx context.Context, id int) (*models.Dealer, error) {
	var dealer models.Dealer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&dealer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("DealerRepository.FindByID: %w", err)
	}
	return &dealer, nil
}

func (r *DealerRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *DealerRepository) InsertMany(ctx context.Context, dealers []models.Dealer) error {
	if len(dealers) == 0 {
		return nil
	}
	docs := make([]interface{}, len(dealers))
	for i := range dealers {
		docs[i] = dealers[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("DealerRepository.InsertMany: %w", err)
	}
	return nil
}
