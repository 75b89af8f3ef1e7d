package repository

import (
	"context"
	"fmt"

	"github.com/princeprakhar/dealership-reviews/internal/database"
	"github.com/princeprakhar/dealership-reviews/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VehicleRepository struct {
	coll *mongo.Collection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{coll: db.Collection(database.CarsCollection)}
}

func (r *VehicleRepository) FindByDealer(ctx context.Context, dealerID int) ([]models.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "make", Value: 1}, {Key: "model", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"dealer_id": dealerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("VehicleRepository.FindByDealer: %w", err)
	}
	cars := make([]models.Vehicle, 0)
	if err := cur.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("VehicleRepository.FindByDealer decode: %w", err)
	}
	return cars, nil
}

func (r *VehicleRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *VehicleRepository) InsertMany(ctx context.Context, cars []models.Vehicle) error {
	if len(cars) == 0 {
		return nil
	}
	docs := make([]interface{}, len(cars))
	for i := range cars {
		docs[i] = cars[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("VehicleRepository.InsertMany: %w", err)
	}
	return nil
}
