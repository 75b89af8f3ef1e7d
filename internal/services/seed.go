package services

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// SeedTarget is a collection that can be counted and bulk loaded.
type SeedTarget[T any] interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, docs []T) error
}

type SeedService struct {
	dealers  SeedTarget[models.Dealer]
	reviews  SeedTarget[models.Review]
	vehicles SeedTarget[models.Vehicle]
	cars     *CarService
}

func NewSeedService(dealers SeedTarget[models.Dealer], reviews SeedTarget[models.Review], vehicles SeedTarget[models.Vehicle], cars *CarService) *SeedService {
	return &SeedService{dealers: dealers, reviews: reviews, vehicles: vehicles, cars: cars}
}

// Seed loads the embedded fixtures into every empty collection and seeds the car catalog.
func (s *SeedService) Seed(ctx context.Context) error {
	if err := seedCollection(ctx, "dealerships", "fixtures/dealerships.json", s.dealers); err != nil {
		return err
	}
	if err := seedCollection(ctx, "reviews", "fixtures/reviews.json", s.reviews); err != nil {
		return err
	}
	if err := seedCollection(ctx, "cars", "fixtures/inventory.json", s.vehicles); err != nil {
		return err
	}
	if s.cars != nil {
		return s.cars.EnsureCatalog(ctx)
	}
	return nil
}

func seedCollection[T any](ctx context.Context, name, path string, target SeedTarget[T]) error {
	count, err := target.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if count > 0 {
		logger.Infof("Collection %s already has %d documents, skipping", name, count)
		return nil
	}

	raw, err := fixtures.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s fixtures: %w", name, err)
	}
	var docs []T
	if err := json.Unmarshal(raw, &docs); err != nil {
		return fmt.Errorf("parse %s fixtures: %w", name, err)
	}
	if err := target.InsertMany(ctx, docs); err != nil {
		return err
	}
	logger.Infof("Seeded %d documents into %s", len(docs), name)
	return nil
}
