package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
)

type CarService struct {
	cars CarStore
	mu   sync.Mutex
}

func NewCarService(cars CarStore) *CarService {
	return &CarService{cars: cars}
}

// GetCarModels returns the make/model catalog, seeding it first when it is empty.
func (s *CarService) GetCarModels(ctx context.Context) ([]models.CarChoice, error) {
	if err := s.EnsureCatalog(ctx); err != nil {
		return nil, err
	}
	choices, err := s.cars.ListChoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list car models: %w", err)
	}
	return choices, nil
}

func (s *CarService) EnsureCatalog(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.cars.CountMakes(ctx)
	if err != nil {
		return fmt.Errorf("failed to count car makes: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := DefaultCatalog()
	if err := s.cars.CreateMakes(ctx, catalog); err != nil {
		return fmt.Errorf("failed to seed car catalog: %w", err)
	}
	logger.Infof("Seeded car catalog with %d makes", len(catalog))
	return nil
}

// DefaultCatalog is the make/model list offered when the catalog is empty.
func DefaultCatalog() []models.CarMake {
	model := func(name, body string) models.CarModel {
		return models.CarModel{Name: name, Type: body, Year: 2023}
	}
	return []models.CarMake{
		{Name: "NISSAN", Description: "Great cars. Japanese technology", Models: []models.CarModel{
			model("Pathfinder", models.BodySUV), model("Qashqai", models.BodySUV), model("XTRAIL", models.BodySUV),
		}},
		{Name: "Mercedes", Description: "Great cars. German technology", Models: []models.CarModel{
			model("A-Class", models.BodySedan), model("C-Class", models.BodySedan), model("E-Class", models.BodySedan),
		}},
		{Name: "Audi", Description: "Great cars. German technology", Models: []models.CarModel{
			model("A4", models.BodySedan), model("A5", models.BodySedan), model("A6", models.BodyWagon),
		}},
		{Name: "Kia", Description: "Great cars. Korean technology", Models: []models.CarModel{
			model("Sorrento", models.BodySUV), model("Carnival", models.BodySUV), model("Cerato", models.BodySedan),
		}},
		{Name: "Toyota", Description: "Great cars. Japanese technology", Models: []models.CarModel{
			model("Corolla", models.BodySedan), model("Camry", models.BodySedan), model("Kluger", models.BodySUV),
		}},
	}
}
