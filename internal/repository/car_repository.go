package repository

import (
	"context"
	"fmt"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"gorm.io/gorm"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) CountMakes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CarMake{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("CarRepository.CountMakes: %w", err)
	}
	return count, nil
}

// ListChoices returns every model joined with its make.
func (r *CarRepository) ListChoices(ctx context.Context) ([]models.CarChoice, error) {
	choices := make([]models.CarChoice, 0)
	err := r.db.WithContext(ctx).
		Table("car_models").
		Select("car_makes.name AS car_make, car_models.name AS car_model").
		Joins("JOIN car_makes ON car_makes.id = car_models.car_make_id").
		Order("car_makes.name, car_models.name").
		Scan(&choices).Error
	if err != nil {
		return nil, fmt.Errorf("CarRepository.ListChoices: %w", err)
	}
	return choices, nil
}

// CreateMakes inserts makes together with their models in one transaction.
func (r *CarRepository) CreateMakes(ctx context.Context, makes []models.CarMake) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range makes {
			if err := tx.Create(&makes[i]).Error; err != nil {
				return fmt.Errorf("CarRepository.CreateMakes: %w", err)
			}
		}
		return nil
	})
}
