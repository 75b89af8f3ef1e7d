package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/repository"
	"github.com/princeprakhar/dealership-reviews/internal/types"
)

var ErrDealerNotFound = errors.New("dealer not found")

type DealerService struct {
	dealers  DealerStore
	vehicles VehicleStore
}

func NewDealerService(dealers DealerStore, vehicles VehicleStore) *DealerService {
	return &DealerService{dealers: dealers, vehicles: vehicles}
}

// GetDealers lists dealers in state; an empty state or "All" lists every dealer.
func (s *DealerService) GetDealers(ctx context.Context, state string) ([]models.Dealer, error) {
	state = strings.TrimSpace(state)
	if state == types.AllStates {
		state = ""
	}
	dealers, err := s.dealers.Find(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dealers: %w", err)
	}
	return dealers, nil
}

func (s *DealerService) GetDealer(ctx context.Context, id int) (*models.Dealer, error) {
	dealer, err := s.dealers.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrDealerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dealer %d: %w", id, err)
	}
	return dealer, nil
}

func (s *DealerService) GetInventory(ctx context.Context, dealerID int) ([]models.Vehicle, error) {
	if _, err := s.GetDealer(ctx, dealerID); err != nil {
		return nil, err
	}
	cars, err := s.vehicles.FindByDealer(ctx, dealerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory for dealer %d: %w", dealerID, err)
	}
	return cars, nil
}
