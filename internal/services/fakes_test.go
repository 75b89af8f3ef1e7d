package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/repository"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
)

func init() {
	logger.SetOutput(io.Discard)
}

type fakeDealers struct {
	dealers []models.Dealer
	err     error
}

func (f *fakeDealers) Find(_ context.Context, state string) ([]models.Dealer, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Dealer, 0)
	for _, d := range f.dealers {
		if state == "" || d.State == state {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDealers) FindByID(_ context.Context, id int) (*models.Dealer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.dealers {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeReviews struct {
	mu      sync.Mutex
	reviews []models.Review
	err     error
}

func (f *fakeReviews) FindByDealer(_ context.Context, dealerID int) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Review, 0)
	for _, r := range f.reviews {
		if r.Dealership == dealerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) Insert(_ context.Context, review *models.Review) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, *review)
	return nil
}

type fakeVehicles struct {
	cars []models.Vehicle
}

func (f *fakeVehicles) FindByDealer(_ context.Context, dealerID int) ([]models.Vehicle, error) {
	out := make([]models.Vehicle, 0)
	for _, c := range f.cars {
		if c.DealerID == dealerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeUsers struct {
	mu     sync.Mutex
	users  []models.User
	nextID uint
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.FindByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

type fakeTokens struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (f *fakeTokens) Revoke(_ context.Context, tokenID string, _ uint, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[tokenID], nil
}

type fakeCars struct {
	makes   []models.CarMake
	creates int
}

func (f *fakeCars) CountMakes(context.Context) (int64, error) {
	return int64(len(f.makes)), nil
}

func (f *fakeCars) ListChoices(context.Context) ([]models.CarChoice, error) {
	out := make([]models.CarChoice, 0)
	for _, m := range f.makes {
		for _, model := range m.Models {
			out = append(out, models.CarChoice{CarMake: m.Name, CarModel: model.Name})
		}
	}
	return out, nil
}

func (f *fakeCars) CreateMakes(_ context.Context, makes []models.CarMake) error {
	f.creates++
	f.makes = append(f.makes, makes...)
	return nil
}

type stubAnalyzer struct {
	label string
	err   error
	calls int
}

func (s *stubAnalyzer) Analyze(context.Context, string) (string, error) {
	s.calls++
	return s.label, s.err
}

type recordingMailer struct {
	sent chan string
}

func (m *recordingMailer) SendWelcomeEmail(to, _ string) error {
	m.sent <- to
	return nil
}

var errBoom = errors.New("boom")

func sampleDealers() []models.Dealer {
	return []models.Dealer{
		{ID: 1, City: "El Paso", State: "Texas", FullName: "Holdlamis Car Dealership"},
		{ID: 2, City: "Minneapolis", State: "Minnesota", FullName: "Temp Car Dealership"},
		{ID: 4, City: "Dallas", State: "Texas", FullName: "Solarbreeze Car Dealership"},
	}
}
