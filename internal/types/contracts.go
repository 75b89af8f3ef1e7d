// Package types holds the JSON bodies exchanged between the web front-end and the api.
package types

import "github.com/princeprakhar/dealership-reviews/internal/models"

// Status values carried inside login/register/logout bodies.
const (
	StatusAuthenticated   = "Authenticated"
	StatusUnauthenticated = "Unauthenticated"
	StatusSuccess         = "success"
)

// AllStates is the dealer filter value meaning "no filter".
const AllStates = "All"

type DealersResponse struct {
	Status  int             `json:"status"`
	Dealers []models.Dealer `json:"dealers"`
}

type DealerResponse struct {
	Status int             `json:"status"`
	Dealer []models.Dealer `json:"dealer"`
}

type ReviewsResponse struct {
	Status  int             `json:"status"`
	Reviews []models.Review `json:"reviews"`
}

type CarModelsResponse struct {
	CarModels []models.CarChoice `json:"CarModels"`
}

type InventoryResponse struct {
	Status int              `json:"status"`
	Cars   []models.Vehicle `json:"cars"`
}

// StatusResponse is the generic {status, message} body.
type StatusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

type AddReviewRequest struct {
	Name         string `json:"name"`
	Dealership   int    `json:"dealership"`
	Review       string `json:"review"`
	Purchase     bool   `json:"purchase"`
	PurchaseDate string `json:"purchase_date"`
	CarMake      string `json:"car_make"`
	CarModel     string `json:"car_model"`
	CarYear      int    `json:"car_year"`
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// AuthResponse answers both login and register.
type AuthResponse struct {
	UserName  string `json:"userName"`
	Status    string `json:"status,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Token     string `json:"token,omitempty"`
	Error     string `json:"error,omitempty"`
}

type RegisterRequest struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type LogoutResponse struct {
	UserName string `json:"userName"`
	Status   string `json:"status"`
}
