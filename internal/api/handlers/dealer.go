package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/services"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/utils"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

type DealerHandler struct {
	dealerService DealerService
	carService    CarService
}

func NewDealerHandler(dealerService DealerService, carService CarService) *DealerHandler {
	return &DealerHandler{
		dealerService: dealerService,
		carService:    carService,
	}
}

// GetDealers serves both /get_dealers/ and /get_dealers/:state.
func (h *DealerHandler) GetDealers(c *gin.Context) {
	state := strings.Trim(c.Param("state"), "/")

	dealers, err := h.dealerService.GetDealers(c.Request.Context(), state)
	if err != nil {
		logger.WithFields(logrus.Fields{"state": state, "error": err}).Error("failed to fetch dealers")
		utils.SendInternalError(c, "Error fetching documents")
		return
	}

	utils.SendOK(c, types.DealersResponse{
		Status:  http.StatusOK,
		Dealers: dealers,
	})
}

func (h *DealerHandler) GetDealer(c *gin.Context) {
	id, ok := dealerIDParam(c)
	if !ok {
		utils.SendBadRequest(c)
		return
	}

	dealer, err := h.dealerService.GetDealer(c.Request.Context(), id)
	if errors.Is(err, services.ErrDealerNotFound) {
		utils.SendOK(c, types.DealerResponse{Status: http.StatusOK, Dealer: []models.Dealer{}})
		return
	}
	if err != nil {
		logger.WithFields(logrus.Fields{"dealer_id": id, "error": err}).Error("failed to fetch dealer")
		utils.SendInternalError(c, "Error fetching documents")
		return
	}

	utils.SendOK(c, types.DealerResponse{
		Status: http.StatusOK,
		Dealer: []models.Dealer{*dealer},
	})
}

func (h *DealerHandler) GetInventory(c *gin.Context) {
	id, ok := dealerIDParam(c)
	if !ok {
		utils.SendBadRequest(c)
		return
	}

	cars, err := h.dealerService.GetInventory(c.Request.Context(), id)
	if errors.Is(err, services.ErrDealerNotFound) {
		utils.SendNotFound(c)
		return
	}
	if err != nil {
		logger.WithFields(logrus.Fields{"dealer_id": id, "error": err}).Error("failed to fetch inventory")
		utils.SendInternalError(c, "Error fetching documents")
		return
	}

	utils.SendOK(c, types.InventoryResponse{
		Status: http.StatusOK,
		Cars:   cars,
	})
}

func (h *DealerHandler) GetCars(c *gin.Context) {
	choices, err := h.carService.GetCarModels(c.Request.Context())
	if err != nil {
		logger.WithFields(logrus.Fields{"error": err}).Error("failed to fetch car models")
		utils.SendInternalError(c, "Error fetching car models")
		return
	}

	utils.SendOK(c, types.CarModelsResponse{CarModels: choices})
}
