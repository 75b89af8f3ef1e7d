package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/services"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/utils"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	reviewService ReviewService
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) GetDealerReviews(c *gin.Context) {
	id, ok := dealerIDParam(c)
	if !ok {
		utils.SendBadRequest(c)
		return
	}

	reviews, err := h.reviewService.GetDealerReviews(c.Request.Context(), id)
	if err != nil {
		logger.WithFields(logrus.Fields{"dealer_id": id, "error": err}).Error("failed to fetch reviews")
		utils.SendInternalError(c, "Error fetching documents")
		return
	}

	utils.SendOK(c, types.ReviewsResponse{
		Status:  http.StatusOK,
		Reviews: reviews,
	})
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req types.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c)
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingReviewFields):
		utils.SendStatus(c, http.StatusBadRequest, "All details are mandatory")
		return
	case errors.Is(err, services.ErrDealerNotFound):
		utils.SendStatus(c, http.StatusBadRequest, "Dealer not found")
		return
	case err != nil:
		logger.WithFields(logrus.Fields{"dealer_id": req.Dealership, "error": err}).Error("failed to post review")
		utils.SendInternalError(c, "Error in posting review")
		return
	}

	logger.WithFields(logrus.Fields{
		"review_id": review.ID,
		"dealer_id": review.Dealership,
		"username":  c.GetString("username"),
		"sentiment": review.Sentiment,
	}).Info("review posted")

	utils.SendOK(c, types.StatusResponse{Status: http.StatusOK})
}
