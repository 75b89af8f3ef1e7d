package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/api/middleware"
	"github.com/princeprakhar/dealership-reviews/internal/services"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/utils"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendFieldError(c, http.StatusBadRequest, services.ErrMissingCredentials.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		utils.SendFieldError(c, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, types.AuthResponse{
			UserName: req.UserName,
			Status:   types.StatusUnauthenticated,
		})
		return
	case err != nil:
		logger.WithFields(logrus.Fields{"username": req.UserName, "error": err}).Error("login failed")
		c.JSON(http.StatusInternalServerError, types.AuthResponse{
			UserName: req.UserName,
			Status:   types.StatusUnauthenticated,
		})
		return
	}

	logger.WithFields(logrus.Fields{"username": result.User.Username}).Info("user logged in")
	c.JSON(http.StatusOK, types.AuthResponse{
		UserName:  result.User.Username,
		Status:    types.StatusAuthenticated,
		FirstName: result.User.FirstName,
		LastName:  result.User.LastName,
		Token:     result.Token,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendFieldError(c, http.StatusBadRequest, services.ErrMissingRegistration.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingRegistration), errors.Is(err, services.ErrInvalidEmail):
		utils.SendFieldError(c, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, types.AuthResponse{
			UserName: req.UserName,
			Error:    err.Error(),
		})
		return
	case err != nil:
		logger.WithFields(logrus.Fields{"username": req.UserName, "error": err}).Error("registration failed")
		utils.SendFieldError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	logger.WithFields(logrus.Fields{"username": result.User.Username}).Info("user registered")
	c.JSON(http.StatusCreated, types.AuthResponse{
		UserName:  result.User.Username,
		Status:    types.StatusSuccess,
		FirstName: result.User.FirstName,
		LastName:  result.User.LastName,
		Token:     result.Token,
	})
}

// Logout revokes the presented bearer token, if any.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		logger.WithFields(logrus.Fields{"error": err}).Error("logout failed")
		utils.SendInternalError(c, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, types.LogoutResponse{
		UserName: "",
		Status:   types.StatusSuccess,
	})
}
