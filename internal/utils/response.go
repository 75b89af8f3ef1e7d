package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/types"
)

// SendStatus writes a {status, message} body. The status inside the body mirrors code.
func SendStatus(c *gin.Context, code int, message string) {
	c.JSON(code, types.StatusResponse{
		Status:  code,
		Message: message,
	})
}

func SendOK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

func SendBadRequest(c *gin.Context) {
	SendStatus(c, http.StatusBadRequest, "Bad Request")
}

func SendUnauthorized(c *gin.Context) {
	SendStatus(c, http.StatusForbidden, "Unauthorized")
}

func SendNotFound(c *gin.Context) {
	SendStatus(c, http.StatusNotFound, "Not Found")
}

func SendInternalError(c *gin.Context, message string) {
	SendStatus(c, http.StatusInternalServerError, message)
}

// SendFieldError answers with {error: message}, used by the auth endpoints.
func SendFieldError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
