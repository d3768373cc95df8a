package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "team-access-backend/internal/errors"
	"team-access-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// User-facing messages for duplicate records
const (
	MsgTeamExists     = "Team already exists!"
	MsgEmployeeExists = "Employee already exists!"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondWithError maps service errors onto HTTP status codes
func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTeamExists):
		c.JSON(http.StatusConflict, gin.H{"error": MsgTeamExists})
	case errors.Is(err, apperrors.ErrEmployeeExists):
		c.JSON(http.StatusConflict, gin.H{"error": MsgEmployeeExists})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseID parses a positive id that fits a bigint column, answering 400 with invalid otherwise
func parseID(c *gin.Context, raw string, invalid error) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return 0, false
	}
	return uint(id), true
}
