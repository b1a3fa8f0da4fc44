package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pos-api/internal/logger"
	"pos-api/internal/services"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	checkout   *services.CheckoutService
	submission *services.SubmissionService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(checkout *services.CheckoutService, submission *services.SubmissionService) *CommonServices {
	return &CommonServices{
		checkout:   checkout,
		submission: submission,
	}
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// handleServiceError maps the checkout error taxonomy onto HTTP statuses.
// Validation problems are the operator's to fix; collaborator failures
// surface as bad-gateway so the client shows a dismissible banner.
func handleServiceError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		parseErr      *services.ParseError
		networkErr    *services.NetworkError
		permissionErr *services.PermissionError
	)

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Field == "session" {
			sendError(c, http.StatusNotFound, validationErr.Message, err)
			return
		}
		sendError(c, http.StatusUnprocessableEntity, validationErr.Error(), err)
	case errors.As(err, &parseErr):
		sendError(c, http.StatusBadGateway, parseErr.Error(), err)
	case errors.As(err, &networkErr):
		sendError(c, http.StatusBadGateway, networkErr.Error(), err)
	case errors.As(err, &permissionErr):
		sendError(c, http.StatusBadGateway, permissionErr.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
