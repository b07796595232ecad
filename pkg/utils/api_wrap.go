package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schoolpay/pkg/logger"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func RespondSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondError(c *gin.Context, code int, message string, errs ...string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		Errors:  errs,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-level sentinel errors onto the HTTP
// error taxonomy. Anything unrecognized becomes a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrTransactionNotFound):
		RespondError(c, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidSignature):
		RespondError(c, http.StatusBadRequest, "Invalid payment signature")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrAccountDeactivated):
		RespondError(c, http.StatusUnauthorized, "Account has been deactivated")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "email already exists")
	case errors.Is(err, ErrUsernameAlreadyExists):
		RespondError(c, http.StatusBadRequest, "username already exists")
	case errors.Is(err, ErrSchoolIDRequired):
		RespondError(c, http.StatusBadRequest, "school_id is required for school_admin role")
	case errors.Is(err, ErrWeakPassword):
		RespondError(c, http.StatusBadRequest, "Password must contain at least one uppercase letter, one lowercase letter, and one number")
	case errors.Is(err, ErrInvalidUsername):
		RespondError(c, http.StatusBadRequest, "Username can only contain letters, numbers, and underscores")
	case errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrInvalidSortField),
		errors.Is(err, ErrInvalidSortOrder),
		errors.Is(err, ErrInvalidStatusFilter),
		errors.Is(err, ErrInvalidDateRange):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrGatewayFailure):
		logger.Log.Error("gateway call failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Error communicating with payment gateway")
	case errors.Is(err, ErrDatabaseError):
		logger.Log.Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Log.Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
