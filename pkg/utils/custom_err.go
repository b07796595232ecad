package utils

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidSignature    = errors.New("invalid payment signature")
	ErrGatewayFailure      = errors.New("payment gateway failure")

	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountDeactivated    = errors.New("account deactivated")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrSchoolIDRequired      = errors.New("school_id required")
	ErrWeakPassword          = errors.New("password too weak")
	ErrInvalidUsername       = errors.New("invalid username")

	ErrInvalidPage         = errors.New("page must be a positive integer")
	ErrInvalidPageSize     = errors.New("limit must be between 1 and 100")
	ErrInvalidSortField    = errors.New("invalid sort field")
	ErrInvalidSortOrder    = errors.New("order must be asc or desc")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidDateRange    = errors.New("invalid date range")

	ErrDatabaseError = errors.New("database error")
)
