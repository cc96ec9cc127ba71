// Package errors provides custom error types for the Florada API.
// All service-layer errors should use AppError so that responses stay
// consistent and never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Session & registration errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrSessionNotFound    = &AppError{Code: "SESSION_NOT_FOUND", Message: "Quoting session not found or expired", StatusCode: http.StatusUnauthorized}
	ErrPhoneNotReachable  = &AppError{Code: "PHONE_NOT_REACHABLE", Message: "This number is not a reachable messaging contact", StatusCode: http.StatusUnprocessableEntity}
	ErrValidationUpstream = &AppError{Code: "VALIDATION_UNAVAILABLE", Message: "Phone validation service is unavailable", StatusCode: http.StatusBadGateway}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Catalog errors.
var (
	ErrFlowerNotFound       = &AppError{Code: "FLOWER_NOT_FOUND", Message: "Flower not found in catalog", StatusCode: http.StatusNotFound}
	ErrResourceNotFound     = &AppError{Code: "RESOURCE_NOT_FOUND", Message: "Furniture item not found", StatusCode: http.StatusNotFound}
	ErrProfessionalNotFound = &AppError{Code: "PROFESSIONAL_NOT_FOUND", Message: "Professional not found", StatusCode: http.StatusNotFound}
	ErrSupplierNotFound     = &AppError{Code: "SUPPLIER_NOT_FOUND", Message: "Supplier not found", StatusCode: http.StatusNotFound}
	ErrSupplierItemNotFound = &AppError{Code: "SUPPLIER_ITEM_NOT_FOUND", Message: "Supplier item not found", StatusCode: http.StatusNotFound}
	ErrBadCatalogImport     = &AppError{Code: "BAD_CATALOG_IMPORT", Message: "Catalog import payload is not valid", StatusCode: http.StatusBadRequest}
)

// Budget session errors.
var (
	ErrLineNotFound            = &AppError{Code: "LINE_NOT_FOUND", Message: "Line item not found at that position", StatusCode: http.StatusNotFound}
	ErrInvalidPeriod           = &AppError{Code: "INVALID_PERIOD", Message: "The end date precedes the start date", StatusCode: http.StatusBadRequest}
	ErrResourceUnavailable     = &AppError{Code: "RESOURCE_UNAVAILABLE", Message: "Furniture item is reserved for that period", StatusCode: http.StatusConflict}
	ErrProfessionalUnavailable = &AppError{Code: "PROFESSIONAL_UNAVAILABLE", Message: "Professional is booked for that period", StatusCode: http.StatusConflict}
	ErrWrongPhase              = &AppError{Code: "WRONG_PHASE", Message: "Operation not allowed in the current arrangement phase", StatusCode: http.StatusConflict}
)

// Quote & order errors.
var (
	ErrEmptyQuote    = &AppError{Code: "EMPTY_QUOTE", Message: "Nothing to print for this budget type", StatusCode: http.StatusBadRequest}
	ErrWebhookFailed = &AppError{Code: "WEBHOOK_FAILED", Message: "Order submission failed", StatusCode: http.StatusBadGateway}
)
