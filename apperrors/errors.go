package apperrors

import (
	"errors"
	"net/http"
)

// AppError is a domain failure with a stable client-visible message and an
// HTTP status class. Anything else that bubbles out of logic is treated as
// internal and must not leak details to the caller.
type AppError struct {
	Code    string
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// Sentinel domain errors shared across all layers.
var (
	ErrNotFound            = &AppError{Code: "not_found", Status: http.StatusNotFound, Message: "resource not found"}
	ErrContentNotFound     = &AppError{Code: "not_found", Status: http.StatusNotFound, Message: "content not found"}
	ErrUserNotFound        = &AppError{Code: "not_found", Status: http.StatusNotFound, Message: "user not found"}
	ErrForbidden           = &AppError{Code: "forbidden", Status: http.StatusForbidden, Message: "access denied: insufficient permissions"}
	ErrUnauthenticated     = &AppError{Code: "unauthenticated", Status: http.StatusUnauthorized, Message: "authentication required"}
	ErrInvalidCredentials  = &AppError{Code: "unauthenticated", Status: http.StatusUnauthorized, Message: "invalid email or password"}
	ErrNotPurchasable      = &AppError{Code: "not_purchasable", Status: http.StatusBadRequest, Message: "this content is free"}
	ErrAlreadyPurchased    = &AppError{Code: "already_purchased", Status: http.StatusBadRequest, Message: "you have already purchased this content"}
	ErrInsufficientBalance = &AppError{Code: "insufficient_balance", Status: http.StatusBadRequest, Message: "insufficient token balance"}
)

// Validation builds a 400 with a request-specific message.
func Validation(msg string) *AppError {
	return &AppError{Code: "validation", Status: http.StatusBadRequest, Message: msg}
}

// NotFoundMsg builds a 404 with a resource-specific message.
func NotFoundMsg(msg string) *AppError {
	return &AppError{Code: "not_found", Status: http.StatusNotFound, Message: msg}
}

// As unwraps err into an *AppError if it is one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
