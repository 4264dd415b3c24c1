// Package errors provides the standardized error taxonomy for the signup API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotSignedUp      ErrorCode = "NOT_SIGNED_UP"
	ErrCodeEmailRequired    ErrorCode = "EMAIL_REQUIRED"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError is a structured application error. Detail carries the exact
// human-readable message the HTTP layer returns to clients.
type APIError struct {
	Code   ErrorCode `json:"code"`
	Status int       `json:"-"`
	Detail string    `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Detail)
}

// ==========================
// Error Constructors
// ==========================

// NewActivityNotFoundError reports a signup/unregister against an unknown activity.
func NewActivityNotFoundError() *APIError {
	return &APIError{
		Code:   ErrCodeActivityNotFound,
		Status: http.StatusNotFound,
		Detail: "Activity not found",
	}
}

// NewAlreadySignedUpError reports a duplicate signup for the same activity.
func NewAlreadySignedUpError(email string) *APIError {
	return &APIError{
		Code:   ErrCodeAlreadySignedUp,
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf("%s is already signed up", email),
	}
}

// NewNotSignedUpError reports an unregister for an email that never signed up.
func NewNotSignedUpError(email string) *APIError {
	return &APIError{
		Code:   ErrCodeNotSignedUp,
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf("%s is not signed up for this activity", email),
	}
}

// NewEmailRequiredError reports a request with no email query parameter.
func NewEmailRequiredError() *APIError {
	return &APIError{
		Code:   ErrCodeEmailRequired,
		Status: http.StatusBadRequest,
		Detail: "email query parameter is required",
	}
}

// AsAPIError normalizes any error to an APIError. Unknown errors become
// a generic 500 so handlers never leak internals to clients.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{
		Code:   ErrCodeInternal,
		Status: http.StatusInternalServerError,
		Detail: "Internal server error",
	}
}
