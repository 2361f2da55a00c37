package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError is the application-wide error type: a stable code, a message safe
// to show to clients, an optional wrapped cause and the HTTP status to answer
// with.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
	// Retryable marks upstream failures the client may safely retry.
	Retryable bool `json:"retryable,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// MarshalJSON hides Err and HTTPCode from response bodies.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code      ErrorCode   `json:"code"`
		Message   string      `json:"message"`
		Details   interface{} `json:"details,omitempty"`
		Retryable bool        `json:"retryable,omitempty"`
	}
	return json.Marshal(&alias{
		Code:      e.Code,
		Message:   e.Message,
		Details:   e.Details,
		Retryable: e.Retryable,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	ErrUnauthorized = New(CodeUnauthorized, "Authentication credentials are missing", http.StatusUnauthorized)
	ErrInvalidToken = New(CodeInvalidToken, "Authentication credentials are invalid", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "Forbidden access", http.StatusForbidden)

	ErrUserNotFound     = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrBiodataNotFound  = New(CodeBiodataNotFound, "Biodata not found", http.StatusNotFound)
	ErrFavoriteNotFound = New(CodeFavoriteNotFound, "Favorite not found", http.StatusNotFound)
	ErrRequestNotFound  = New(CodeRequestNotFound, "Contact request not found", http.StatusNotFound)

	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// DatabaseError wraps a failed store call. Store failures are transient from
// the client's point of view, so they are marked retryable.
func DatabaseError(err error) *AppError {
	e := Wrap(err, CodeDatabaseError, "Database operation failed", http.StatusInternalServerError)
	e.Retryable = true
	return e
}

// PaymentProviderError wraps a failed payment-processor call.
func PaymentProviderError(err error) *AppError {
	e := Wrap(err, CodePaymentProviderError, "Payment provider request failed", http.StatusBadGateway)
	e.Retryable = true
	return e
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}
