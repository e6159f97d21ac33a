package utils

import (
	"errors"
	"net/http"
)

/*
Sentinel errors for rondas-service domain logic.
The controller can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrNotFound             = errors.New("not_found")
	ErrNotOwner             = errors.New("not_owner")
	ErrOutsideHours         = errors.New("outside_registration_hours")
	ErrInvalidCategory      = errors.New("invalid_category")
	ErrSignatureRequired    = errors.New("signature_required")
	ErrExtraSignersRejected = errors.New("extra_signers_rejected")
	ErrSurgeryUnavailable   = errors.New("surgery_unavailable")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// Ptr returns a pointer to v. Handy for optional DTO fields.
func Ptr[T any](v T) *T { return &v }
