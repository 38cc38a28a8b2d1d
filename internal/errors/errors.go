package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

const (
	ErrCodeNotFound         = "not_found"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodeNotification     = "notification_error"
	ErrCodeSystemError      = "system_error"
)

// Error kinds surfaced at the service and transport boundary.
// The tax engine itself never produces errors.
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	// ErrNotification marks tax.calculated deliveries that ran out of retries
	ErrNotification = new(ErrCodeNotification, "notification delivery failed")
	ErrSystem       = new(ErrCodeSystemError, "system error")
)

// kinds is checked in order, so an error marked twice reports the first match
var kinds = []struct {
	err    *InternalError
	status int
}{
	{ErrValidation, http.StatusBadRequest},
	{ErrInvalidOperation, http.StatusBadRequest},
	{ErrNotFound, http.StatusNotFound},
	{ErrNotification, http.StatusServiceUnavailable},
	{ErrSystem, http.StatusInternalServerError},
}

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is matches on code so marked and wrapped errors compare equal to their kind
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

func IsNotification(err error) bool {
	return errors.Is(err, ErrNotification)
}

func IsSystem(err error) bool {
	return errors.Is(err, ErrSystem)
}

// HTTPStatusFromErr maps an error kind to a status, unmarked errors are 500
func HTTPStatusFromErr(err error) int {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.status
		}
	}
	return http.StatusInternalServerError
}

// CodeFromErr returns the machine-readable code of the error kind
func CodeFromErr(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.err.Code
		}
	}
	return ErrCodeSystemError
}
