package apperr

import (
	"context"
	"errors"
	"fmt"
)

// Code represents a category of application error.
type Code string

const (
	// CodeStoreUnavailable indicates a listing store query failed or timed out.
	CodeStoreUnavailable Code = "store_unavailable"
	// CodeMalformedIdentifier indicates a company identifier could not be percent-decoded.
	CodeMalformedIdentifier Code = "malformed_identifier"
	// CodeEmptyCompanyName indicates an empty company name reached the directory.
	CodeEmptyCompanyName Code = "empty_company_name"
	// CodeNotFound indicates a resource was not found.
	CodeNotFound Code = "not_found"
	// CodeValidation indicates invalid input data.
	CodeValidation Code = "validation"
)

// AppError is a structured error with a code, a safe message and an optional cause.
// It supports errors.Is and errors.As through Unwrap.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// StoreUnavailable wraps a store failure.
func StoreUnavailable(cause error) *AppError {
	return &AppError{
		Code:    CodeStoreUnavailable,
		Message: "listing store unavailable",
		Cause:   cause,
	}
}

// MalformedIdentifier wraps a decode failure for the raw identifier.
func MalformedIdentifier(raw string, cause error) *AppError {
	return &AppError{
		Code:    CodeMalformedIdentifier,
		Message: fmt.Sprintf("malformed company identifier %q", raw),
		Cause:   cause,
	}
}

// EmptyCompanyName reports an empty name found at the given position.
func EmptyCompanyName(index int) *AppError {
	return &AppError{
		Code:    CodeEmptyCompanyName,
		Message: fmt.Sprintf("empty company name at position %d", index),
	}
}

func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// MapStoreError maps any store error onto StoreUnavailable.
// Errors that already carry a code pass through unchanged.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    CodeStoreUnavailable,
			Message: "listing store query timed out",
			Cause:   err,
		}
	}
	return StoreUnavailable(err)
}
