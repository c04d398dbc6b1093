// Package domainerrors defines the closed error taxonomy for the notary
// ledger. Services return these coded errors; transports translate them
// into wire responses. For infrastructure facts (store unreachable,
// serialization failure) wrap the cause under CodeOperationFailed.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies one member of the ledger's error taxonomy. The set is
// closed: several codes are reserved for stricter validation and are not
// raised by the current engine.
type Code string

const (
	CodeAlreadyExists        Code = "already_exists"
	CodeNotFound             Code = "not_found"
	CodeUnauthorized         Code = "unauthorized"
	CodeInvalidVersion       Code = "invalid_version"
	CodeInvalidStatus        Code = "invalid_status"
	CodeInvalidSignature     Code = "invalid_signature"
	CodeExpiredClaim         Code = "expired_claim"
	CodeMissingIdentityClaim Code = "missing_identity_claim"
	CodeInvalidAuthority     Code = "invalid_authority"
	CodeInvalidInput         Code = "invalid_input"
	CodeInvalidState         Code = "invalid_state"
	CodeOperationFailed      Code = "operation_failed"
)

// Error is a coded domain error. It optionally wraps an underlying cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a coded error with a human-readable message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause so callers can
// still errors.Is/As against the original.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeOperationFailed for
// uncoded errors so transport layers never leak internals.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeOperationFailed
}

// ToHTTPStatus maps a code to the HTTP status the transport layer emits.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized, CodeInvalidAuthority:
		return http.StatusForbidden
	case CodeInvalidVersion, CodeInvalidStatus, CodeInvalidSignature,
		CodeExpiredClaim, CodeMissingIdentityClaim, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
