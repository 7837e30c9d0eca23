package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrLookupNotFound  = errors.New("vehicle not found in registry")
	ErrListingNotFound = errors.New("swap listing not found")
	ErrRequestNotFound = errors.New("swap request not found")
	ErrForbidden       = errors.New("access denied")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindNetwork    ErrorKind = "network"
	KindConflict   ErrorKind = "conflict"
	KindForbidden  ErrorKind = "forbidden"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewValidationError(op string, err error) error {
	return &OpError{Op: op, Kind: KindValidation, Err: err}
}

func NewNotFoundError(op string, err error) error {
	return &OpError{Op: op, Kind: KindNotFound, Err: err}
}

func NewNetworkError(op string, err error) error {
	return &OpError{Op: op, Kind: KindNetwork, Err: err}
}

func NewConflictError(op string, err error) error {
	return &OpError{Op: op, Kind: KindConflict, Err: err}
}

func NewForbiddenError(op string, err error) error {
	return &OpError{Op: op, Kind: KindForbidden, Err: err}
}

// IsKind helps callers classify errors without depending on adapter packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
