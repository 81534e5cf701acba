package fault

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindInternal
)

// Fault carries the failure class alongside the user-facing message, so
// callers branch on the class instead of intercepting raw errors.
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", f.kindString(), f.Message, f.Err)
	}
	return fmt.Sprintf("[%s] %s", f.kindString(), f.Message)
}

// Unwrap allows errors.Is and errors.As to work.
func (f *Fault) Unwrap() error {
	return f.Err
}

func (f *Fault) kindString() string {
	switch f.Kind {
	case KindNotFound:
		return "NotFound"
	case KindValidation:
		return "Validation"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// NewNotFound creates an error for a missing resource.
func NewNotFound(msg string) error {
	return &Fault{Kind: KindNotFound, Message: msg}
}

// NewValidation creates an error for a structurally invalid request.
func NewValidation(msg string) error {
	return &Fault{Kind: KindValidation, Message: msg}
}

// NewInternal creates an error for an unexpected runtime failure.
func NewInternal(msg string, err error) error {
	return &Fault{Kind: KindInternal, Message: msg, Err: err}
}

// Detail returns the user-facing message of a fault, or a generic one for
// errors that are not faults.
func Detail(err error) string {
	var f *Fault
	if errors.As(err, &f) {
		return f.Message
	}
	return "internal server error"
}

// IsNotFound checks if an error is a missing-resource fault.
func IsNotFound(err error) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == KindNotFound
}

// IsValidation checks if an error is a validation fault.
func IsValidation(err error) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == KindValidation
}

// IsInternal checks if an error is an internal fault.
func IsInternal(err error) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == KindInternal
}
