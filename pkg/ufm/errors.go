package ufm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every error returned by the client.
type ErrorKind int

// Error kinds.
const (
	// ErrorKindUnknown is an unclassified transport or server failure.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindNotFound means the resource is absent.
	ErrorKindNotFound
	// ErrorKindInvalidPKey is a local partition key parse failure, raised
	// before any request is sent.
	ErrorKindInvalidPKey
	// ErrorKindInvalidConfig covers a bad address, bad credentials or a local
	// encoding failure.
	ErrorKindInvalidConfig
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "NotFound"
	case ErrorKindInvalidPKey:
		return "InvalidPKey"
	case ErrorKindInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by all client operations.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindNotFound:
		return fmt.Sprintf("'%s' not found", e.Message)
	case ErrorKindInvalidPKey:
		return fmt.Sprintf("invalid pkey '%s'", e.Message)
	case ErrorKindInvalidConfig:
		return fmt.Sprintf("invalid configuration '%s'", e.Message)
	default:
		if e.Message == "" {
			return "unknown error"
		}

		return e.Message
	}
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrUnknown       = &Error{Kind: ErrorKindUnknown}
	ErrNotFound      = &Error{Kind: ErrorKindNotFound}
	ErrInvalidPKey   = &Error{Kind: ErrorKindInvalidPKey}
	ErrInvalidConfig = &Error{Kind: ErrorKindInvalidConfig}
)

// Common static errors that can be wrapped with context.
var (
	ErrInvalidMembership = errors.New("invalid membership")
	ErrConfigRequired    = errors.New("config is required")
	ErrAddressRequired   = errors.New("UFM address is required")
)

// NewNotFoundError creates a NotFound error for the named resource.
func NewNotFoundError(resource string) *Error {
	return &Error{Kind: ErrorKindNotFound, Message: resource}
}

// NewInvalidPKeyError creates an InvalidPKey error for the given text.
func NewInvalidPKeyError(text string) *Error {
	return &Error{Kind: ErrorKindInvalidPKey, Message: text}
}

// NewInvalidConfigError creates an InvalidConfig error.
func NewInvalidConfigError(msg string, cause error) *Error {
	return &Error{Kind: ErrorKindInvalidConfig, Message: msg, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain. Errors that do
// not carry a kind are reported as ErrorKindUnknown.
func KindOf(err error) ErrorKind {
	ufmErr := &Error{}
	if errors.As(err, &ufmErr) {
		return ufmErr.Kind
	}

	return ErrorKindUnknown
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == ErrorKindNotFound
}

// IsInvalidPKey checks if the error is a partition key parse error.
func IsInvalidPKey(err error) bool {
	return err != nil && KindOf(err) == ErrorKindInvalidPKey
}

// IsInvalidConfig checks if the error is a configuration error.
func IsInvalidConfig(err error) bool {
	return err != nil && KindOf(err) == ErrorKindInvalidConfig
}
