package http

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ErrorKind classifies transport failures.
type ErrorKind int

// Transport error kinds.
const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindAuthFailure
	KindInvalidConfig
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindAuthFailure:
		return "AuthFailure"
	case KindInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// Error is returned by the transport for every failed exchange.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("'%s' not found", e.Message)
	case KindAuthFailure:
		return fmt.Sprintf("failed to auth '%s'", e.Message)
	case KindInvalidConfig:
		return fmt.Sprintf("invalid configuration '%s'", e.Message)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// statusError classifies a non-2xx response.
func statusError(statusCode int, path string, body []byte) *Error {
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(statusCode)
	}

	switch statusCode {
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, StatusCode: statusCode, Message: path}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindAuthFailure, StatusCode: statusCode, Message: message}
	default:
		return &Error{
			Kind:       KindUnknown,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("%s: %d %s", path, statusCode, message),
		}
	}
}

// connectionError classifies a failure to complete the exchange. Unresolvable
// hosts and untrusted certificates point at the configured address.
func connectionError(err error) *Error {
	dnsErr := &net.DNSError{}
	if errors.As(err, &dnsErr) {
		return &Error{Kind: KindInvalidConfig, Message: "invalid UFM host", Err: err}
	}

	certErr := &tls.CertificateVerificationError{}
	unknownAuthority := x509.UnknownAuthorityError{}
	hostnameErr := x509.HostnameError{}

	if errors.As(err, &certErr) || errors.As(err, &unknownAuthority) || errors.As(err, &hostnameErr) {
		return &Error{Kind: KindInvalidConfig, Message: "untrusted UFM certificate", Err: err}
	}

	return &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
}
