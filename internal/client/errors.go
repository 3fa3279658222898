package client

import (
	"errors"

	"github.com/fivetwenty-io/ufm/internal/http"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

// translateError maps a transport failure onto the domain error taxonomy.
// Errors that already carry a domain kind pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	ufmErr := &ufm.Error{}
	if errors.As(err, &ufmErr) {
		return err
	}

	transportErr := &http.Error{}
	if errors.As(err, &transportErr) {
		return &ufm.Error{
			Kind:    domainKind(transportErr.Kind),
			Message: transportErr.Message,
			Err:     err,
		}
	}

	return &ufm.Error{Kind: ufm.ErrorKindUnknown, Message: err.Error(), Err: err}
}

// domainKind is total over the transport kinds. Authentication failures are
// reported as configuration errors.
func domainKind(kind http.ErrorKind) ufm.ErrorKind {
	switch kind {
	case http.KindNotFound:
		return ufm.ErrorKindNotFound
	case http.KindAuthFailure, http.KindInvalidConfig:
		return ufm.ErrorKindInvalidConfig
	case http.KindUnknown:
		return ufm.ErrorKindUnknown
	default:
		return ufm.ErrorKindUnknown
	}
}
