package auth

import (
	"context"
	"encoding/base64"
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrEmptyToken    = errors.New("token is empty")
	ErrEmptyUsername = errors.New("username is empty")
)

// Authenticator supplies the Authorization header value for a request.
type Authenticator interface {
	Authorization(ctx context.Context) (string, error)
}

// BasicAuthenticator sends HTTP Basic credentials. The header is encoded once
// at construction.
type BasicAuthenticator struct {
	header string
}

// NewBasicAuthenticator creates an authenticator for username/password.
func NewBasicAuthenticator(username, password string) (*BasicAuthenticator, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))

	return &BasicAuthenticator{header: "Basic " + credentials}, nil
}

// Authorization implements Authenticator.
func (a *BasicAuthenticator) Authorization(ctx context.Context) (string, error) {
	return a.header, nil
}

// TokenAuthenticator sends a UFM access token. UFM expects the token under the
// Basic scheme, not Bearer.
type TokenAuthenticator struct {
	header string
}

// NewTokenAuthenticator creates an authenticator for a UFM access token.
func NewTokenAuthenticator(token string) (*TokenAuthenticator, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	return &TokenAuthenticator{header: "Basic " + token}, nil
}

// Authorization implements Authenticator.
func (a *TokenAuthenticator) Authorization(ctx context.Context) (string, error) {
	return a.header, nil
}

// New picks an authenticator from the available credentials. A token wins
// over username/password. It returns nil, nil when no credentials are set.
func New(username, password, token string) (Authenticator, error) {
	if token != "" {
		authenticator, err := NewTokenAuthenticator(token)
		if err != nil {
			return nil, err
		}

		return authenticator, nil
	}

	if username != "" {
		authenticator, err := NewBasicAuthenticator(username, password)
		if err != nil {
			return nil, err
		}

		return authenticator, nil
	}

	return nil, nil //nolint:nilnil // no credentials means unauthenticated requests
}
