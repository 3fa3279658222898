// Package ufmclient provides the main entry point for creating UFM API clients.
package ufmclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/ufm/internal/client"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

// New creates a new UFM client. The caller's config is not modified.
func New(ctx context.Context, config *ufm.Config) (ufm.Client, error) {
	if config == nil {
		return nil, ufm.NewInvalidConfigError(ufm.ErrConfigRequired.Error(), ufm.ErrConfigRequired)
	}

	address, err := NormalizeAddress(config.Address)
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.Address = address

	ufmClient, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return ufmClient, nil
}

// NormalizeAddress turns a UFM address into a base URL. A bare host gets the
// https scheme and trailing slashes are removed.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ufm.NewInvalidConfigError(ufm.ErrAddressRequired.Error(), ufm.ErrAddressRequired)
	}

	if !strings.Contains(address, "://") {
		address = "https://" + address
	}

	parsed, err := url.Parse(address)
	if err != nil {
		return "", ufm.NewInvalidConfigError("invalid UFM url", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", ufm.NewInvalidConfigError("invalid UFM url", nil)
	}

	if parsed.Hostname() == "" {
		return "", ufm.NewInvalidConfigError("invalid UFM host", nil)
	}

	parsed.Scheme = scheme
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""

	return parsed.String(), nil
}

// NewWithPassword creates a new client using username/password authentication.
func NewWithPassword(ctx context.Context, address, username, password string) (ufm.Client, error) {
	return New(ctx, &ufm.Config{
		Address:  address,
		Username: username,
		Password: password,
	})
}

// NewWithToken creates a new client using a UFM access token.
func NewWithToken(ctx context.Context, address, token string) (ufm.Client, error) {
	return New(ctx, &ufm.Config{
		Address: address,
		Token:   token,
	})
}
