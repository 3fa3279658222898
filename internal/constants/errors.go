package constants

import "errors"

// Configuration errors.
var (
	ErrNoAddressConfigured = errors.New("no UFM address configured, set --address or UFM_ADDRESS")
	ErrInvalidOutputFormat = errors.New("invalid output format, use table, json or yaml")
)

// Required field errors.
var (
	ErrPKeyRequired  = errors.New("--pkey flag is required")
	ErrGUIDsRequired = errors.New("--guids flag is required")
)
