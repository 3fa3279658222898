package ufm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{name: "not found", err: NewNotFoundError("0x5"), expected: "'0x5' not found"},
		{name: "invalid pkey", err: NewInvalidPKeyError("zz"), expected: "invalid pkey 'zz'"},
		{name: "invalid config", err: NewInvalidConfigError("invalid UFM host", nil), expected: "invalid configuration 'invalid UFM host'"},
		{name: "unknown", err: &Error{Kind: ErrorKindUnknown, Message: "boom"}, expected: "boom"},
		{name: "unknown without message", err: &Error{}, expected: "unknown error"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("getting partition: %w", NewNotFoundError("0x5"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidConfig))
	assert.False(t, errors.Is(err, ErrUnknown))
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("x509: certificate signed by unknown authority")
	err := NewInvalidConfigError("untrusted UFM certificate", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestKindHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrorKindNotFound, KindOf(fmt.Errorf("wrapped: %w", NewNotFoundError("x"))))
	assert.Equal(t, ErrorKindUnknown, KindOf(errors.New("plain")))

	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.True(t, IsInvalidPKey(NewInvalidPKeyError("x")))
	assert.True(t, IsInvalidConfig(NewInvalidConfigError("x", nil)))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsInvalidConfig(NewNotFoundError("x")))
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", ErrorKindUnknown.String())
	assert.Equal(t, "NotFound", ErrorKindNotFound.String())
	assert.Equal(t, "InvalidPKey", ErrorKindInvalidPKey.String())
	assert.Equal(t, "InvalidConfig", ErrorKindInvalidConfig.String())
}
