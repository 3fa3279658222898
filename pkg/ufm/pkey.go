package ufm

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPKey is the fabric's default/management partition. It implicitly
// contains every host.
const DefaultPKey int32 = 0x7fff

// BuildPKey renders a partition key in its canonical text form: lower-case
// hex without leading zeros, prefixed with "0x" (e.g. 0x7fff). Negative
// values are rendered as their 32-bit two's complement, which ParsePKey
// rejects.
func BuildPKey(pkey int32) string {
	return fmt.Sprintf("0x%x", uint32(pkey))
}

// ParsePKey parses the text form of a partition key. The "0x"/"0X" prefix is
// optional and the hex digits are case-insensitive.
func ParsePKey(text string) (int32, error) {
	digits := text
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	if digits == "" || strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return 0, NewInvalidPKeyError(text)
	}

	value, err := strconv.ParseInt(digits, 16, 32)
	if err != nil {
		return 0, &Error{Kind: ErrorKindInvalidPKey, Message: text, Err: err}
	}

	return int32(value), nil
}

// IsDefaultPKey reports whether pkey is the default/management partition.
func IsDefaultPKey(pkey int32) bool {
	return pkey == DefaultPKey
}
