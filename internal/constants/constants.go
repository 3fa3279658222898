package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. The client does not retry unless RetryMax is set.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusBadRequest is the first status treated as an error.
	HTTPStatusBadRequest = 400
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Partition defaults used by the CLI.
const (
	// DefaultMTU is the default partition MTU limit.
	DefaultMTU = 2048

	// DefaultRateLimit is the default partition rate limit.
	DefaultRateLimit = 100.0

	// DefaultServiceLevel is the default partition service level.
	DefaultServiceLevel = 0
)

// Display.
const (
	// JSONIndentSize is the indentation for JSON output.
	JSONIndentSize = 2

	// NotAvailable is printed for empty values.
	NotAvailable = "N/A"
)
