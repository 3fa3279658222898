package ufm

import (
	"context"
	"time"
)

// PartitionsClient manages partitions (pkeys).
type PartitionsClient interface {
	// Create creates a partition and binds its GUIDs.
	//
	// The UFM wire protocol carries a single membership/index0 pair per
	// request, so both are taken from the last binding in p.GUIDs. Bindings
	// that need different values must be added with separate BindPorts calls.
	//
	// Non-zero QoS values are sent as mtu_limit, service_level and
	// rate_limit alongside the base pkey body. Zero values are omitted and
	// UFM applies its defaults.
	Create(ctx context.Context, p *Partition) error
	Get(ctx context.Context, pkey string) (*Partition, error)
	// List returns all partitions. It issues two requests that are not a
	// consistent snapshot; treat the result as eventually consistent.
	List(ctx context.Context) ([]Partition, error)
	Delete(ctx context.Context, pkey string) error
	// BindPorts adds ports to an existing partition. The last-binding rule of
	// Create applies.
	BindPorts(ctx context.Context, p *Partition, ports []PortBinding) error
	UnbindPorts(ctx context.Context, pkey string, guids []string) error
}

// PortsClient lists fabric ports.
type PortsClient interface {
	// List returns the ports of all Computer systems accepted by filter. A
	// nil filter returns every port.
	List(ctx context.Context, filter *Filter) ([]Port, error)
}

// Client is the UFM management API client.
type Client interface {
	Partitions() PartitionsClient
	Ports() PortsClient
	// Version returns the UFM release version.
	Version(ctx context.Context) (string, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a ufm.Client.
//
// # Authentication precedence
//
//  1. Token: sent as "Authorization: Basic <token>".
//  2. Username/Password: sent as HTTP Basic credentials.
//  3. No credentials: requests are sent without authentication.
//
// The Authorization header is built once when the client is created.
//
// # Timeouts and retries
//
// Per-request deadlines should be set on the context passed to client
// methods. The client does not retry by default; RetryMax opts in to
// transport-level retries of connection errors, 429 and 5xx responses.
type Config struct {
	// Address is the base URL of UFM (e.g. "https://ufm.example.com").
	// ufmclient.New adds "https://" if no scheme is present.
	Address string

	Username string
	Password string
	Token    string

	// HTTPTimeout bounds a single HTTP exchange. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax is the number of retries after the first attempt.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// SkipTLSVerify disables certificate verification. UFM appliances often
	// ship self-signed certificates.
	SkipTLSVerify bool

	// Debug enables request/response logging when a Logger is provided.
	Debug  bool
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Interceptors run around every HTTP exchange.
	Interceptors *InterceptorChain
}
