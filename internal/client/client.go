package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/ufm/internal/auth"
	"github.com/fivetwenty-io/ufm/internal/constants"
	"github.com/fivetwenty-io/ufm/internal/http"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

const versionPath = "/ufmRest/app/ufm_version"

// Client implements the ufm.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ufm.Logger

	// Resource clients
	partitions ufm.PartitionsClient
	ports      ufm.PortsClient
}

// New creates a new UFM client. config.Address must already be a full base
// URL.
func New(ctx context.Context, config *ufm.Config) (*Client, error) {
	if config == nil {
		return nil, ufm.NewInvalidConfigError(ufm.ErrConfigRequired.Error(), ufm.ErrConfigRequired)
	}

	if config.Address == "" {
		return nil, ufm.NewInvalidConfigError(ufm.ErrAddressRequired.Error(), ufm.ErrAddressRequired)
	}

	authenticator, err := auth.New(config.Username, config.Password, config.Token)
	if err != nil {
		return nil, ufm.NewInvalidConfigError(err.Error(), err)
	}

	httpClient := http.NewClient(config.Address, authenticator, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.Address,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ufm.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, http.WithInsecureSkipVerify(true))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	httpOpts = append(httpOpts, http.WithInterceptors(createInterceptorChain(config)))

	return httpOpts
}

// createInterceptorChain tags every request with an ID, logs failed
// exchanges when debugging with a logger and then runs the caller's chain.
func createInterceptorChain(config *ufm.Config) *ufm.InterceptorChain {
	chain := ufm.NewInterceptorChain()
	chain.AddRequestInterceptor(ufm.RequestIDInterceptor())

	if config.Debug && config.Logger != nil {
		chain.AddResponseInterceptor(ufm.LoggingResponseInterceptor(config.Logger))
	}

	if config.Interceptors != nil {
		user := config.Interceptors
		chain.AddRequestInterceptor(user.ExecuteRequestInterceptors)
		chain.AddResponseInterceptor(user.ExecuteResponseInterceptors)
	}

	return chain
}

func (c *Client) initializeResourceClients() {
	c.partitions = NewPartitionsClient(c.httpClient, c.logger)
	c.ports = NewPortsClient(c.httpClient)
}

// Partitions implements ufm.Client.Partitions.
func (c *Client) Partitions() ufm.PartitionsClient {
	return c.partitions
}

// Ports implements ufm.Client.Ports.
func (c *Client) Ports() ufm.PortsClient {
	return c.ports
}

// Version implements ufm.Client.Version.
func (c *Client) Version(ctx context.Context) (string, error) {
	resp, err := c.httpClient.Get(ctx, versionPath, nil)
	if err != nil {
		return "", fmt.Errorf("getting version: %w", translateError(err))
	}

	var version struct {
		ReleaseVersion string `json:"ufm_release_version"`
	}

	err = json.Unmarshal(resp.Body, &version)
	if err != nil {
		return "", ufm.NewInvalidConfigError("invalid response", err)
	}

	return version.ReleaseVersion, nil
}

// loggerAdapter adapts ufm.Logger to http.Logger.
type loggerAdapter struct {
	logger ufm.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
