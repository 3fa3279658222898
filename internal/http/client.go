// Package http is the REST transport used by the UFM resource clients.
package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/ufm/internal/auth"
	"github.com/fivetwenty-io/ufm/internal/constants"
	"github.com/fivetwenty-io/ufm/pkg/ufm"
)

const defaultUserAgent = "ufm-client/1.0"

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against the UFM base URL.
type Client struct {
	baseURL       string
	authenticator auth.Authenticator
	httpClient    *retryablehttp.Client
	logger        Logger
	debug         bool
	userAgent     string
	interceptors  *ufm.InterceptorChain

	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	skipTLS      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries of connection errors, 429 and 5xx
// responses. Retries are off by default.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = maxRetries
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithTimeout bounds a single HTTP exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		c.skipTLS = skip
	}
}

// WithInterceptors runs chain around every exchange.
func WithInterceptors(chain *ufm.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for baseURL. authenticator may be nil for
// unauthenticated access.
func NewClient(baseURL string, authenticator auth.Authenticator, opts ...Option) *Client {
	client := &Client{
		baseURL:       baseURL,
		authenticator: authenticator,
		userAgent:     defaultUserAgent,
		timeout:       constants.DefaultHTTPTimeout,
		retryWaitMin:  constants.DefaultRetryWaitMin,
		retryWaitMax:  constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = client.newRetryableClient()

	return client
}

func (c *Client) newRetryableClient() *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = c.retryMax
	retryClient.RetryWaitMin = c.retryWaitMin
	retryClient.RetryWaitMax = c.retryWaitMax
	// Hand the last response back so its status can be classified.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = c.timeout

	if c.debug && c.logger != nil {
		retryClient.Logger = &leveledLogger{logger: c.logger}
	} else {
		retryClient.Logger = nil
	}

	if c.skipTLS {
		if transport, ok := retryClient.HTTPClient.Transport.(*http.Transport); ok {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- explicitly requested by configuration
		}
	}

	return retryClient
}

// Do executes the request. On a non-2xx status it returns both the response
// and an *Error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidConfig, Message: "invalid request body", Err: err}
	}

	fullURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, &Error{Kind: KindInvalidConfig, Message: "invalid path", Err: err}
	}

	headers, err := c.buildHeaders(ctx, req, body != nil)
	if err != nil {
		return nil, err
	}

	intercepted := &ufm.Request{
		Method:   req.Method,
		Path:     req.Path,
		Headers:  headers,
		Body:     body,
		Metadata: make(map[string]interface{}),
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, &Error{Kind: KindInvalidConfig, Message: "invalid rest request", Err: err}
	}

	httpReq.Header = intercepted.Headers.Clone()

	c.logRequest(req.Method, fullURL)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		transportErr := connectionError(err)
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &ufm.Response{Error: transportErr})

		return nil, transportErr
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, StatusCode: httpResp.StatusCode, Message: "reading response body", Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	c.logResponse(req.Method, fullURL, resp.StatusCode)

	var respErr error
	if resp.StatusCode >= constants.HTTPStatusBadRequest {
		respErr = statusError(resp.StatusCode, req.Path, respBody)
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &ufm.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      respErr,
	})
	if err != nil && respErr == nil {
		respErr = &Error{Kind: KindUnknown, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	return resp, respErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// encodeBody marshals body to JSON. []byte and json.RawMessage are sent as is.
func encodeBody(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return data, nil
	}
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ufm.ErrAddressRequired, c.baseURL)
	}

	if len(query) > 0 {
		values := u.Query()

		for key, vals := range query {
			for _, v := range vals {
				values.Add(key, v)
			}
		}

		u.RawQuery = values.Encode()
	}

	return u.String(), nil
}

func (c *Client) buildHeaders(ctx context.Context, req *Request, hasBody bool) (http.Header, error) {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	if hasBody {
		headers.Set("Content-Type", "application/json")
	}

	if c.authenticator != nil {
		authorization, err := c.authenticator.Authorization(ctx)
		if err != nil {
			return nil, &Error{Kind: KindAuthFailure, Message: err.Error(), Err: err}
		}

		headers.Set("Authorization", authorization)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers, nil
}

func (c *Client) logRequest(method, fullURL string) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": method,
		"url":    fullURL,
	})
}

func (c *Client) logResponse(method, fullURL string, statusCode int) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      method,
		"url":         fullURL,
		"status_code": statusCode,
	})
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromKeysAndValues(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsFromKeysAndValues(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsFromKeysAndValues(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromKeysAndValues(keysAndValues))
}

func fieldsFromKeysAndValues(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
