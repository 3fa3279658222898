package ufm_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/ufm/pkg/ufm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInterceptorFailed = errors.New("interceptor failed")

type capturedLog struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type captureLogger struct {
	logs []capturedLog
}

func (l *captureLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{level: "debug", msg: msg, fields: fields})
}

func (l *captureLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{level: "info", msg: msg, fields: fields})
}

func (l *captureLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{level: "warn", msg: msg, fields: fields})
}

func (l *captureLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, capturedLog{level: "error", msg: msg, fields: fields})
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := ufm.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *ufm.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *ufm.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(ctx, &ufm.Request{Method: "GET", Path: "/ufmRest/resources/pkeys"})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := ufm.NewInterceptorChain()
	called := false

	chain.AddResponseInterceptor(func(ctx context.Context, req *ufm.Request, resp *ufm.Response) error {
		return errInterceptorFailed
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *ufm.Request, resp *ufm.Response) error {
		called = true

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(), &ufm.Request{}, &ufm.Response{StatusCode: 200})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInterceptorFailed))
	assert.False(t, called)
}

func TestInterceptorChain_Nil(t *testing.T) {
	t.Parallel()

	var chain *ufm.InterceptorChain

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &ufm.Request{}))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &ufm.Request{}, &ufm.Response{}))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := ufm.HeaderInterceptor(map[string]string{"X-Custom-Header": "custom-value"})

	req := &ufm.Request{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
}

func TestRequestIDInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := ufm.RequestIDInterceptor()

	t.Run("sets a UUID", func(t *testing.T) {
		t.Parallel()

		req := &ufm.Request{}

		err := interceptor(context.Background(), req)
		require.NoError(t, err)

		_, err = uuid.Parse(req.Headers.Get(ufm.RequestIDHeader))
		require.NoError(t, err)
	})

	t.Run("keeps an existing ID", func(t *testing.T) {
		t.Parallel()

		req := &ufm.Request{Headers: http.Header{}}
		req.Headers.Set(ufm.RequestIDHeader, "caller-id")

		err := interceptor(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "caller-id", req.Headers.Get(ufm.RequestIDHeader))
	})
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{}
	req := &ufm.Request{Method: "DELETE", Path: "/ufmRest/resources/pkeys/0x5"}

	require.NoError(t, ufm.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, ufm.LoggingResponseInterceptor(logger)(context.Background(), req, &ufm.Response{StatusCode: 200}))
	require.NoError(t, ufm.LoggingResponseInterceptor(logger)(context.Background(), req, &ufm.Response{
		StatusCode: 404,
		Error:      ufm.NewNotFoundError("0x5"),
	}))

	require.Len(t, logger.logs, 3)
	assert.Equal(t, "UFM Request", logger.logs[0].msg)
	assert.Equal(t, "debug", logger.logs[1].level)
	assert.Equal(t, "UFM Response", logger.logs[1].msg)
	assert.Equal(t, "error", logger.logs[2].level)
	assert.Equal(t, "UFM Response Error", logger.logs[2].msg)
	assert.Equal(t, "'0x5' not found", logger.logs[2].fields["error"])
}
