package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	internalhttp "github.com/fivetwenty-io/ufm/internal/http"
)

// NewTestClient creates a client against baseURL without authentication.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, nil),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// recordingServer counts requests and delegates to handler.
type recordingServer struct {
	*httptest.Server
	calls int32
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) *recordingServer {
	t.Helper()

	server := &recordingServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&server.calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server
}

func (s *recordingServer) Calls() int {
	return int(atomic.LoadInt32(&s.calls))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		t.Errorf("decoding request body: %v", err)
	}

	return body
}
