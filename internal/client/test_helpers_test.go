package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/pkg/glo"
)

const testToken = "test-token"

// RecordedRequest captures what the test server received.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// TestServer answers every request with a fixed status and body and records
// the requests it saw.
type TestServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewTestServer starts a TestServer that is closed when the test ends.
func NewTestServer(t *testing.T, statusCode int, body string) *TestServer {
	t.Helper()

	server := &TestServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		payload, _ := io.ReadAll(request.Body)

		server.mu.Lock()
		server.requests = append(server.requests, RecordedRequest{
			Method:   request.Method,
			Path:     request.URL.EscapedPath(),
			RawQuery: request.URL.RawQuery,
			Header:   request.Header.Clone(),
			Body:     payload,
		})
		server.mu.Unlock()

		if body != "" {
			writer.Header().Set("Content-Type", "application/json")
		}

		writer.WriteHeader(statusCode)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// Requests returns a copy of the recorded requests.
func (s *TestServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]RecordedRequest(nil), s.requests...)
}

// Last returns the most recent request. It fails the test if none arrived.
func (s *TestServer) Last(t *testing.T) RecordedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests, "no request reached the test server")

	return requests[len(requests)-1]
}

// NewTestClient creates a client pointed at baseURL with a fixed token.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&glo.Config{APIEndpoint: baseURL, Token: testToken})
	require.NoError(t, err)

	return client
}

func intPtr(v int) *int {
	return &v
}
