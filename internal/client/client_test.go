package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/internal/auth"
	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, glo.ErrConfigRequired)
	})

	t.Run("empty token is sent as is", func(t *testing.T) {
		t.Parallel()

		server := NewTestServer(t, http.StatusOK, `{"id":"u1"}`)

		client, err := New(&glo.Config{APIEndpoint: server.URL})
		require.NoError(t, err)

		_, err = client.Users().GetCurrentUser(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, server.Last(t).Header.Get("Authorization"))
	})

	t.Run("defaults the endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := New(&glo.Config{Token: "pat"})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultBaseURL, client.BaseURL())
		assert.NotNil(t, client.Boards())
		assert.NotNil(t, client.Users())
		assert.NotNil(t, client.Boards().Labels())
		assert.NotNil(t, client.Boards().Columns())
		assert.NotNil(t, client.Boards().Cards())
		assert.NotNil(t, client.Boards().Cards().Comments())
	})

	t.Run("endpoint override", func(t *testing.T) {
		t.Parallel()

		client, err := New(&glo.Config{Token: "pat", APIEndpoint: "https://glo.example.test/v1/glo/"})
		require.NoError(t, err)
		assert.Equal(t, "https://glo.example.test/v1/glo", client.BaseURL())
	})
}

func TestClient_AuthorizationHeader(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, `{"id":"u1","username":"ada"}`)

	client, err := New(&glo.Config{APIEndpoint: server.URL, Token: "Bearer pat-xyz"})
	require.NoError(t, err)

	_, err = client.Users().GetCurrentUser(context.Background(), nil)
	require.NoError(t, err)

	last := server.Last(t)
	assert.Equal(t, "Bearer pat-xyz", last.Header.Get("Authorization"))
	assert.Equal(t, "application/json", last.Header.Get("Accept"))
}

func TestNewWithTokenProvider(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, `[]`)

	calls := 0
	provider := auth.TokenProviderFunc(func(ctx context.Context) (string, error) {
		calls++

		return "rotating-token", nil
	})

	client, err := NewWithTokenProvider(&glo.Config{APIEndpoint: server.URL}, provider)
	require.NoError(t, err)

	boards, err := client.GetAllBoards(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, boards)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "rotating-token", server.Last(t).Header.Get("Authorization"))
}

func TestClient_ConfigOptions(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, `{"id":"u1"}`)

	var seen []string

	chain := glo.NewInterceptorChain().
		AddRequestInterceptor(glo.RequestIDInterceptor()).
		AddResponseInterceptor(func(ctx context.Context, req *glo.Request, resp *glo.Response) error {
			seen = append(seen, req.Operation)

			return nil
		})

	client, err := New(&glo.Config{
		APIEndpoint:  server.URL,
		Token:        "pat",
		UserAgent:    "glo-test/2",
		Interceptors: chain,
	})
	require.NoError(t, err)

	_, err = client.Users().GetCurrentUser(context.Background(), nil)
	require.NoError(t, err)

	last := server.Last(t)
	assert.Equal(t, "glo-test/2", last.Header.Get("User-Agent"))
	assert.NotEmpty(t, last.Header.Get("X-Request-ID"))
	assert.Equal(t, []string{"users.get_current"}, seen)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"bad token"}`, check: glo.IsUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: ``, check: glo.IsForbidden},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"no such board"}`, check: glo.IsNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, check: func(err error) bool {
			return glo.StatusCode(err) == http.StatusInternalServerError
		}},
		{name: "multiple choices", status: http.StatusMultipleChoices, body: `{"message":"moved"}`, check: func(err error) bool {
			return glo.StatusCode(err) == http.StatusMultipleChoices
		}},
		{name: "not modified", status: http.StatusNotModified, body: ``, check: func(err error) bool {
			return glo.StatusCode(err) == http.StatusNotModified
		}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := NewTestServer(t, testCase.status, testCase.body)
			client := NewTestClient(t, server.URL)

			board, err := client.Boards().Get(context.Background(), "b1", nil)
			require.Error(t, err)
			assert.Nil(t, board)
			assert.True(t, testCase.check(err))

			apiErr := &glo.APIError{}
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, testCase.status, apiErr.StatusCode)
			assert.Equal(t, testCase.body, string(apiErr.Body))
			assert.Contains(t, err.Error(), "getting board")

			payload, err := client.Boards().Delete(context.Background(), "b1")
			require.Error(t, err)
			assert.Nil(t, payload)
			assert.Equal(t, testCase.status, glo.StatusCode(err))
			assert.Contains(t, err.Error(), "deleting board")
		})
	}
}

func TestClient_ResponseBodyIsKeptRaw(t *testing.T) {
	t.Parallel()

	t.Run("delete payload", func(t *testing.T) {
		t.Parallel()

		server := NewTestServer(t, http.StatusOK, " {\"ok\":true}\n")
		client := NewTestClient(t, server.URL)

		payload, err := client.Boards().Delete(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, " {\"ok\":true}\n", string(payload))
	})

	t.Run("blank delete payload", func(t *testing.T) {
		t.Parallel()

		server := NewTestServer(t, http.StatusOK, " \n")
		client := NewTestClient(t, server.URL)

		payload, err := client.Boards().Delete(context.Background(), "b1")
		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("error body", func(t *testing.T) {
		t.Parallel()

		server := NewTestServer(t, http.StatusNotFound, "{\"message\":\"gone\"}\n")
		client := NewTestClient(t, server.URL)

		_, err := client.Boards().Get(context.Background(), "b1", nil)

		apiErr := &glo.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "{\"message\":\"gone\"}\n", string(apiErr.Body))
	})
}

func TestClient_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, `{"id":`)
	client := NewTestClient(t, server.URL)

	_, err := client.Boards().Get(context.Background(), "b1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing board")
}

func TestPathEscaping(t *testing.T) {
	t.Parallel()

	server := NewTestServer(t, http.StatusOK, `{"id":"a/b"}`)
	client := NewTestClient(t, server.URL)

	_, err := client.Boards().Get(context.Background(), "a/b c", nil)
	require.NoError(t, err)
	assert.Equal(t, "/boards/a%2Fb%20c", server.Last(t).Path)
}
