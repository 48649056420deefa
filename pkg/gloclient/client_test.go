package gloclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/pkg/glo"
	"github.com/fivetwenty-io/glo/pkg/gloclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := gloclient.New(&glo.Config{Token: "pat"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := gloclient.New(nil)
		require.ErrorIs(t, err, glo.ErrConfigRequired)
	})

	t.Run("empty token is accepted", func(t *testing.T) {
		t.Parallel()

		client, err := gloclient.New(&glo.Config{APIEndpoint: "https://example.test"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("does not modify config", func(t *testing.T) {
		t.Parallel()

		config := &glo.Config{APIEndpoint: "example.test/", Token: "pat"}
		_, err := gloclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "example.test/", config.APIEndpoint)
	})
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := gloclient.NewWithToken("test-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.Boards())
	assert.NotNil(t, client.Users())
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer pat-1", request.Header.Get("Authorization"))

		switch request.URL.Path {
		case "/user":
			_, _ = writer.Write([]byte(`{"id":"u1","username":"ada"}`))
		case "/boards":
			assert.Equal(t, "archived=false&fields=name&page=1&per_page=50&sort=asc", request.URL.RawQuery)
			_, _ = writer.Write([]byte(`[{"id":"b1","name":"Roadmap"}]`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := gloclient.NewWithEndpoint(server.URL+"/", "Bearer pat-1")
	require.NoError(t, err)

	user, err := client.Users().GetCurrentUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)

	boards, err := client.GetAllBoards(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Roadmap", boards[0].Name)

	_, err = client.Boards().Get(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.True(t, glo.IsNotFound(err))
}
