package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

type apiRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

// fakeAPI records requests and answers each with a fixed status and body.
type fakeAPI struct {
	mu       sync.Mutex
	requests []apiRequest
}

func (f *fakeAPI) Requests() []apiRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]apiRequest(nil), f.requests...)
}

// setupCLI resets viper, points the CLI at a test server and a temporary
// config file, and selects the output format. Tests using it must not run
// in parallel because viper state is global.
func setupCLI(t *testing.T, status int, body, output string) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		api.mu.Lock()
		api.requests = append(api.requests, apiRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(data),
		})
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))
	viper.Set("api", server.URL)
	viper.Set("token", "test-token")
	viper.Set("output", output)

	return api
}

// runCommand executes cmd with args and returns what it wrote to stdout.
func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return out.String(), err
}

func requireOneRequest(t *testing.T, api *fakeAPI) apiRequest {
	t.Helper()

	requests := api.Requests()
	require.Len(t, requests, 1)

	return requests[0]
}
