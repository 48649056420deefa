package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/internal/constants"
)

func TestCardsCreate_Body(t *testing.T) {
	api := setupCLI(t, 201, `{"id":"k1","name":"Write docs","column_id":"c1","position":0}`, "table")

	out, err := runCommand(t, NewCardsCommand(), "",
		"create", "b1",
		"--name", "Write docs",
		"--column", "c1",
		"--position", "0",
		"--label", "l1",
		"--assignee", "u1,u2",
		"--due", "2024-03-01",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Write docs")

	req := requireOneRequest(t, api)
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/boards/b1/cards", req.Path)
	assert.JSONEq(t, `{
		"name": "Write docs",
		"column_id": "c1",
		"position": 0,
		"labels": [{"id": "l1"}],
		"assignees": [{"id": "u1"}, {"id": "u2"}],
		"due_date": "2024-03-01T00:00:00Z"
	}`, req.Body)
}

func TestCardsCreate_RequiresNameAndColumn(t *testing.T) {
	api := setupCLI(t, 201, `{}`, "table")

	_, err := runCommand(t, NewCardsCommand(), "", "create", "b1", "--name", "orphan")
	require.Error(t, err)
	assert.Empty(t, api.Requests())
}

func TestCardsEdit(t *testing.T) {
	t.Run("only given fields are sent", func(t *testing.T) {
		api := setupCLI(t, 200, `{"id":"k1","name":"x"}`, "json")

		_, err := runCommand(t, NewCardsCommand(), "", "edit", "b1", "k1", "--description", "")
		require.NoError(t, err)

		req := requireOneRequest(t, api)
		assert.Equal(t, "/boards/b1/cards/k1", req.Path)
		assert.JSONEq(t, `{"description":{"text":""}}`, req.Body)
	})

	t.Run("nothing to update", func(t *testing.T) {
		api := setupCLI(t, 200, `{}`, "json")

		_, err := runCommand(t, NewCardsCommand(), "", "edit", "b1", "k1")
		require.ErrorIs(t, err, constants.ErrNothingToUpdate)
		assert.Empty(t, api.Requests())
	})

	t.Run("bad due date", func(t *testing.T) {
		api := setupCLI(t, 200, `{}`, "json")

		_, err := runCommand(t, NewCardsCommand(), "", "edit", "b1", "k1", "--due", "next week")
		require.Error(t, err)
		assert.Empty(t, api.Requests())
	})
}

func TestCardsList_Query(t *testing.T) {
	api := setupCLI(t, 200, `[{"id":"k1","name":"a"}]`, "json")

	_, err := runCommand(t, NewCardsCommand(), "", "list", "b1", "--archived", "--page", "3")
	require.NoError(t, err)

	req := requireOneRequest(t, api)
	assert.Equal(t, "/boards/b1/cards", req.Path)
	assert.Equal(t, "archived=true&fields=name%2Cboard_id%2Ccolumn_id&page=3&per_page=50&sort=asc", req.Query)
}

func TestCardsGet_DefaultFields(t *testing.T) {
	api := setupCLI(t, 200, `{"id":"k1","name":"a"}`, "table")

	_, err := runCommand(t, NewCardsCommand(), "", "get", "b1", "k1")
	require.NoError(t, err)

	req := requireOneRequest(t, api)
	assert.Equal(t, "fields=name%2Cboard_id%2Ccard_id", req.Query)
}

func TestCardsAttachments_Empty(t *testing.T) {
	api := setupCLI(t, 200, ``, "table")

	out, err := runCommand(t, NewCardsCommand(), "", "attachments", "b1", "k1")
	require.NoError(t, err)
	assert.Equal(t, "No attachments found\n", out)

	req := requireOneRequest(t, api)
	assert.Equal(t, "/boards/b1/cards/k1/attachments", req.Path)
}

func TestCardsBatchCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"a","column_id":"c1"},{"name":"b","column_id":"c1"}]`), 0o600))

	api := setupCLI(t, 200, `{
		"successful": [{"id":"k1","name":"a"}],
		"errors": [{"index":1,"message":"column archived"}]
	}`, "table")

	out, err := runCommand(t, NewCardsCommand(), "", "batch-create", "b1", "--file", path, "--notify")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 1 of 2")
	assert.Contains(t, out, "column archived")

	req := requireOneRequest(t, api)
	assert.Equal(t, "/boards/b1/cards/batch", req.Path)
	assert.JSONEq(t, `{
		"cards": [{"name":"a","column_id":"c1"},{"name":"b","column_id":"c1"}],
		"send_notifications": true
	}`, req.Body)
}

func TestCardsBatchCreate_FromStdinYAMLFile(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		api := setupCLI(t, 200, `{"successful":[],"errors":[]}`, "json")

		_, err := runCommand(t, NewCardsCommand(), `[{"name":"a"}]`, "batch-create", "b1", "--file", "-")
		require.NoError(t, err)

		req := requireOneRequest(t, api)
		assert.JSONEq(t, `{"cards":[{"name":"a"}],"send_notifications":false}`, req.Body)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cards.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- name: a\n  column_id: c1\n"), 0o600))

		api := setupCLI(t, 200, `{"successful":[],"errors":[]}`, "json")

		_, err := runCommand(t, NewCardsCommand(), "", "batch-create", "b1", "-f", path)
		require.NoError(t, err)

		req := requireOneRequest(t, api)
		assert.JSONEq(t, `{"cards":[{"name":"a","column_id":"c1"}],"send_notifications":false}`, req.Body)
	})
}

func TestCardsBatchCreate_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing flag", args: []string{"batch-create", "b1"}, wantErr: constants.ErrBatchFileRequired},
		{name: "traversal", args: []string{"batch-create", "b1", "--file", "../cards.json"}, wantErr: constants.ErrDirectoryTraversalDetected},
		{name: "directory", args: []string{"batch-create", "b1", "--file", os.TempDir()}, wantErr: constants.ErrNotRegularFile},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api := setupCLI(t, 200, `{}`, "json")

			_, err := runCommand(t, NewCardsCommand(), "", testCase.args...)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Empty(t, api.Requests())
		})
	}
}
