package repl

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/manifest"
)

// scriptedEditor replaces the file content with each of edits in turn.
func scriptedEditor(t *testing.T, edits ...string) func(context.Context, io.Reader, io.Writer, io.Writer, string) (io.Reader, error) {
	t.Helper()

	return func(_ context.Context, _ io.Reader, _, _ io.Writer, path string) (io.Reader, error) {
		require.NotEmpty(t, edits, "editor invoked too many times")

		current, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NotEmpty(t, current)

		next := edits[0]
		edits = edits[1:]

		require.NoError(t, os.WriteFile(path, []byte(next), 0o600))

		return strings.NewReader(next), nil
	}
}

func newEditCommand(t *testing.T, stdin string, edits ...string) (*editManifestCommand, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &editManifestCommand{
		root:    manifest.Example(),
		ctxFunc: context.Background,
		logger:  log.Logger{},
		editor:  scriptedEditor(t, edits...),
	}
	cmd.SetStdin(strings.NewReader(stdin))
	cmd.SetStdout(&out)
	cmd.SetStderr(&out)

	return cmd, &out
}

func TestEditManifest(t *testing.T) {
	const edited = `
options:
  - long: quiet
commands:
  - name: deploy
`

	cmd, _ := newEditCommand(t, "", edited)
	require.NoError(t, cmd.Run())
	require.NotNil(t, cmd.newRoot)

	assert.Equal(t, "tool", cmd.newRoot.Name, "unnamed root keeps the previous name")
	assert.NotNil(t, cmd.newRoot.Lookup("deploy"))
	assert.NotNil(t, cmd.newRoot.FindOption("quiet"))
}

func TestEditManifestCancelled(t *testing.T) {
	cmd, _ := newEditCommand(t, "", "")
	require.NoError(t, cmd.Run())
	assert.Nil(t, cmd.newRoot)
}

func TestEditManifestRetry(t *testing.T) {
	cmd, out := newEditCommand(t, "y\n", "options: [", "name: fixed\n")
	require.NoError(t, cmd.Run())
	require.NotNil(t, cmd.newRoot)
	assert.Equal(t, "fixed", cmd.newRoot.Name)
	assert.Contains(t, out.String(), "Manifest error:")
	assert.Contains(t, out.String(), "Re-edit? [Y/n]")
}

func TestEditManifestDeclined(t *testing.T) {
	cmd, _ := newEditCommand(t, "n\n", "options: [")
	require.ErrorIs(t, cmd.Run(), ErrEditDeclined)
	assert.Nil(t, cmd.newRoot)
}
