package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/manifest"
)

const (
	defaultEditor = "vi"
	editIndent    = 2
)

// editManifestCommand implements [tea.ExecCommand] for the full manifest
// edit-decode-retry loop. It encodes the current template tree to a temp
// file, opens the user's editor, and decodes the result. On a decode error
// the user is prompted to re-edit; declining exits the program.
type editManifestCommand struct {
	root    *argv.Command
	ctxFunc func() context.Context
	newRoot *argv.Command
	logger  log.Logger
	editor  func(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, path string) (io.Reader, error)
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editManifestCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editManifestCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editManifestCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-decode-retry loop. If the user declines to re-edit,
// it returns [ErrEditDeclined].
func (c *editManifestCommand) Run() error {
	ctx := c.ctxFunc()

	var buf bytes.Buffer
	if err := manifest.Encode(ctx, &buf, c.root, editIndent); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	content := buf.String()

	// Create a single temp file for the entire loop.
	f, err := os.CreateTemp(os.TempDir(), "argot-repl-*.yaml")
	if err != nil {
		return err
	}

	tmpPath := f.Name()

	defer os.Remove(tmpPath)

	if err := f.Chmod(0o600); err != nil {
		f.Close()

		return err
	}

	f.Close()

	edit := c.editor
	if edit == nil {
		edit = runEditor
	}

	for {
		if err := os.WriteFile(tmpPath, []byte(content), 0o600); err != nil {
			return err
		}

		r, err := edit(ctx, c.stdin, c.stdout, c.stderr, tmpPath)
		if err != nil {
			return err
		}

		// An empty file cancels the edit.
		br := bufio.NewReader(r)
		if _, err := br.Peek(1); err != nil {
			return nil
		}

		root, decodeErr := manifest.Decode(ctx, br)
		c.logger.TraceContext(ctx, "editor decode attempt",
			slog.Bool("success", decodeErr == nil))

		if decodeErr == nil {
			if root.Name == "" {
				root.Name = c.root.Name
			}

			c.newRoot = root

			return nil
		}

		fmt.Fprintf(c.stderr, "\nManifest error: %s\n", decodeErr)
		fmt.Fprintf(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		response := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if response == "n" || response == "no" {
			return ErrEditDeclined
		}

		// Re-read the (failed) content for the next editor iteration.
		data, readErr := os.ReadFile(tmpPath)
		if readErr != nil {
			return readErr
		}

		content = string(data)
	}
}

// runEditor launches the user's editor on the given file path and returns a
// reader over the edited file content.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) (io.Reader, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}
