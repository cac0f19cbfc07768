package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/argot/manifest"
)

type initCLI struct {
	Manifest string   `short:"m"`
	Level    string   `default:"info"`
	Secret   string   `default:"x"    hidden:""`
	Tags     []string
	Quiet    bool

	Init Init `cmd:""`
}

// initContext parses args against initCLI and returns the context for its
// init command with the configuration file placed in a temporary directory.
func initContext(t *testing.T, args ...string) (context.Context, *initCLI, string, *bytes.Buffer) {
	t.Helper()

	confPath := filepath.Join(t.TempDir(), "argot", "config.yaml")

	var cli initCLI

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	require.NoError(t, err)

	ktx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer

	ctx := WithOutput(WithContext(context.Background(), ktx), &out)

	return ctx, &cli, confPath, &out
}

func TestInitWritesConfig(t *testing.T) {
	ctx, cli, confPath, _ := initContext(t, "-m", "tool", "--quiet", "init")

	require.NoError(t, cli.Init.Run(ctx))

	data, err := os.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, "manifest: tool\nlevel: info\nquiet: true\n", string(data))
}

func TestInitForce(t *testing.T) {
	ctx, cli, confPath, _ := initContext(t, "init")

	require.NoError(t, cli.Init.Run(ctx))

	err := cli.Init.Run(ctx)
	require.ErrorIs(t, err, ErrWriteConfig)
	require.ErrorIs(t, err, ErrFileExists)

	require.NoError(t, os.WriteFile(confPath, []byte("stale"), 0o600))

	cli.Init.Force = true
	require.NoError(t, cli.Init.Run(ctx))

	data, err := os.ReadFile(confPath)
	require.NoError(t, err)
	assert.Equal(t, "level: info\nquiet: false\n", string(data))
}

func TestInitManifestOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool.yaml")

	ctx, cli, _, _ := initContext(t, "init", "--manifest-out", path)

	require.NoError(t, cli.Init.Run(ctx))

	root, err := manifest.Load(ctx, path)
	require.NoError(t, err)

	if diff := cmp.Diff(manifest.Example(), root); diff != "" {
		t.Errorf("example manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestInitManifestStdout(t *testing.T) {
	ctx, cli, _, out := initContext(t, "init", "--manifest-out", "-")

	require.NoError(t, cli.Init.Run(ctx))

	root, err := manifest.Decode(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, "tool", root.Name)
}
