package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/argot/help"
	"github.com/ardnew/argot/manifest"
)

func TestHelpRoot(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	h := &Help{Style: "posix", Color: "never"}
	require.NoError(t, h.Run(ctx))

	want := help.Message(manifest.Example(), help.DefaultPosix()) + "\n"
	assert.Equal(t, want, out.String())
	assert.Contains(t, out.String(), "--verbose")
	assert.Contains(t, out.String(), "build")
}

func TestHelpSubcommand(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	h := &Help{Style: "microsoft", Color: "never", Path: []string{"b"}}
	require.NoError(t, h.Run(ctx))

	build := manifest.Example().Lookup("build")
	assert.Equal(t, help.Message(build, help.DefaultMicrosoft())+"\n", out.String())
	assert.Contains(t, out.String(), "/TARGET")
}

func TestHelpUsage(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	h := &Help{Style: "posix", Color: "never", Usage: true, Path: []string{"run"}}
	require.NoError(t, h.Run(ctx))

	run := manifest.Example().Lookup("run")
	assert.Equal(t, help.Usage(run, help.DefaultPosix())+"\n", out.String())
}

func TestHelpOption(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	h := &Help{Style: "posix", Color: "never", Option: "j", Path: []string{"build"}}
	require.NoError(t, h.Run(ctx))

	jobs := manifest.Example().Lookup("build").FindOption("jobs")
	require.NotNil(t, jobs)
	assert.Equal(t, help.Message(jobs, help.DefaultPosix())+"\n", out.String())
}

func TestHelpErrors(t *testing.T) {
	tests := []struct {
		name string
		help Help
		want error
	}{
		{"unknown_command", Help{Path: []string{"deploy"}}, ErrUnknownCommand},
		{"unknown_option", Help{Option: "nope"}, ErrUnknownOption},
		{"no_manifest", Help{}, ErrNoManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, "tool.yaml")
			if tt.want == ErrNoManifest {
				path = ""
			}

			ctx, _ := testContext(t, path)

			require.ErrorIs(t, tt.help.Run(ctx), tt.want)
		})
	}
}

func TestHelpColor(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	h := &Help{Style: "posix", Color: "always", Usage: true}
	require.NoError(t, h.Run(ctx))

	assert.Contains(t, out.String(), "\x1b[", "forced color emits escape sequences")
}
