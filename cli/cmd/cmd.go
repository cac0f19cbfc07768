package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/manifest"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable named key, or "" if there is none.
func kongVar(ctx context.Context, key string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[key]
}

type (
	manifestKey struct{}
	outputKey   struct{}
)

// WithManifest returns a new context.Context naming the manifest that
// commands load their template tree from. The name is resolved with
// [manifest.Search].
func WithManifest(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, manifestKey{}, name)
}

func manifestFrom(ctx context.Context) string {
	name, _ := ctx.Value(manifestKey{}).(string)

	return name
}

// WithOutput returns a new context.Context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// loadTemplates resolves and decodes the manifest named in ctx. A root
// command without a name takes the manifest's base name.
func loadTemplates(ctx context.Context) (*argv.Command, string, error) {
	name := manifestFrom(ctx)
	if name == "" {
		return nil, "", ErrNoManifest
	}

	path, err := manifest.Search(name)
	if err != nil {
		return nil, "", ErrLoadManifest.With(slog.String("manifest", name)).Wrap(err)
	}

	root, err := manifest.Load(ctx, path)
	if err != nil {
		return nil, "", ErrLoadManifest.With(slog.String("manifest", path)).Wrap(err)
	}

	if root.Name == "" && path != manifest.Stdin {
		root.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	log.DebugContext(ctx, "manifest loaded",
		slog.String("path", path),
		slog.String("root", root.Name),
		slog.Int("options", len(root.Options)),
		slog.Int("commands", len(root.Commands)),
	)

	return root, path, nil
}

// passthrough returns the tokens of a passthrough argument without the "--"
// that kong keeps when the user separates them from flags.
func passthrough(tokens []string) []string {
	if len(tokens) > 0 && tokens[0] == "--" {
		return tokens[1:]
	}

	return tokens
}
