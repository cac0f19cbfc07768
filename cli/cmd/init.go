package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/manifest"
	"github.com/ardnew/argot/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force       bool   `help:"Overwrite existing files."                                   short:"f"`
	ManifestOut string `help:"Also write an example manifest to FILE (- for stdout)." placeholder:"FILE"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath := kongVar(ctx, ConfigIdentifier)
	if confPath == "" {
		panic("internal error: config namespace undefined")
	}

	data, err := yaml.MarshalWithOptions(
		i.configValues(ctx),
		yaml.Indent(defaultConfigIndent),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	if err := i.create(confPath, func(w io.Writer) error {
		_, err := w.Write(data)

		return err
	}); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	if i.ManifestOut == "" {
		return nil
	}

	write := func(w io.Writer) error {
		return manifest.Encode(ctx, w, manifest.Example(), defaultConfigIndent)
	}

	if i.ManifestOut == manifest.Stdin {
		err = write(outputFrom(ctx))
	} else {
		err = i.create(i.ManifestOut, write)
	}

	if err != nil {
		return ErrWriteManifest.With(slog.String("file", i.ManifestOut)).Wrap(err)
	}

	log.DebugContext(ctx, "wrote example manifest",
		slog.String("path", i.ManifestOut))

	return nil
}

// create writes path with fn, refusing to replace an existing file unless
// Force is set.
func (i *Init) create(path string, fn func(io.Writer) error) (err error) {
	if _, err := os.Stat(path); err == nil && !i.Force {
		return ErrFileExists.With(slog.String("file", path))
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(file)
}

// configValues returns the current value of each persistent flag in
// declaration order. Flags that are hidden, unset, or only meaningful for a
// single invocation are omitted.
func (i *Init) configValues(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	ignore := []string{"help", "version", profile.Tag}

	var values yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v, ok := flagValue(ktx, flag); ok {
			values = append(values, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return values
}

// flagValue returns the value of flag, or false if it is empty.
func flagValue(ktx *kong.Context, flag *kong.Flag) (any, bool) {
	switch v := ktx.FlagValue(flag).(type) {
	case nil:
		return nil, false

	case string:
		return v, v != ""

	case []string:
		return v, len(v) > 0

	default:
		return v, true
	}
}
