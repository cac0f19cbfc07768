package manifest

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/pkg"
)

// Stdin is the manifest path that reads standard input.
const Stdin = "-"

// Decode reads a manifest from r and returns its validated template tree.
func Decode(ctx context.Context, r io.Reader) (*argv.Command, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	var doc command

	if err := yaml.UnmarshalContext(ctx, data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, pkg.ErrParse.Wrap(err)
	}

	root, err := doc.template()
	if err != nil {
		return nil, err
	}

	if err := root.Validate(); err != nil {
		return nil, pkg.ErrInvalidManifest.Wrap(err)
	}

	return &root, nil
}

// Load decodes the manifest at path, or standard input if path is [Stdin].
func Load(ctx context.Context, path string) (*argv.Command, error) {
	if path == Stdin {
		root, err := Decode(ctx, os.Stdin)
		if err != nil {
			return nil, pkg.ErrReadStdin.Wrap(err)
		}

		return root, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}
	defer f.Close()

	return Decode(ctx, f)
}

// Encode writes root to w as a manifest indented by indent spaces.
func Encode(ctx context.Context, w io.Writer, root *argv.Command, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent), yaml.IndentSequence(true))
	}

	data, err := yaml.MarshalContext(ctx, document(root), opts...)
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}
