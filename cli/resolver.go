package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/argot/log"
)

// resolve is a [kong.ConfigurationLoader] that reads YAML configuration
// files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The YAML document is converted as follows:
//   - Nested mappings are flattened, joining keys with hyphens, so that
//     "log: {level: debug}" sets --log-level
//   - Keys may use underscores in place of hyphens
//   - Booleans keep their type and other scalars become strings
//   - Sequences become lists of strings
//
// Example config file:
//
//	manifest: tool
//	log:
//	  level: debug
//	  pretty: false
//
// Command-line flags override config file values. A file that cannot be
// decoded is logged and ignored.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc yaml.MapSlice

	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		log.Warn("ignoring invalid configuration file",
			slog.String("error", err.Error()))

		return config{}, nil
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] for flattened YAML configs.
type config map[string]any

func (r config) flatten(prefix string, doc yaml.MapSlice) {
	for _, item := range doc {
		key := prefix + strings.ReplaceAll(fmt.Sprint(item.Key), "_", "-")

		switch v := item.Value.(type) {
		case yaml.MapSlice:
			r.flatten(key+"-", v)

		case []any:
			list := make([]any, len(v))
			for i, e := range v {
				list[i] = scalar(e)
			}

			r[key] = list

		case nil:

		default:
			r[key] = scalar(v)
		}
	}
}

// scalar returns v as a string unless it is a bool. Kong parses numbers
// from strings.
func scalar(v any) any {
	if b, ok := v.(bool); ok {
		return b
	}

	return fmt.Sprint(v)
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
