package argv

import "github.com/ardnew/argot/log"

// ParseOption applies a configuration option to a parse.
type ParseOption func(parseConfig) parseConfig

type parseConfig struct {
	logger   log.Logger
	fold     bool
	inherit  bool
	required bool
	switches bool
}

func makeParseConfig(opts ...ParseOption) parseConfig {
	cfg := parseConfig{
		fold:     true,
		inherit:  true,
		required: true,
		switches: true,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithLogger traces each parse decision to logger at trace level.
func WithLogger(logger log.Logger) ParseOption {
	return func(c parseConfig) parseConfig {
		c.logger = logger

		return c
	}
}

// WithFoldSwitches controls whether Microsoft-style switches match option
// names case-insensitively. Enabled by default.
func WithFoldSwitches(enable bool) ParseOption {
	return func(c parseConfig) parseConfig {
		c.fold = enable

		return c
	}
}

// WithInheritance controls whether options declared by ancestor commands
// remain matchable after descending into a subcommand. When enabled (the
// default), the innermost scope is searched first.
func WithInheritance(enable bool) ParseOption {
	return func(c parseConfig) parseConfig {
		c.inherit = enable

		return c
	}
}

// WithRequiredCheck controls whether unmatched required options of visited
// scopes, and unfilled parameters of the root, are reported as synthetic
// [NotEnoughValues] results. Enabled by default.
func WithRequiredCheck(enable bool) ParseOption {
	return func(c parseConfig) parseConfig {
		c.required = enable

		return c
	}
}

// WithSwitches controls whether tokens shaped like Microsoft switches are
// matched as options. When disabled they are treated as regular arguments,
// which suits programs that take absolute paths as positionals.
func WithSwitches(enable bool) ParseOption {
	return func(c parseConfig) parseConfig {
		c.switches = enable

		return c
	}
}
