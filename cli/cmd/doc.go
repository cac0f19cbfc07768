// Package cmd implements the argot subcommands: parse, help, classify, init
// and repl.
//
// Commands receive a [context.Context] carrying the [kong.Context], the
// manifest name given with --manifest, and the writer for command output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
