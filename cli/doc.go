// Package cli contains the command line interface for argot.
//
// # Usage
//
// Every command except classify reads a manifest, a YAML description of the
// target program's options and subcommands:
//
//	argot -m tool.yaml parse -- -v build --target x86_64 ./...
//	argot -m tool.yaml help build
//	argot classify -- --name=value -abc /opt:x
//
// A manifest given by name is searched for in the configuration directory
// and each directory of $ARGOT_PATH, with and without a .yaml or .yml
// extension. $ARGOT_MANIFEST supplies a default for --manifest.
//
// # Configuration
//
// Flag defaults are read from config.yaml in the configuration directory
// (see [pkg.ConfigDir]). Nested keys are joined with hyphens, so
//
//	log:
//	  level: debug
//
// sets --log-level. argot init writes the current flag values to that file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output on a terminal
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
// It adds --pprof-mode and --pprof-dir, which defaults to the pprof directory
// under [pkg.CacheDir].
package cli
