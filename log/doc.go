// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured at creation time using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.With] attaches attributes to every subsequent message, and
// [Logger.Wrap] derives a logger with some options overridden.
//
// Each level has a context-aware and a context-unaware method. The
// context-unaware variants use [DefaultContextProvider], which returns
// [context.TODO] unless replaced.
//
// The package-level functions log through a default logger writing to
// standard error, reconfigured with [Config].
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace is below debug and is used for
// per-token parser decisions.
//
// # Output
//
// [FormatText] (default) and [FormatJSON] are supported. With
// [WithPretty] enabled (default) text output is unquoted and JSON output is
// indented; both are colored when the destination is a terminal.
package log
