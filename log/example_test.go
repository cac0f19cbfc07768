package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/argot/log"
)

func Example() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"), log.WithPretty(false))
	logger.Info("parsed", slog.Int("results", 3))
	logger.Debug("hidden")
	// Output: level=INFO msg=parsed results=3
}

func Example_json() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelTrace))

	logger = logger.With(slog.String("scope", "build"))
	logger.Trace("token", slog.String("text", "--target"))
	// Output: {"level":"TRACE","msg":"token","scope":"build","text":"--target"}
}
