package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/argot/cli"
	"github.com/ardnew/argot/cli/cmd"
	"github.com/ardnew/argot/log"
)

// exitInvalid is the exit status when parsed arguments are invalid. The
// results have already been printed.
const exitInvalid = 2

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)

	switch {
	case err == nil:

	case errors.Is(err, cmd.ErrInvalidArguments):
		log.Debug("invalid arguments", slog.Any("error", err))
		os.Exit(exitInvalid)

	default:
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
