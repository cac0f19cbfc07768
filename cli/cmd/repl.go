package cmd

import (
	"context"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/cli/cmd/repl"
	"github.com/ardnew/argot/log"
)

// Repl parses command lines interactively against the manifest.
type Repl struct {
	NoInherit     bool `help:"Match options only in the scope that declares them."`
	CaseSensitive bool `help:"Match switch names case-sensitively."`
	NoSwitches    bool `help:"Treat switch-shaped tokens as regular arguments."`
	NoRequired    bool `help:"Do not report missing required options."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, _, err := loadTemplates(ctx)
	if err != nil {
		return err
	}

	return repl.Run(ctx, root, kongVar(ctx, CacheIdentifier), log.Default(),
		argv.WithInheritance(!r.NoInherit),
		argv.WithFoldSwitches(!r.CaseSensitive),
		argv.WithSwitches(!r.NoSwitches),
		argv.WithRequiredCheck(!r.NoRequired),
	)
}
