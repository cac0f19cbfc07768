package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/argot/cli/cmd"
	"github.com/ardnew/argot/manifest"
	"github.com/ardnew/argot/pkg"
)

// EnvManifest names the environment variable supplying --manifest.
const EnvManifest = "ARGOT_MANIFEST"

// CLI is the top-level command-line interface for argot.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Manifest string           `env:"ARGOT_MANIFEST" help:"Manifest file, or a name searched for in the config directory and ${envPath} (- for stdin)." placeholder:"FILE" short:"m"`
	Version  kong.VersionFlag `                     help:"Print version and exit."`

	Parse    cmd.Parse    `cmd:"" default:"withargs" help:"Classify and parse tokens against the manifest."`
	Help     cmd.Help     `cmd:""                    help:"Render help for the manifest or one of its subcommands."`
	Classify cmd.Classify `cmd:""                    help:"Print the lexical kind of each token."`
	Init     cmd.Init     `cmd:""                    help:"Initialize configuration file."`
	Repl     cmd.Repl     `cmd:""                    help:"Parse command lines interactively."`
}

// Run executes the argot CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, os.Stdout, os.Stderr, exit, args...)
}

func run(
	ctx context.Context,
	stdout, stderr io.Writer,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            strings.TrimSpace(pkg.Version),
		"envPath":            manifest.EnvPath,
	}.CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if g := cli.Pprof.group(); g.Key != "" {
		groups = append(groups, g)
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithManifest(ctx, cli.Manifest)
	ctx = cmd.WithOutput(ctx, ktx.Stdout)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run()
}
