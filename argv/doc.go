// Package argv classifies and parses command-line arguments against
// declarative templates.
//
// # Templates
//
// A program describes what it accepts with a tree of [Command] values, each
// owning its [Option] values and child commands by value. The root command
// represents the program itself and has no name:
//
//	root := &argv.Command{
//		Options: []argv.Option{
//			{Short: 'v', Long: "verbose", Description: "Print more"},
//		},
//		Commands: []argv.Command{{
//			Name: "build",
//			Options: []argv.Option{
//				{Long: "target", Params: []string{"TRIPLE"}},
//			},
//		}},
//	}
//
// Templates are never mutated by this package and may be shared by
// concurrent parses. [Command.Validate] reports authoring errors such as
// duplicate names; it is not called implicitly.
//
// # Classification
//
// [Classify] maps one token to its lexical [Kind] without consulting any
// template: POSIX short ("-v", "-abc") and long ("--name", "--name=value")
// options, Microsoft switches ("/name", "/name:value"), the "-" and "--"
// separators, regular arguments, and malformed option-like tokens.
//
// # Parsing
//
// [Parse] and [ParseOptions] turn tokens into [Results], one [Result] per
// logical token in input order. Parsing is error tolerant: every problem is
// reported as a [Validity] on the offending result and the remaining tokens
// are still parsed.
//
//	results := argv.Parse(os.Args[1:], root)
//	for r := range results.Invalid() {
//		fmt.Fprintln(os.Stderr, r.Token, r.Validity, argv.Suggest(r, 3))
//	}
//
// Options declared by a command remain visible in its subcommands unless
// [WithInheritance] disables it. Everything after a "--" token is a literal
// positional.
package argv
