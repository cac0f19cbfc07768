package manifest

import "github.com/ardnew/argot/argv"

// Example returns a small template tree that exercises every manifest field.
func Example() *argv.Command {
	return &argv.Command{
		Name:        "tool",
		Description: "Example command-line tool",
		Options: []argv.Option{
			{Short: 'v', Long: "verbose", Description: "Print more detail"},
			{Short: 'h', Long: "help", Aliases: []string{"usage"}, Description: "Show help and exit"},
			{Short: 'C', Long: "directory", Params: []string{"DIR"}, Description: "Change to DIR first"},
		},
		Commands: []argv.Command{
			{
				Name:        "build",
				Aliases:     []string{"b"},
				Description: "Compile packages",
				Params:      []string{"PACKAGE"},
				Variadic:    argv.ZeroOrMore,
				Options: []argv.Option{
					{Long: "target", Params: []string{"TRIPLE"}, Description: "Target triple", Required: true},
					{Short: 'j', Long: "jobs", Params: []string{"N"}, Defaults: []string{"1"}, Description: "Parallel jobs"},
					{Long: "tags", Params: []string{"TAG"}, Variadic: argv.OneOrMore, Description: "Build tags"},
				},
			},
			{
				Name:        "run",
				Description: "Build and run a program",
				Params:      []string{"PROGRAM", "ARGS"},
				Variadic:    argv.ZeroOrMore,
				Commands: []argv.Command{
					{Name: "watch", Description: "Rerun on change"},
				},
			},
		},
	}
}
