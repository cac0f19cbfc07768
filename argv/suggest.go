package argv

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit names, in the prefix style of r, that an
// unrecognized result most likely intended. Options are drawn from every
// scope active when r was produced and subcommands from the innermost one.
// A limit less than one returns all matches.
func Suggest(r Result, limit int) []string {
	if len(r.scope) == 0 {
		return nil
	}

	var (
		prefix     string
		candidates []string
	)

	switch r.Validity {
	case UnrecognizedOption:
		var short bool

		switch {
		case strings.HasPrefix(r.Text, "--"):
			prefix = "--"
		case strings.HasPrefix(r.Text, "/"):
			prefix = "/"
		case strings.HasPrefix(r.Text, "-"):
			prefix, short = "-", true
		default:
			return nil
		}

		for _, c := range r.scope {
			for i := range c.Options {
				opt := &c.Options[i]

				if short || prefix == "/" {
					if opt.Short != 0 {
						candidates = append(candidates, string(opt.Short))
					}
				}

				if !short {
					candidates = append(candidates, opt.LongNames()...)
				}
			}
		}

	case UnrecognizedCommand:
		for _, c := range r.scope[len(r.scope)-1].Commands {
			candidates = append(candidates, c.Names()...)
		}

	default:
		return nil
	}

	pattern := strings.TrimPrefix(r.Text, prefix)
	if prefix == "/" {
		pattern = strings.ToLower(pattern)
	}

	matches := fuzzy.Find(pattern, candidates)

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if limit > 0 && len(names) >= limit {
			break
		}

		names = append(names, prefix+m.Str)
	}

	return names
}
