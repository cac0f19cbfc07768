package argv

import (
	"iter"
	"log/slog"
	"slices"
)

// Match identifies which kind of template, if any, a [Result] is bound to.
type Match uint8

const (
	MatchNone    Match = iota // none
	MatchOption               // option
	MatchCommand              // command
)

// Result is one parse result.
//
// A Result is bound to at most one template: an [Option], a [Command], or
// neither for positional values and tokens that matched nothing.
type Result struct {
	Token    string   // original token text
	Text     string   // token text after splitting clusters and inline values
	Values   []string // captured values
	Kind     Kind
	Validity Validity
	Pos      int  // index of the originating token, or -1 if synthetic
	Offset   int  // byte offset of the name or value within Token
	Size     int  // byte length of the name or value within Token
	Literal  bool // follows the "--" terminator

	option  *Option
	command *Command
	scope   []*Command
}

// Match returns the kind of template r is bound to.
func (r Result) Match() Match {
	switch {
	case r.option != nil:
		return MatchOption
	case r.command != nil:
		return MatchCommand
	}

	return MatchNone
}

// Option returns the matched option template, or nil.
func (r Result) Option() *Option { return r.option }

// Command returns the matched subcommand template, or nil.
func (r Result) Command() *Command { return r.command }

// Scope returns the chain of commands that were active when r was produced,
// starting at the root.
func (r Result) Scope() []*Command { return r.scope }

// Synthetic reports whether r was appended after the input was exhausted
// rather than produced from a token.
func (r Result) Synthetic() bool { return r.Pos < 0 }

// IsValid reports whether r has [Valid] validity.
func (r Result) IsValid() bool { return r.Validity == Valid }

// Name returns the name of the matched template, or Text if r is unbound.
func (r Result) Name() string {
	switch {
	case r.option != nil:
		return r.option.Name()
	case r.command != nil:
		return r.command.Name
	}

	return r.Text
}

// LogValue implements [slog.LogValuer].
func (r Result) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("text", r.Text),
		slog.String("kind", r.Kind.String()),
		slog.String("validity", r.Validity.String()),
		slog.Int("pos", r.Pos),
	}

	if m := r.Match(); m != MatchNone {
		attrs = append(attrs, slog.String(m.String(), r.Name()))
	}

	if len(r.Values) > 0 {
		attrs = append(attrs, slog.Any("values", r.Values))
	}

	return slog.GroupValue(attrs...)
}

// Results is the ordered output of a parse.
type Results []Result

// Valid reports whether every result is [Valid].
func (rs Results) Valid() bool {
	return !slices.ContainsFunc(rs, func(r Result) bool { return !r.IsValid() })
}

// Invalid returns an iterator over the results that are not [Valid].
func (rs Results) Invalid() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, r := range rs {
			if !r.IsValid() && !yield(r) {
				return
			}
		}
	}
}

// Options returns an iterator over the results bound to an option named name.
// The name may be a short name, long name or alias.
func (rs Results) Options(name string) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, r := range rs {
			if r.option == nil || !slices.Contains(r.option.Names(), name) {
				continue
			}

			if !yield(r) {
				return
			}
		}
	}
}

// Has reports whether an option named name was matched.
func (rs Results) Has(name string) bool {
	for range rs.Options(name) {
		return true
	}

	return false
}

// Values returns the values of every valid occurrence of the option named
// name, in input order.
func (rs Results) Values(name string) []string {
	var values []string

	for r := range rs.Options(name) {
		if r.IsValid() {
			values = append(values, r.Values...)
		}
	}

	return values
}

// Positionals returns the text of every valid result that is not bound to a
// template.
func (rs Results) Positionals() []string {
	var values []string

	for _, r := range rs {
		if r.Match() == MatchNone && r.IsValid() {
			values = append(values, r.Text)
		}
	}

	return values
}

// Commands returns the subcommands descended into, outermost first.
func (rs Results) Commands() []*Command {
	var path []*Command

	for _, r := range rs {
		if r.command != nil {
			path = append(path, r.command)
		}
	}

	return path
}
