package argv

import (
	"slices"
	"strings"
	"unicode"
)

// Option describes a named flag or value option.
//
// At least one of Short or Long must be set. Params names the values the
// option consumes; an option with no Params and no Variadic setting is a
// flag. Defaults supply values for trailing Params, filled from the back,
// when the command line provides fewer.
type Option struct {
	Short       rune     // single letter, 0 if absent
	Long        string   // long name without leading dashes
	Aliases     []string // additional long names
	Description string
	Params      []string
	Defaults    []string
	Variadic    Variadicity // applies to the last parameter
	Required    bool
}

// IsFlag reports whether o consumes no values.
func (o *Option) IsFlag() bool {
	return len(o.Params) == 0 && !o.Variadic.IsVariadic()
}

// MinValues returns the number of values o must receive, counting values
// supplied from Defaults as received.
func (o *Option) MinValues() int {
	return minValues(o.Params, o.Defaults, o.Variadic)
}

// MaxValues returns the number of values o accepts, or -1 if unbounded.
func (o *Option) MaxValues() int {
	return maxValues(o.Params, o.Variadic)
}

// Names returns every name of o, short name first, without prefixes.
func (o *Option) Names() []string {
	names := make([]string, 0, 2+len(o.Aliases))

	if o.Short != 0 {
		names = append(names, string(o.Short))
	}

	if o.Long != "" {
		names = append(names, o.Long)
	}

	return append(names, o.Aliases...)
}

// LongNames returns Long followed by Aliases, omitting empty names.
func (o *Option) LongNames() []string {
	var names []string

	if o.Long != "" {
		names = append(names, o.Long)
	}

	return append(names, o.Aliases...)
}

// Name returns the preferred display name of o: Long, or Short if o has no
// long name.
func (o *Option) Name() string {
	if o.Long != "" {
		return o.Long
	}

	if len(o.Aliases) > 0 {
		return o.Aliases[0]
	}

	return string(o.Short)
}

// MatchShort reports whether r is the short name of o.
func (o *Option) MatchShort(r rune, fold bool) bool {
	if o.Short == 0 {
		return false
	}

	if fold {
		return unicode.ToLower(o.Short) == unicode.ToLower(r)
	}

	return o.Short == r
}

// MatchLong reports whether name is a long name or alias of o.
func (o *Option) MatchLong(name string, fold bool) bool {
	return slices.ContainsFunc(o.LongNames(), func(n string) bool {
		if fold {
			return strings.EqualFold(n, name)
		}

		return n == name
	})
}

// Command describes a subcommand, or the program itself when used as the
// root of a tree. The root has no name of its own.
//
// Params are positional slots collected immediately after the command's name
// token, using the same arity rules as [Option].
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Params      []string
	Defaults    []string
	Variadic    Variadicity
	Options     []Option
	Commands    []Command
}

// Names returns Name followed by Aliases.
func (c *Command) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// MatchName reports whether name is the name or an alias of c.
func (c *Command) MatchName(name string) bool {
	return name != "" && slices.Contains(c.Names(), name)
}

// MinValues returns the number of positional values c must receive.
func (c *Command) MinValues() int {
	return minValues(c.Params, c.Defaults, c.Variadic)
}

// MaxValues returns the number of positional values c accepts, or -1 if
// unbounded.
func (c *Command) MaxValues() int {
	return maxValues(c.Params, c.Variadic)
}

// Lookup returns the child command named name, or nil.
func (c *Command) Lookup(name string) *Command {
	for i := range c.Commands {
		if c.Commands[i].MatchName(name) {
			return &c.Commands[i]
		}
	}

	return nil
}

// Path returns the descendant reached by following names from c, or nil if
// any name does not resolve.
func (c *Command) Path(names ...string) *Command {
	node := c

	for _, name := range names {
		if node = node.Lookup(name); node == nil {
			return nil
		}
	}

	return node
}

// FindLong returns the option of c with the given long name or alias.
func (c *Command) FindLong(name string, fold bool) *Option {
	for i := range c.Options {
		if c.Options[i].MatchLong(name, fold) {
			return &c.Options[i]
		}
	}

	return nil
}

// FindShort returns the option of c with the given short name.
func (c *Command) FindShort(r rune, fold bool) *Option {
	for i := range c.Options {
		if c.Options[i].MatchShort(r, fold) {
			return &c.Options[i]
		}
	}

	return nil
}

// FindOption returns the option of c with the given name, trying the short
// name first when name is a single rune.
func (c *Command) FindOption(name string) *Option {
	if r := []rune(name); len(r) == 1 {
		if o := c.FindShort(r[0], false); o != nil {
			return o
		}
	}

	return c.FindLong(name, false)
}

// Walk calls fn for c and each descendant in depth-first order with the
// path from c to the visited node. Returning false from fn skips the
// node's children.
func (c *Command) Walk(fn func(path []*Command) bool) {
	c.walk([]*Command{c}, fn)
}

func (c *Command) walk(path []*Command, fn func([]*Command) bool) {
	if !fn(path) {
		return
	}

	for i := range c.Commands {
		child := &c.Commands[i]
		child.walk(append(path[:len(path):len(path)], child), fn)
	}
}

func minValues(params, defaults []string, v Variadicity) int {
	switch v {
	case ZeroOrMore:
		return max(len(params)-1, 0)
	case OneOrMore:
		return max(len(params)-1, 0) + 1
	}

	return max(len(params)-len(defaults), 0)
}

func maxValues(params []string, v Variadicity) int {
	if v.IsVariadic() {
		return -1
	}

	return len(params)
}
