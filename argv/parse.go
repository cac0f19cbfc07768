package argv

import (
	"log/slog"
	"unicode/utf8"
)

// Parse matches tokens against the template tree rooted at root and returns
// one [Result] per logical token in input order, interleaving subcommand
// descents in place.
//
// Parse never fails: unknown options, unknown subcommands and missing values
// are reported through each result's [Validity]. Unless disabled with
// [WithRequiredCheck], required options of every visited scope that were
// never matched are appended as synthetic [NotEnoughValues] results.
//
// A command's positional slots are filled first from the tokens following
// its name and then from later regular tokens in its scope that name no
// subcommand, so options may be interleaved with positionals. Late values
// of a subcommand are added to its result; values of the root, which has no
// result of its own, are reported as unbound positionals. A root whose
// slots remain unfilled gets a synthetic [NotEnoughValues] result, subject
// to [WithRequiredCheck].
//
// An inline value given to an option that takes none is reported as
// [UnrecognizedOption].
//
// The tree must not be mutated while Parse runs. Parse does not validate the
// tree; see [Command.Validate].
func Parse(tokens []string, root *Command, opts ...ParseOption) Results {
	return newParser(root, true, opts...).run(tokens)
}

// ParseOptions is like [Parse] for a program without subcommands. Regular
// arguments that are not consumed as option values are always positionals.
func ParseOptions(tokens []string, options []Option, opts ...ParseOption) Results {
	return newParser(&Command{Options: options}, false, opts...).run(tokens)
}

type parser struct {
	cfg     parseConfig
	args    []modArgument
	next    int
	tree    bool
	scope   []*Command
	slots   []slot // parallel to scope
	matched map[*Option]struct{}
	out     Results
}

// slot tracks the positional values received by a visited command.
type slot struct {
	result int      // index of the command's result in out, or -1 for the root
	values []string // values received, before defaults
}

func newParser(root *Command, tree bool, opts ...ParseOption) *parser {
	return &parser{
		cfg:     makeParseConfig(opts...),
		tree:    tree,
		scope:   []*Command{root},
		slots:   []slot{{result: -1}},
		matched: make(map[*Option]struct{}),
	}
}

func (p *parser) run(tokens []string) Results {
	p.args = expand(tokens, p.cfg.switches)
	p.out = make(Results, 0, len(p.args))

	for p.next < len(p.args) {
		arg := p.args[p.next]
		p.next++

		switch {
		case arg.literal:
			p.emit(arg, Valid)

		case arg.kind == KindDoubleHyphen:
			p.cfg.logger.Trace("argv terminator", slog.Int("pos", arg.pos))

		case arg.kind.IsOption():
			p.option(arg)

		case arg.kind == KindRegular:
			p.regular(arg)

		case arg.kind == KindUnknown:
			p.emit(arg, UnrecognizedOption)

		case !p.fill(arg):
			p.emit(arg, Valid)
		}
	}

	if p.cfg.required {
		p.checkRoot()
		p.checkRequired()
	}

	return p.out
}

func (p *parser) current() *Command { return p.scope[len(p.scope)-1] }

// result builds an unbound result for arg.
func (p *parser) result(arg modArgument, v Validity) Result {
	return Result{
		Token:    arg.token,
		Text:     arg.text,
		Kind:     arg.kind,
		Validity: v,
		Pos:      arg.pos,
		Offset:   arg.offset,
		Size:     arg.size,
		Literal:  arg.literal,
		scope:    p.scope[:len(p.scope):len(p.scope)],
	}
}

func (p *parser) push(r Result) {
	p.out = append(p.out, r)
	p.cfg.logger.Trace("argv result", slog.Any("result", r))
}

func (p *parser) emit(arg modArgument, v Validity) { p.push(p.result(arg, v)) }

func (p *parser) option(arg modArgument) {
	opt := p.lookup(arg)
	if opt == nil {
		p.emit(arg, UnrecognizedOption)

		return
	}

	p.matched[opt] = struct{}{}

	values, ok := complete(opt.Params, opt.Defaults, opt.Variadic,
		p.collect(maxValues(opt.Params, opt.Variadic)))

	r := p.result(arg, validity(ok))
	r.option = opt
	r.Values = values
	p.push(r)
}

func validity(ok bool) Validity {
	if ok {
		return Valid
	}

	return NotEnoughValues
}

// lookup resolves an option token against the active scopes, innermost
// first. Without inheritance only the current scope is searched.
func (p *parser) lookup(arg modArgument) *Option {
	name := arg.name()

	for i := len(p.scope) - 1; i >= 0; i-- {
		var (
			c   = p.scope[i]
			opt *Option
		)

		switch arg.kind {
		case KindShortOption:
			r, _ := utf8.DecodeRuneInString(name)
			opt = c.FindShort(r, false)

		case KindLongOption:
			opt = c.FindLong(name, false)

		case KindSwitch:
			if r, n := utf8.DecodeRuneInString(name); n == len(name) {
				opt = c.FindShort(r, p.cfg.fold)
			}

			if opt == nil {
				opt = c.FindLong(name, p.cfg.fold)
			}
		}

		if opt != nil {
			return opt
		}

		if !p.cfg.inherit {
			break
		}
	}

	return nil
}

func (p *parser) regular(arg modArgument) {
	cur := p.current()

	// An inline value reaches here only when its option took no value.
	if arg.inline {
		p.emit(arg, UnrecognizedOption)

		return
	}

	if p.tree {
		if child := cur.Lookup(arg.text); child != nil {
			p.descend(arg, child)

			return
		}
	}

	if p.fill(arg) {
		return
	}

	if p.tree && len(cur.Commands) > 0 {
		p.emit(arg, UnrecognizedCommand)

		return
	}

	p.emit(arg, Valid)
}

// descend enters child, collecting its positional values from the tokens
// that immediately follow its name.
func (p *parser) descend(arg modArgument, child *Command) {
	p.scope = append(p.scope, child)

	raw := p.collect(child.MaxValues())
	values, ok := complete(child.Params, child.Defaults, child.Variadic, raw)

	r := p.result(arg, validity(ok))
	r.command = child
	r.Values = values

	p.slots = append(p.slots, slot{result: len(p.out), values: raw})
	p.push(r)
}

// fill gives arg to the current scope's positional slots if they have room.
// A subcommand's result is updated in place; a root value is emitted as an
// unbound positional.
func (p *parser) fill(arg modArgument) bool {
	var (
		cur = p.current()
		s   = &p.slots[len(p.slots)-1]
	)

	if limit := cur.MaxValues(); limit >= 0 && len(s.values) >= limit {
		return false
	}

	s.values = append(s.values, arg.text)

	if s.result < 0 {
		p.emit(arg, Valid)

		return true
	}

	values, ok := complete(cur.Params, cur.Defaults, cur.Variadic, s.values)

	r := &p.out[s.result]
	r.Values = values
	r.Validity = validity(ok)

	p.cfg.logger.Trace("argv slot value",
		slog.String("command", cur.Name),
		slog.String("value", arg.text),
		slog.Int("pos", arg.pos),
	)

	return true
}

// collect consumes up to limit values (unbounded if negative) from the
// working set.
func (p *parser) collect(limit int) []string {
	var values []string

	for p.next < len(p.args) && (limit < 0 || len(values) < limit) {
		if !p.isValue(p.args[p.next]) {
			break
		}

		values = append(values, p.args[p.next].text)
		p.next++
	}

	return values
}

// complete applies defaults to the values received for a parameter list and
// reports whether there are enough. Missing trailing values of a
// non-variadic list are filled from defaults.
func complete(params, defaults []string, variadic Variadicity, values []string) ([]string, bool) {
	if variadic.IsVariadic() {
		return values, len(values) >= minValues(params, defaults, variadic)
	}

	if missing := len(params) - len(values); missing > 0 && missing <= len(defaults) {
		values = append(values[:len(values):len(values)], defaults[len(defaults)-missing:]...)
	}

	return values, len(values) >= len(params)
}

// isValue reports whether arg may be consumed as an option or command value.
// A regular argument naming a subcommand of the current scope ends the run.
func (p *parser) isValue(arg modArgument) bool {
	switch {
	case arg.inline:
		return true

	case arg.literal:
		return false
	}

	switch arg.kind {
	case KindEmpty, KindSingleHyphen:
		return true

	case KindRegular:
		return !p.tree || p.current().Lookup(arg.text) == nil
	}

	return false
}

// checkRoot appends a synthetic result naming the first root parameter that
// received no value, if the root's slots are short.
func (p *parser) checkRoot() {
	root, got := p.scope[0], p.slots[0].values
	if len(root.Params) == 0 {
		return
	}

	if _, ok := complete(root.Params, root.Defaults, root.Variadic, got); ok {
		return
	}

	name := root.Params[min(len(got), len(root.Params)-1)]

	p.push(Result{
		Text:     name,
		Kind:     KindRegular,
		Validity: NotEnoughValues,
		Pos:      -1,
		scope:    p.scope[:1:1],
	})
}

// checkRequired appends a synthetic result for each required option of a
// visited scope that was never matched.
func (p *parser) checkRequired() {
	for _, c := range p.scope {
		for i := range c.Options {
			opt := &c.Options[i]
			if !opt.Required {
				continue
			}

			if _, ok := p.matched[opt]; ok {
				continue
			}

			kind, text := KindLongOption, "--"+opt.Name()
			if opt.Long == "" && len(opt.Aliases) == 0 {
				kind, text = KindShortOption, "-"+string(opt.Short)
			}

			p.push(Result{
				Text:     text,
				Kind:     kind,
				Validity: NotEnoughValues,
				Pos:      -1,
				option:   opt,
				scope:    p.scope[:len(p.scope):len(p.scope)],
			})
		}
	}
}
