package argv

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// summary is the exported projection of a Result compared by these tests.
type summary struct {
	Text     string
	Kind     Kind
	Validity Validity
	Pos      int
	Values   []string
	Name     string
	Literal  bool
}

func summarize(rs Results) []summary {
	out := make([]summary, 0, len(rs))

	for _, r := range rs {
		s := summary{
			Text:     r.Text,
			Kind:     r.Kind,
			Validity: r.Validity,
			Pos:      r.Pos,
			Values:   r.Values,
			Literal:  r.Literal,
		}

		if r.Match() != MatchNone {
			s.Name = r.Name()
		}

		out = append(out, s)
	}

	return out
}

func testTree() *Command {
	return &Command{
		Options: []Option{
			{Short: 'v', Long: "verbose", Description: "Print more"},
			{Short: 'a', Long: "all"},
			{Short: 'b'},
			{Long: "foo", Params: []string{"VALUE"}},
			{Long: "count", Params: []string{"N"}},
			{Short: 'o', Long: "output", Aliases: []string{"out-file"}, Params: []string{"FILE"}},
			{Long: "include", Params: []string{"DIR"}, Variadic: OneOrMore},
			{Long: "tag", Params: []string{"TAG"}, Variadic: ZeroOrMore},
			{Long: "range", Params: []string{"LO", "HI"}, Defaults: []string{"10"}},
		},
		Commands: []Command{
			{
				Name:    "build",
				Aliases: []string{"b"},
				Options: []Option{
					{Long: "target", Params: []string{"TRIPLE"}},
					{Long: "profile", Params: []string{"NAME"}, Required: true},
				},
			},
			{
				Name:   "run",
				Params: []string{"PROGRAM"},
				Commands: []Command{
					{Name: "now"},
				},
			},
		},
	}
}

func flagOptions() []Option {
	return []Option{
		{Short: 'a', Long: "all"},
		{Short: 'b', Long: "brief"},
		{Short: 'v', Long: "verbose"},
		{Short: 'o', Long: "output", Params: []string{"FILE"}},
	}
}

var diffOpts = cmp.Options{cmpopts.EquateEmpty()}

func TestParse(t *testing.T) {
	noRequired := []ParseOption{WithRequiredCheck(false)}

	tests := []struct {
		name   string
		tokens []string
		opts   []ParseOption
		want   []summary
	}{
		{
			name:   "long option with value",
			tokens: []string{"--foo", "bar"},
			want: []summary{
				{Text: "--foo", Kind: KindLongOption, Validity: Valid, Pos: 0, Values: []string{"bar"}, Name: "foo"},
			},
		},
		{
			name:   "inline value",
			tokens: []string{"--foo=bar"},
			want: []summary{
				{Text: "--foo", Kind: KindLongOption, Validity: Valid, Pos: 0, Values: []string{"bar"}, Name: "foo"},
			},
		},
		{
			name:   "missing value at end",
			tokens: []string{"--count"},
			want: []summary{
				{Text: "--count", Kind: KindLongOption, Validity: NotEnoughValues, Pos: 0, Name: "count"},
			},
		},
		{
			name:   "option does not consume option",
			tokens: []string{"--count", "--verbose"},
			want: []summary{
				{Text: "--count", Kind: KindLongOption, Validity: NotEnoughValues, Pos: 0, Name: "count"},
				{Text: "--verbose", Kind: KindLongOption, Validity: Valid, Pos: 1, Name: "verbose"},
			},
		},
		{
			name:   "negative number is a value",
			tokens: []string{"--count", "-5"},
			want: []summary{
				{Text: "--count", Kind: KindLongOption, Validity: Valid, Pos: 0, Values: []string{"-5"}, Name: "count"},
			},
		},
		{
			name:   "single hyphen is a value",
			tokens: []string{"-o", "-"},
			want: []summary{
				{Text: "-o", Kind: KindShortOption, Validity: Valid, Pos: 0, Values: []string{"-"}, Name: "output"},
			},
		},
		{
			name:   "alias",
			tokens: []string{"--out-file", "x"},
			want: []summary{
				{Text: "--out-file", Kind: KindLongOption, Validity: Valid, Pos: 0, Values: []string{"x"}, Name: "output"},
			},
		},
		{
			name:   "unknown option tolerated",
			tokens: []string{"--bogus", "-v"},
			want: []summary{
				{Text: "--bogus", Kind: KindLongOption, Validity: UnrecognizedOption, Pos: 0},
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 1, Name: "verbose"},
			},
		},
		{
			name:   "malformed option",
			tokens: []string{"-n5"},
			want: []summary{
				{Text: "-n5", Kind: KindUnknown, Validity: UnrecognizedOption, Pos: 0},
			},
		},
		{
			name:   "cluster with trailing value option",
			tokens: []string{"-vo", "file"},
			want: []summary{
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 0, Name: "verbose"},
				{Text: "-o", Kind: KindShortOption, Validity: Valid, Pos: 0, Values: []string{"file"}, Name: "output"},
			},
		},
		{
			name:   "defaults fill from the back",
			tokens: []string{"--range", "1"},
			want: []summary{
				{Text: "--range", Kind: KindLongOption, Validity: Valid, Pos: 0, Values: []string{"1", "10"}, Name: "range"},
			},
		},
		{
			name:   "defaults cannot cover every parameter",
			tokens: []string{"--range"},
			want: []summary{
				{Text: "--range", Kind: KindLongOption, Validity: NotEnoughValues, Pos: 0, Name: "range"},
			},
		},
		{
			name:   "one or more",
			tokens: []string{"--include", "a", "b", "c"},
			want: []summary{
				{Text: "--include", Kind: KindLongOption, Validity: Valid, Pos: 0, Values: []string{"a", "b", "c"}, Name: "include"},
			},
		},
		{
			name:   "one or more without values",
			tokens: []string{"--include"},
			want: []summary{
				{Text: "--include", Kind: KindLongOption, Validity: NotEnoughValues, Pos: 0, Name: "include"},
			},
		},
		{
			name:   "zero or more without values",
			tokens: []string{"--tag", "--verbose"},
			want: []summary{
				{Text: "--tag", Kind: KindLongOption, Validity: Valid, Pos: 0, Name: "tag"},
				{Text: "--verbose", Kind: KindLongOption, Validity: Valid, Pos: 1, Name: "verbose"},
			},
		},
		{
			name:   "subcommand stops variadic values",
			tokens: []string{"--include", "a", "run", "prog"},
			want: []summary{
				{Text: "--include", Kind: KindLongOption, Validity: Valid, Pos: 0, Values: []string{"a"}, Name: "include"},
				{Text: "run", Kind: KindRegular, Validity: Valid, Pos: 2, Values: []string{"prog"}, Name: "run"},
			},
		},
		{
			name:   "subcommand option",
			tokens: []string{"build", "--target", "x86", "--profile", "release"},
			want: []summary{
				{Text: "build", Kind: KindRegular, Validity: Valid, Pos: 0, Name: "build"},
				{Text: "--target", Kind: KindLongOption, Validity: Valid, Pos: 1, Values: []string{"x86"}, Name: "target"},
				{Text: "--profile", Kind: KindLongOption, Validity: Valid, Pos: 3, Values: []string{"release"}, Name: "profile"},
			},
		},
		{
			name:   "subcommand alias",
			tokens: []string{"b", "--profile", "dev"},
			want: []summary{
				{Text: "b", Kind: KindRegular, Validity: Valid, Pos: 0, Name: "build"},
				{Text: "--profile", Kind: KindLongOption, Validity: Valid, Pos: 1, Values: []string{"dev"}, Name: "profile"},
			},
		},
		{
			name:   "command parameter missing",
			tokens: []string{"run"},
			want: []summary{
				{Text: "run", Kind: KindRegular, Validity: NotEnoughValues, Pos: 0, Name: "run"},
			},
		},
		{
			name:   "command parameter then nested subcommand",
			tokens: []string{"run", "prog", "now"},
			want: []summary{
				{Text: "run", Kind: KindRegular, Validity: Valid, Pos: 0, Values: []string{"prog"}, Name: "run"},
				{Text: "now", Kind: KindRegular, Validity: Valid, Pos: 2, Name: "now"},
			},
		},
		{
			name:   "unknown subcommand",
			tokens: []string{"deploy"},
			want: []summary{
				{Text: "deploy", Kind: KindRegular, Validity: UnrecognizedCommand, Pos: 0},
			},
		},
		{
			name:   "inherited option",
			tokens: []string{"build", "-v", "--profile", "p"},
			want: []summary{
				{Text: "build", Kind: KindRegular, Validity: Valid, Pos: 0, Name: "build"},
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 1, Name: "verbose"},
				{Text: "--profile", Kind: KindLongOption, Validity: Valid, Pos: 2, Values: []string{"p"}, Name: "profile"},
			},
		},
		{
			name:   "strict scoping",
			tokens: []string{"build", "-v"},
			opts:   []ParseOption{WithInheritance(false), WithRequiredCheck(false)},
			want: []summary{
				{Text: "build", Kind: KindRegular, Validity: Valid, Pos: 0, Name: "build"},
				{Text: "-v", Kind: KindShortOption, Validity: UnrecognizedOption, Pos: 1},
			},
		},
		{
			name:   "terminator",
			tokens: []string{"--", "-v", "build"},
			want: []summary{
				{Text: "-v", Kind: KindRegular, Validity: Valid, Pos: 1, Literal: true},
				{Text: "build", Kind: KindRegular, Validity: Valid, Pos: 2, Literal: true},
			},
		},
		{
			name:   "terminator ends value collection",
			tokens: []string{"--tag", "--", "x"},
			want: []summary{
				{Text: "--tag", Kind: KindLongOption, Validity: Valid, Pos: 0, Name: "tag"},
				{Text: "x", Kind: KindRegular, Validity: Valid, Pos: 2, Literal: true},
			},
		},
		{
			name:   "switch folds case",
			tokens: []string{"/V", "/VERBOSE"},
			want: []summary{
				{Text: "/V", Kind: KindSwitch, Validity: Valid, Pos: 0, Name: "verbose"},
				{Text: "/VERBOSE", Kind: KindSwitch, Validity: Valid, Pos: 1, Name: "verbose"},
			},
		},
		{
			name:   "switch exact case",
			tokens: []string{"/V"},
			opts:   []ParseOption{WithFoldSwitches(false)},
			want: []summary{
				{Text: "/V", Kind: KindSwitch, Validity: UnrecognizedOption, Pos: 0},
			},
		},
		{
			name:   "switch with inline value",
			tokens: []string{"/output:file.txt"},
			want: []summary{
				{Text: "/output", Kind: KindSwitch, Validity: Valid, Pos: 0, Values: []string{"file.txt"}, Name: "output"},
			},
		},
		{
			name:   "switches disabled",
			tokens: []string{"run", "/v"},
			opts:   []ParseOption{WithSwitches(false)},
			want: []summary{
				{Text: "run", Kind: KindRegular, Validity: Valid, Pos: 0, Values: []string{"/v"}, Name: "run"},
			},
		},
		{
			name:   "required option reported",
			tokens: []string{"build"},
			want: []summary{
				{Text: "build", Kind: KindRegular, Validity: Valid, Pos: 0, Name: "build"},
				{Text: "--profile", Kind: KindLongOption, Validity: NotEnoughValues, Pos: -1, Name: "profile"},
			},
		},
		{
			name:   "required check disabled",
			tokens: []string{"build"},
			opts:   noRequired,
			want: []summary{
				{Text: "build", Kind: KindRegular, Validity: Valid, Pos: 0, Name: "build"},
			},
		},
		{
			name:   "required option of unvisited scope",
			tokens: []string{"-v"},
			want: []summary{
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 0, Name: "verbose"},
			},
		},
		{
			name:   "empty input",
			tokens: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(Parse(tt.tokens, testTree(), tt.opts...))
			if diff := cmp.Diff(tt.want, got, diffOpts); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []summary
	}{
		{
			name:   "cluster shares position",
			tokens: []string{"-ab"},
			want: []summary{
				{Text: "-a", Kind: KindShortOption, Validity: Valid, Pos: 0, Name: "all"},
				{Text: "-b", Kind: KindShortOption, Validity: Valid, Pos: 0, Name: "brief"},
			},
		},
		{
			name:   "positionals",
			tokens: []string{"x", "-v", "y"},
			want: []summary{
				{Text: "x", Kind: KindRegular, Validity: Valid, Pos: 0},
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 1, Name: "verbose"},
				{Text: "y", Kind: KindRegular, Validity: Valid, Pos: 2},
			},
		},
		{
			name:   "value for a flag is unrecognized",
			tokens: []string{"--verbose=yes", "-a=1"},
			want: []summary{
				{Text: "--verbose", Kind: KindLongOption, Validity: Valid, Pos: 0, Name: "verbose"},
				{Text: "yes", Kind: KindRegular, Validity: UnrecognizedOption, Pos: 0},
				{Text: "-a", Kind: KindShortOption, Validity: Valid, Pos: 1, Name: "all"},
				{Text: "1", Kind: KindRegular, Validity: UnrecognizedOption, Pos: 1},
			},
		},
		{
			name:   "empty token",
			tokens: []string{""},
			want: []summary{
				{Text: "", Kind: KindEmpty, Validity: Valid, Pos: 0},
			},
		},
		{
			name:   "path positional",
			tokens: []string{"/usr/bin"},
			want: []summary{
				{Text: "/usr/bin", Kind: KindRegular, Validity: Valid, Pos: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(ParseOptions(tt.tokens, flagOptions()))
			if diff := cmp.Diff(tt.want, got, diffOpts); diff != "" {
				t.Errorf("ParseOptions(%q) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}

func slotTree() *Command {
	return &Command{
		Params:  []string{"FILE"},
		Options: []Option{{Short: 'v', Long: "verbose"}},
		Commands: []Command{
			{Name: "build"},
			{
				Name:     "run",
				Params:   []string{"PROGRAM", "ARGS"},
				Variadic: ZeroOrMore,
				Commands: []Command{{Name: "watch"}},
			},
			{
				Name:     "copy",
				Params:   []string{"SRC", "DST"},
				Defaults: []string{"."},
			},
		},
	}
}

func TestParseSlots(t *testing.T) {
	missingFile := summary{Text: "FILE", Kind: KindRegular, Validity: NotEnoughValues, Pos: -1}

	tests := []struct {
		name   string
		tokens []string
		opts   []ParseOption
		want   []summary
	}{
		{
			name:   "root parameter",
			tokens: []string{"main.go"},
			want: []summary{
				{Text: "main.go", Kind: KindRegular, Validity: Valid, Pos: 0},
			},
		},
		{
			name:   "root parameter missing",
			tokens: nil,
			want:   []summary{missingFile},
		},
		{
			name:   "root parameter missing without check",
			tokens: nil,
			opts:   []ParseOption{WithRequiredCheck(false)},
			want:   nil,
		},
		{
			name:   "root parameter after option",
			tokens: []string{"-v", "main.go"},
			want: []summary{
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 0, Name: "verbose"},
				{Text: "main.go", Kind: KindRegular, Validity: Valid, Pos: 1},
			},
		},
		{
			name:   "root slot full",
			tokens: []string{"main.go", "extra"},
			want: []summary{
				{Text: "main.go", Kind: KindRegular, Validity: Valid, Pos: 0},
				{Text: "extra", Kind: KindRegular, Validity: UnrecognizedCommand, Pos: 1},
			},
		},
		{
			name:   "variadic slot continues after option",
			tokens: []string{"main.go", "run", "prog", "-v", "extra"},
			want: []summary{
				{Text: "main.go", Kind: KindRegular, Validity: Valid, Pos: 0},
				{Text: "run", Kind: KindRegular, Validity: Valid, Pos: 1, Values: []string{"prog", "extra"}, Name: "run"},
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 3, Name: "verbose"},
			},
		},
		{
			name:   "late value satisfies command",
			tokens: []string{"main.go", "run", "-v", "prog"},
			want: []summary{
				{Text: "main.go", Kind: KindRegular, Validity: Valid, Pos: 0},
				{Text: "run", Kind: KindRegular, Validity: Valid, Pos: 1, Values: []string{"prog"}, Name: "run"},
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 2, Name: "verbose"},
			},
		},
		{
			name:   "command value still missing",
			tokens: []string{"main.go", "run", "-v"},
			want: []summary{
				{Text: "main.go", Kind: KindRegular, Validity: Valid, Pos: 0},
				{Text: "run", Kind: KindRegular, Validity: NotEnoughValues, Pos: 1, Name: "run"},
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 2, Name: "verbose"},
			},
		},
		{
			name:   "late value replaces default",
			tokens: []string{"main.go", "copy", "a", "-v", "b"},
			want: []summary{
				{Text: "main.go", Kind: KindRegular, Validity: Valid, Pos: 0},
				{Text: "copy", Kind: KindRegular, Validity: Valid, Pos: 1, Values: []string{"a", "b"}, Name: "copy"},
				{Text: "-v", Kind: KindShortOption, Validity: Valid, Pos: 3, Name: "verbose"},
			},
		},
		{
			name:   "subcommand without slot reports root slot",
			tokens: []string{"build"},
			want: []summary{
				{Text: "build", Kind: KindRegular, Validity: Valid, Pos: 0, Name: "build"},
				missingFile,
			},
		},
		{
			name:   "single hyphen fills slot",
			tokens: []string{"-"},
			want: []summary{
				{Text: "-", Kind: KindSingleHyphen, Validity: Valid, Pos: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(Parse(tt.tokens, slotTree(), tt.opts...))
			if diff := cmp.Diff(tt.want, got, diffOpts); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}

func TestParseSlotsDoNotShareDefaults(t *testing.T) {
	root := slotTree()

	first := Parse([]string{"x", "copy", "a"}, root)
	second := Parse([]string{"x", "copy", "a", "b"}, root)

	assert.Equal(t, []string{"a", "."}, first[1].Values)
	assert.Equal(t, []string{"a", "b"}, second[1].Values)
	assert.Equal(t, []string{"."}, root.Commands[2].Defaults)
}

func TestParseOffsets(t *testing.T) {
	rs := ParseOptions([]string{"-ab", "--output=f.txt", "/v"}, flagOptions())
	require.Len(t, rs, 4)

	type span struct {
		Offset, Size int
		Sub          string
	}

	var got []span
	for _, r := range rs {
		got = append(got, span{r.Offset, r.Size, r.Token[r.Offset : r.Offset+r.Size]})
	}

	want := []span{
		{1, 1, "a"},
		{2, 1, "b"},
		{2, 6, "output"},
		{1, 1, "v"},
	}

	assert.Equal(t, want, got)
	assert.Equal(t, []string{"f.txt"}, rs[2].Values)

	// An inline value nobody consumes is reported at its own span.
	rs = ParseOptions([]string{"--all=yes"}, flagOptions())
	require.Len(t, rs, 2)
	assert.Equal(t, "yes", rs[1].Token[rs[1].Offset:rs[1].Offset+rs[1].Size])
}

func TestParseShadowing(t *testing.T) {
	root := &Command{
		Options: []Option{{Short: 'v', Long: "verbose"}},
		Commands: []Command{{
			Name:    "check",
			Options: []Option{{Short: 'v', Long: "vet"}},
		}},
	}

	rs := Parse([]string{"-v", "check", "-v"}, root)
	require.Len(t, rs, 3)
	assert.Equal(t, "verbose", rs[0].Name())
	assert.Equal(t, "vet", rs[2].Name())
	assert.Same(t, &root.Commands[0].Options[0], rs[2].Option())
}

func TestParseInvariants(t *testing.T) {
	inputs := [][]string{
		{"--foo", "bar", "-vab", "build", "--target=x", "--", "-x"},
		{"run", "p", "now", "--bogus", "/?", "-n5", ""},
		{"-", "--count", "-", "---", "/a/b", "b"},
	}

	for _, tokens := range inputs {
		rs := Parse(tokens, testTree())

		t.Run("ordered", func(t *testing.T) {
			positions := make([]int, 0, len(rs))
			for _, r := range rs {
				if !r.Synthetic() {
					positions = append(positions, r.Pos)
				}
			}

			assert.True(t, slices.IsSorted(positions), "positions %v", positions)
		})

		t.Run("bound results", func(t *testing.T) {
			for _, r := range rs {
				assert.False(t, r.Option() != nil && r.Command() != nil, "result %q bound twice", r.Text)
				assert.NotEmpty(t, r.Scope())
				assert.Same(t, rs[0].Scope()[0], r.Scope()[0])
			}
		})

		t.Run("tokens accounted", func(t *testing.T) {
			seen := make(map[int]bool)
			for _, r := range rs {
				seen[r.Pos] = true
			}

			for pos, tok := range tokens {
				if tok == "--" {
					continue
				}

				if !seen[pos] {
					// consumed as a value of an earlier result
					assert.True(t, slices.ContainsFunc(rs, func(r Result) bool {
						return r.Pos < pos && slices.Contains(r.Values, tok)
					}), "token %d %q missing from results", pos, tok)
				}
			}
		})
	}
}

func TestParseDoesNotMutateTemplates(t *testing.T) {
	root := testTree()
	before := testTree()

	Parse([]string{"build", "--target", "x", "--range", "1", "run", "p"}, root)

	assert.Equal(t, before, root)
}

func TestResults(t *testing.T) {
	rs := Parse([]string{"-v", "--tag", "a", "b", "--tag", "c", "--bogus", "run", "p"}, testTree())

	assert.False(t, rs.Valid())
	assert.True(t, rs.Has("v"))
	assert.True(t, rs.Has("verbose"))
	assert.False(t, rs.Has("all"))
	assert.Equal(t, []string{"a", "b", "c"}, rs.Values("tag"))

	var invalid []string
	for r := range rs.Invalid() {
		invalid = append(invalid, r.Text)
	}

	assert.Equal(t, []string{"--bogus"}, invalid)

	cmds := rs.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "run", cmds[0].Name)

	rs = ParseOptions([]string{"x", "-v", "y", "--", "-z"}, flagOptions())
	assert.True(t, rs.Valid())
	assert.Equal(t, []string{"x", "y", "-z"}, rs.Positionals())
}
