package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/manifest"
	"github.com/ardnew/argot/pkg"
)

func TestParseText(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	p := &Parse{Output: "text", Tokens: []string{"-v", "build", "--target", "x86", "pkg"}}
	require.NoError(t, p.Run(ctx))

	want := strings.Join([]string{
		"0  -v        short_option      valid  option=verbose",
		"1  build     regular_argument  valid  command=build  values=[pkg]",
		"2  --target  long_option       valid  option=target  values=[x86]",
		"",
	}, "\n")

	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("text output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	p := &Parse{Output: "json", Tokens: []string{"build", "--target=arm"}}
	require.NoError(t, p.Run(ctx))

	var got []record
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "build", got[0].Command)
	assert.Equal(t, []string{"tool", "build"}, got[0].Scope)
	assert.Equal(t, "target", got[1].Option)
	assert.Equal(t, "long_option", got[1].Kind)
	assert.Equal(t, []string{"arm"}, got[1].Values)
	assert.Equal(t, []string{"tool", "build"}, got[1].Scope)
}

func TestParseYAML(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	p := &Parse{Output: "yaml", Tokens: []string{"run", "prog", "a", "b"}}
	require.NoError(t, p.Run(ctx))

	var got []record
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)

	assert.Equal(t, "run", got[0].Command)
	assert.Equal(t, []string{"prog", "a", "b"}, got[0].Values)
}

func TestParseInvalid(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	p := &Parse{Output: "text", Suggest: true, Tokens: []string{"--verbos", "bild"}}
	err := p.Run(ctx)
	require.ErrorIs(t, err, ErrInvalidArguments)

	text := out.String()
	assert.Contains(t, text, "unrecognized_option")
	assert.Contains(t, text, "did you mean: --verbose")
	assert.Contains(t, text, "unrecognized_subcommand")
	assert.Contains(t, text, "did you mean: build")
}

func TestParseRequired(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	p := &Parse{Output: "text", Tokens: []string{"build"}}
	require.ErrorIs(t, p.Run(ctx), ErrInvalidArguments)
	assert.Contains(t, out.String(), "-  --target  long_option       not_enough_values  option=target")

	out.Reset()

	p.NoRequired = true
	require.NoError(t, p.Run(ctx))
	assert.NotContains(t, out.String(), "--target")
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"all", "", []string{"-v", "build", "--jobs", "x"}},
		{"options", `kind endsWith "_option"`, []string{"-v", "--jobs"}},
		{"by_name", `name == "jobs"`, []string{"--jobs"}},
		{"values", `len(values) > 0`, []string{"build", "--jobs"}},
		{"positionals", `option == "" && command == ""`, []string{"x"}},
		{"literal", `literal`, []string{"x"}},
		{"none", `pos < 0`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

			p := &Parse{
				Output:     "json",
				Filter:     tt.filter,
				NoRequired: true,
				Tokens:     []string{"-v", "build", "pkg", "--jobs", "4", "--", "x"},
			}
			require.NoError(t, p.Run(ctx))

			var got []record
			require.NoError(t, json.Unmarshal(out.Bytes(), &got))

			var texts []string
			for _, r := range got {
				texts = append(texts, r.Text)
			}

			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestParseSeparator(t *testing.T) {
	ctx, out := testContext(t, writeManifest(t, "tool.yaml"))

	p := &Parse{Output: "json", Tokens: []string{"--", "build", "--target", "x86", "--", "-x"}}
	require.NoError(t, p.Run(ctx))

	var got []record
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "build", got[0].Command)
	assert.Equal(t, "target", got[1].Option)
	assert.Equal(t, "-x", got[2].Text)
	assert.True(t, got[2].Literal)

	out.Reset()

	p = &Parse{Output: "text", Tokens: []string{"--", "build"}}
	require.ErrorIs(t, p.Run(ctx), ErrInvalidArguments)
	assert.Contains(t, out.String(), "not_enough_values")
}

func TestPassthrough(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"none", nil, nil},
		{"no_separator", []string{"build"}, []string{"build"}},
		{"separator", []string{"--", "-v"}, []string{"-v"}},
		{"only_first", []string{"--", "--", "x"}, []string{"--", "x"}},
		{"later", []string{"x", "--"}, []string{"x", "--"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, passthrough(tt.tokens))
		})
	}
}

func TestParseFilterErrors(t *testing.T) {
	_, err := compileFilter("pos +")
	require.ErrorIs(t, err, pkg.ErrInvalidFilter)

	_, err = compileFilter(`kind`)
	require.ErrorIs(t, err, pkg.ErrInvalidFilter, "non-boolean result")

	_, err = compileFilter("unknown_var")
	require.ErrorIs(t, err, pkg.ErrInvalidFilter)
}

func TestParseOutputFormat(t *testing.T) {
	ctx, _ := testContext(t, writeManifest(t, "tool.yaml"))

	p := &Parse{Output: "toml"}
	require.ErrorIs(t, p.Run(ctx), pkg.ErrInvalidFormat)
}

func TestParseOptions(t *testing.T) {
	root := manifest.Example()

	tests := []struct {
		name   string
		parse  Parse
		tokens []string
		want   argv.Validity
	}{
		{"inherit", Parse{NoRequired: true}, []string{"build", "-v"}, argv.Valid},
		{"no_inherit", Parse{NoRequired: true, NoInherit: true}, []string{"build", "-v"}, argv.UnrecognizedOption},
		{"fold", Parse{NoRequired: true}, []string{"/VERBOSE"}, argv.Valid},
		{"case_sensitive", Parse{NoRequired: true, CaseSensitive: true}, []string{"/VERBOSE"}, argv.UnrecognizedOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := argv.Parse(tt.tokens, root, tt.parse.options()...)
			assert.Equal(t, tt.want, rs[len(rs)-1].Validity)
		})
	}

	rs := argv.Parse([]string{"/verbose"}, root, (&Parse{NoSwitches: true}).options()...)
	require.Len(t, rs, 1)
	assert.Equal(t, argv.KindRegular, rs[0].Kind)
}
