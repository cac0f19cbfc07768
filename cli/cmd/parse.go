package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/log"
	"github.com/ardnew/argot/pkg"
	"github.com/ardnew/argot/text"
)

// Parse classifies and parses tokens against the manifest's template tree.
type Parse struct {
	Output        string   `default:"text" enum:"text,json,yaml" help:"Output format (${enum})."                           short:"o"`
	Filter        string   `                                     help:"Print only results for which EXPR is true."          short:"f" placeholder:"EXPR"`
	Suggest       bool     `                                     help:"Suggest names for unrecognized options and commands." short:"s"`
	NoInherit     bool     `                                     help:"Match options only in the scope that declares them."`
	CaseSensitive bool     `                                     help:"Match switch names case-sensitively."`
	NoSwitches    bool     `                                     help:"Treat switch-shaped tokens as regular arguments."`
	NoRequired    bool     `                                     help:"Do not report missing required options."`
	Tokens        []string `arg:"" optional:"" passthrough:""    help:"Tokens to parse (precede with -- if the first begins with a dash)."`
}

// suggestLimit bounds the suggestions printed per result.
const suggestLimit = 3

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	root, _, err := loadTemplates(ctx)
	if err != nil {
		return err
	}

	filter, err := compileFilter(p.Filter)
	if err != nil {
		return err
	}

	rs := argv.Parse(passthrough(p.Tokens), root, p.options()...)

	var out []record

	for _, r := range rs {
		keep, err := filter.match(r)
		if err != nil {
			return err
		}

		if !keep {
			continue
		}

		rec := makeRecord(r)
		if p.Suggest {
			rec.Suggestions = argv.Suggest(r, suggestLimit)
		}

		out = append(out, rec)
	}

	if err := writeRecords(ctx, outputFrom(ctx), p.Output, out); err != nil {
		return err
	}

	if !rs.Valid() {
		var invalid int
		for range rs.Invalid() {
			invalid++
		}

		return ErrInvalidArguments.With(
			slog.Int("results", len(rs)),
			slog.Int("invalid", invalid),
		)
	}

	return nil
}

func (p *Parse) options() []argv.ParseOption {
	return []argv.ParseOption{
		argv.WithLogger(log.Default()),
		argv.WithInheritance(!p.NoInherit),
		argv.WithFoldSwitches(!p.CaseSensitive),
		argv.WithSwitches(!p.NoSwitches),
		argv.WithRequiredCheck(!p.NoRequired),
	}
}

// record is the serialized form of one [argv.Result].
type record struct {
	Token       string   `json:"token"                 yaml:"token"`
	Text        string   `json:"text"                  yaml:"text"`
	Kind        string   `json:"kind"                  yaml:"kind"`
	Validity    string   `json:"validity"              yaml:"validity"`
	Pos         int      `json:"pos"                   yaml:"pos"`
	Offset      int      `json:"offset"                yaml:"offset"`
	Size        int      `json:"size"                  yaml:"size"`
	Option      string   `json:"option,omitempty"      yaml:"option,omitempty"`
	Command     string   `json:"command,omitempty"     yaml:"command,omitempty"`
	Scope       []string `json:"scope,omitempty"       yaml:"scope,omitempty,flow"`
	Values      []string `json:"values,omitempty"      yaml:"values,omitempty,flow"`
	Literal     bool     `json:"literal,omitempty"     yaml:"literal,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty,flow"`
}

func makeRecord(r argv.Result) record {
	rec := record{
		Token:    r.Token,
		Text:     r.Text,
		Kind:     r.Kind.String(),
		Validity: r.Validity.String(),
		Pos:      r.Pos,
		Offset:   r.Offset,
		Size:     r.Size,
		Values:   r.Values,
		Literal:  r.Literal,
	}

	switch r.Match() {
	case argv.MatchOption:
		rec.Option = r.Name()
	case argv.MatchCommand:
		rec.Command = r.Name()
	}

	for _, c := range r.Scope() {
		rec.Scope = append(rec.Scope, c.Name)
	}

	return rec
}

func writeRecords(ctx context.Context, w io.Writer, format string, recs []record) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return pkg.ErrJSONMarshal.Wrap(err)
		}

		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return pkg.ErrWriteOutput.Wrap(err)
		}

	case "yaml":
		data, err := yaml.MarshalContext(ctx, recs, yaml.Indent(2), yaml.IndentSequence(true))
		if err != nil {
			return pkg.ErrYAMLMarshal.Wrap(err)
		}

		if _, err := w.Write(data); err != nil {
			return pkg.ErrWriteOutput.Wrap(err)
		}

	case "text", "":
		if _, err := io.WriteString(w, textRecords(recs)); err != nil {
			return pkg.ErrWriteOutput.Wrap(err)
		}

	default:
		return pkg.ErrInvalidFormat.Wrapf("%q (expected text, json or yaml)", format)
	}

	return nil
}

// textRecords renders one aligned row per record:
//
//	POS  TEXT  KIND  VALIDITY  BINDING  VALUES
//
// followed by an indented suggestion line where suggestions exist.
func textRecords(recs []record) string {
	rows := make([][]string, len(recs))
	widths := make([]int, 4)

	for i, rec := range recs {
		pos := strconv.Itoa(rec.Pos)
		if rec.Pos < 0 {
			pos = "-"
		}

		rows[i] = []string{pos, rec.Text, rec.Kind, rec.Validity}

		for j, cell := range rows[i] {
			widths[j] = max(widths[j], text.Measure(cell).Width())
		}
	}

	var sb strings.Builder

	for i, rec := range recs {
		var line text.Measured

		for j, cell := range rows[i] {
			pad := text.Padding{Width: widths[j]}
			if j == 0 {
				pad.Align = text.AlignRight
			}

			if j > 0 {
				line = line.Append(text.Measure("  "))
			}

			line = line.Append(pad.Pad(text.Measure(cell)))
		}

		switch {
		case rec.Option != "":
			line = line.Append(text.Measure("  option=" + rec.Option))
		case rec.Command != "":
			line = line.Append(text.Measure("  command=" + rec.Command))
		}

		if len(rec.Values) > 0 {
			line = line.Append(text.Measure("  values=[" + strings.Join(rec.Values, " ") + "]"))
		}

		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')

		if len(rec.Suggestions) > 0 {
			sb.WriteString("    did you mean: " + strings.Join(rec.Suggestions, ", ") + "?\n")
		}
	}

	return sb.String()
}

// filter selects results with a compiled boolean expression. The zero value
// selects everything.
type filter struct {
	source  string
	program *vm.Program
}

// filterEnv returns the variables visible to a filter expression for r.
func filterEnv(r argv.Result) map[string]any {
	rec := makeRecord(r)

	values := rec.Values
	if values == nil {
		values = []string{}
	}

	return map[string]any{
		"token":     rec.Token,
		"text":      rec.Text,
		"kind":      rec.Kind,
		"validity":  rec.Validity,
		"valid":     r.IsValid(),
		"pos":       rec.Pos,
		"option":    rec.Option,
		"command":   rec.Command,
		"name":      r.Name(),
		"values":    values,
		"literal":   rec.Literal,
		"synthetic": r.Synthetic(),
	}
}

func compileFilter(source string) (filter, error) {
	if strings.TrimSpace(source) == "" {
		return filter{}, nil
	}

	program, err := expr.Compile(source, expr.Env(filterEnv(argv.Result{})), expr.AsBool())
	if err != nil {
		return filter{}, pkg.ErrInvalidFilter.Wrapf("%q", source).Wrap(err)
	}

	return filter{source: source, program: program}, nil
}

func (f filter) match(r argv.Result) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv(r))
	if err != nil {
		return false, pkg.ErrInvalidFilter.Wrapf("%q", f.source).Wrap(err)
	}

	keep, _ := out.(bool)

	return keep, nil
}
