package repl

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/text"
)

// suggestLimit bounds the suggestions shown for an unrecognized result.
const suggestLimit = 3

// renderResults formats one line per result with the token text aligned,
// followed by its kind, validity and binding. Invalid results are styled as
// errors and carry fuzzy suggestions where any exist.
func renderResults(rs argv.Results) string {
	if len(rs) == 0 {
		return hintStyle.Render("(no results)")
	}

	width := 0
	for _, r := range rs {
		width = max(width, lipgloss.Width(r.Text))
	}

	pad := text.Padding{Width: width}

	var b strings.Builder

	for i, r := range rs {
		if i > 0 {
			b.WriteString("\n")
		}

		pos := "-"
		if !r.Synthetic() {
			pos = strconv.Itoa(r.Pos)
		}

		style := resultStyle
		if !r.IsValid() {
			style = errorStyle
		}

		line := pad.Pad(text.Measure(r.Text)).String() + "  " + r.Kind.String()
		if !r.IsValid() {
			line += " " + r.Validity.String()
		}

		b.WriteString(hintStyle.Render(pos + " "))
		b.WriteString(style.Render(line))

		switch r.Match() {
		case argv.MatchOption:
			b.WriteString(hintStyle.Render(" → option " + r.Name()))
		case argv.MatchCommand:
			b.WriteString(hintStyle.Render(" → command " + r.Name()))
		}

		if len(r.Values) > 0 {
			b.WriteString(suggestionStyle.Render(" [" + strings.Join(r.Values, " ") + "]"))
		}

		if s := argv.Suggest(r, suggestLimit); len(s) > 0 {
			b.WriteString(hintStyle.Render(" (did you mean " + strings.Join(s, ", ") + "?)"))
		}
	}

	return b.String()
}

// renderStatus summarizes rs on one line: a check mark and the subcommand
// path when every result is valid, otherwise the first problem and the
// number of invalid results.
func renderStatus(rs argv.Results) string {
	var (
		first   argv.Result
		invalid int
	)

	for r := range rs.Invalid() {
		if invalid == 0 {
			first = r
		}

		invalid++
	}

	if invalid == 0 {
		names := []string{}
		for _, c := range rs.Commands() {
			names = append(names, c.Name)
		}

		status := "✔ valid"
		if len(names) > 0 {
			status += " → " + strings.Join(names, " ")
		}

		return resultStyle.Render(status)
	}

	status := "✘ " + first.Text + ": " + first.Validity.String()
	if invalid > 1 {
		status += " (+" + strconv.Itoa(invalid-1) + " more)"
	}

	return errorStyle.Render(status)
}
