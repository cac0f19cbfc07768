// Package text provides width-aware styled strings for terminal output.
//
// Widths are display cells, not bytes: escape sequences count as zero cells
// and East Asian wide runes count as two. A [Style] must only add escape
// sequences so that a styled value keeps the width of its plain text.
package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
)

// Style applies style markers to a string.
type Style func(string) string

// Plain is the identity [Style].
func Plain(s string) string { return s }

// Lipgloss returns a [Style] rendering with st.
func Lipgloss(st lipgloss.Style) Style {
	return func(s string) string { return st.Render(s) }
}

// Color returns a [Style] that colors with attrs regardless of whether the
// output is a terminal.
func Color(attrs ...color.Attribute) Style {
	c := color.New(attrs...)
	c.EnableColor()

	return func(s string) string { return c.Sprint(s) }
}

// Measured is a string paired with its display width.
type Measured struct {
	s     string
	width int
}

// Measure returns s with its display width.
func Measure(s string) Measured {
	return Measured{s: s, width: ansi.StringWidth(s)}
}

// Concat joins parts into a single [Measured].
func Concat(parts ...Measured) Measured {
	return Measured{}.Append(parts...)
}

// Append returns m followed by parts.
func (m Measured) Append(parts ...Measured) Measured {
	var sb strings.Builder

	sb.WriteString(m.s)

	width := m.width
	for _, p := range parts {
		sb.WriteString(p.s)
		width += p.width
	}

	return Measured{s: sb.String(), width: width}
}

// String returns the string including any style markers.
func (m Measured) String() string { return m.s }

// Width returns the display width.
func (m Measured) Width() int { return m.width }

// Len returns the length in bytes including style markers.
func (m Measured) Len() int { return len(m.s) }

// Text is a plain value and the [Style] it is rendered with.
type Text struct {
	Value string
	Style Style
}

// String returns Value with its style applied.
func (t Text) String() string {
	if t.Style == nil || t.Value == "" {
		return t.Value
	}

	return t.Style(t.Value)
}

// Width returns the display width of Value.
func (t Text) Width() int { return ansi.StringWidth(t.Value) }

// Measured returns the styled string with the width of Value.
func (t Text) Measured() Measured {
	return Measured{s: t.String(), width: t.Width()}
}

// Enclosure decorates a value with a prefix and suffix, each styled and
// measured independently.
type Enclosure struct {
	Prefix Text
	Suffix Text
	Style  Style // applied to the enclosed value
}

// Enclose returns s between the prefix and suffix of e.
func (e Enclosure) Enclose(s string) Measured {
	return Concat(
		e.Prefix.Measured(),
		Text{Value: s, Style: e.Style}.Measured(),
		e.Suffix.Measured(),
	)
}

// Wrap word-wraps s to lines of at most width cells. Words longer than
// width are kept whole. At least one line is always returned.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	lines := strings.Split(ansi.Wordwrap(s, width, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}

	return lines
}
