package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Align positions content within a [Padding] width.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Padding produces runs of fill cells framed by First and Last.
//
// A run of n cells is First, then Fill repeated and truncated to fit, then
// Last. Runs narrower than First and Last together are Fill alone, so
// Run(1) is a single fill cell.
type Padding struct {
	First Text
	Fill  Text
	Last  Text
	Width int
	Align Align
}

// Run returns a padding run exactly n cells wide.
func (p Padding) Run(n int) Measured {
	if n <= 0 {
		return Measured{}
	}

	edges := p.First.Width() + p.Last.Width()
	if n < edges || n == 1 {
		return p.fill(n)
	}

	return Concat(p.First.Measured(), p.fill(n-edges), p.Last.Measured())
}

func (p Padding) fill(n int) Measured {
	if n <= 0 {
		return Measured{}
	}

	unit := p.Fill.Value
	if w := ansi.StringWidth(unit); w == 0 {
		unit = " "
	}

	raw := ansi.Truncate(strings.Repeat(unit, n), n, "")

	// A wide fill rune cannot split a cell; top up with spaces.
	if w := ansi.StringWidth(raw); w < n {
		raw += strings.Repeat(" ", n-w)
	}

	return Text{Value: raw, Style: p.Fill.Style}.Measured()
}

// Pad aligns m within Width cells. Content at least Width wide is returned
// unchanged.
func (p Padding) Pad(m Measured) Measured {
	gap := p.Width - m.Width()
	if gap <= 0 {
		return m
	}

	switch p.Align {
	case AlignRight:
		return Concat(p.Run(gap), m)

	case AlignCenter:
		left := gap / 2

		return Concat(p.Run(left), m, p.Run(gap-left))
	}

	return Concat(m, p.Run(gap))
}

// Spaces returns a [Padding] of blank cells.
func Spaces() Padding {
	return Padding{Fill: Text{Value: " "}}
}
