package help

import (
	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/text"
)

// Posix renders POSIX-style labels such as "-o, --output=FILE".
type Posix struct {
	ShortPrefix    text.Text
	LongPrefix     text.Text
	NameStyle      text.Style
	NameSeparator  text.Text // between option names
	CommandStyle   text.Style
	AliasSeparator text.Text // between subcommand names
	OptionParams   Params
	CommandParams  Params
	LongFirst      bool
	AlignLong      bool // indent options without a short name past the short column
	Columns        Layout
}

// DefaultPosix returns the default POSIX format.
func DefaultPosix() *Posix {
	return &Posix{
		ShortPrefix:    text.Text{Value: "-"},
		LongPrefix:     text.Text{Value: "--"},
		NameSeparator:  text.Text{Value: ", "},
		AliasSeparator: text.Text{Value: "|"},
		OptionParams:   defaultParams("="),
		CommandParams:  defaultParams(" "),
		AlignLong:      true,
		Columns: Layout{
			PadDescription: text.Padding{
				First: text.Text{Value: " "},
				Fill:  text.Text{Value: "."},
				Last:  text.Text{Value: " "},
			},
			PadWrapped:       text.Spaces(),
			MaxColumn:        40,
			DescriptionWidth: 40,
			Indent:           4,
			Gap:              2,
			Required:         text.Text{Value: "(required)"},
		},
	}
}

func defaultParams(prefix string) Params {
	return Params{
		Prefix:    text.Text{Value: prefix},
		Separator: text.Text{Value: " "},
		Optional: text.Enclosure{
			Prefix: text.Text{Value: "["},
			Suffix: text.Text{Value: "]"},
		},
		Variadic: text.Text{Value: "..."},
	}
}

// Apply sets the styles of every label part of p.
func (p *Posix) Apply(s Styles) *Posix {
	p.ShortPrefix.Style = s.Prefix
	p.LongPrefix.Style = s.Prefix
	p.NameStyle = s.Name
	p.CommandStyle = s.Command
	p.OptionParams.Mandatory.Style = s.Param
	p.OptionParams.Optional.Style = s.Param
	p.CommandParams.Mandatory.Style = s.Param
	p.CommandParams.Optional.Style = s.Param
	p.Columns.PadDescription.Fill.Style = s.Leader

	return p
}

// OptionLabel implements [Format].
func (p *Posix) OptionLabel(opt *argv.Option) text.Measured {
	var short, long []text.Measured

	if opt.Short != 0 {
		short = append(short, text.Concat(
			p.ShortPrefix.Measured(),
			text.Text{Value: string(opt.Short), Style: p.NameStyle}.Measured(),
		))
	}

	for _, name := range opt.LongNames() {
		long = append(long, text.Concat(
			p.LongPrefix.Measured(),
			text.Text{Value: name, Style: p.NameStyle}.Measured(),
		))
	}

	names := append(short, long...)
	if p.LongFirst {
		names = append(long, short...)
	}

	label := joinLabels(names, p.NameSeparator)

	if p.AlignLong && !p.LongFirst && opt.Short == 0 {
		indent := p.ShortPrefix.Width() + 1 + p.NameSeparator.Width()
		label = text.Concat(text.Spaces().Run(indent), label)
	}

	return label.Append(p.OptionParams.Render(opt.Params, opt.Defaults, opt.Variadic))
}

// CommandLabel implements [Format].
func (p *Posix) CommandLabel(cmd *argv.Command) text.Measured {
	return commandLabel(cmd, p.CommandStyle, p.AliasSeparator, p.CommandParams)
}

// Layout implements [Format].
func (p *Posix) Layout() Layout { return p.Columns }

func commandLabel(cmd *argv.Command, style text.Style, sep text.Text, params Params) text.Measured {
	names := make([]text.Measured, 0, 1+len(cmd.Aliases))

	for _, name := range cmd.Names() {
		if name != "" {
			names = append(names, text.Text{Value: name, Style: style}.Measured())
		}
	}

	return joinLabels(names, sep).Append(params.Render(cmd.Params, cmd.Defaults, cmd.Variadic))
}
