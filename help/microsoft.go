package help

import (
	"strings"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/text"
)

// Microsoft renders Microsoft-style switch labels such as "/O, /OUTPUT:FILE".
type Microsoft struct {
	Prefix         text.Text
	NameStyle      text.Style
	NameSeparator  text.Text
	CommandStyle   text.Style
	AliasSeparator text.Text
	SwitchParams   Params
	CommandParams  Params
	LongFirst      bool
	Uppercase      bool
	Columns        Layout
}

// DefaultMicrosoft returns the default Microsoft format.
func DefaultMicrosoft() *Microsoft {
	return &Microsoft{
		Prefix:         text.Text{Value: "/"},
		NameSeparator:  text.Text{Value: ", "},
		AliasSeparator: text.Text{Value: "|"},
		SwitchParams:   defaultParams(":"),
		CommandParams:  defaultParams(" "),
		Uppercase:      true,
		Columns: Layout{
			PadDescription:   text.Spaces(),
			PadWrapped:       text.Spaces(),
			MaxColumn:        40,
			DescriptionWidth: 76,
			Indent:           4,
			Gap:              2,
			Required:         text.Text{Value: "(required)"},
		},
	}
}

// Apply sets the styles of every label part of m.
func (m *Microsoft) Apply(s Styles) *Microsoft {
	m.Prefix.Style = s.Prefix
	m.NameStyle = s.Name
	m.CommandStyle = s.Command
	m.SwitchParams.Mandatory.Style = s.Param
	m.SwitchParams.Optional.Style = s.Param
	m.CommandParams.Mandatory.Style = s.Param
	m.CommandParams.Optional.Style = s.Param

	return m
}

// OptionLabel implements [Format].
func (m *Microsoft) OptionLabel(opt *argv.Option) text.Measured {
	names := opt.Names()
	if m.LongFirst && opt.Short != 0 {
		names = append(names[1:], names[0])
	}

	switches := make([]text.Measured, 0, len(names))

	for _, name := range names {
		if m.Uppercase {
			name = strings.ToUpper(name)
		}

		switches = append(switches, text.Concat(
			m.Prefix.Measured(),
			text.Text{Value: name, Style: m.NameStyle}.Measured(),
		))
	}

	return joinLabels(switches, m.NameSeparator).
		Append(m.SwitchParams.Render(opt.Params, opt.Defaults, opt.Variadic))
}

// CommandLabel implements [Format].
func (m *Microsoft) CommandLabel(cmd *argv.Command) text.Measured {
	return commandLabel(cmd, m.CommandStyle, m.AliasSeparator, m.CommandParams)
}

// Layout implements [Format].
func (m *Microsoft) Layout() Layout { return m.Columns }
