// Package manifest reads and writes argv template trees as YAML documents.
//
// A manifest describes one root command:
//
//	name: tool
//	description: Example tool
//	options:
//	  - short: v
//	    long: verbose
//	    description: Print more
//	commands:
//	  - name: build
//	    aliases: [b]
//	    options:
//	      - long: target
//	        params: [TRIPLE]
//	        required: true
//
// The variadic field accepts "zero_or_more" ("*") or "one_or_more" ("+").
// When omitted, it is inferred from a trailing "..." on the last parameter.
package manifest

import (
	"unicode/utf8"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/pkg"
)

type command struct {
	Name        string    `yaml:"name,omitempty"`
	Aliases     []string  `yaml:"aliases,omitempty,flow"`
	Description string    `yaml:"description,omitempty"`
	Params      []string  `yaml:"params,omitempty,flow"`
	Defaults    []string  `yaml:"defaults,omitempty,flow"`
	Variadic    string    `yaml:"variadic,omitempty"`
	Options     []option  `yaml:"options,omitempty"`
	Commands    []command `yaml:"commands,omitempty"`
}

type option struct {
	Short       string   `yaml:"short,omitempty"`
	Long        string   `yaml:"long,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty,flow"`
	Description string   `yaml:"description,omitempty"`
	Params      []string `yaml:"params,omitempty,flow"`
	Defaults    []string `yaml:"defaults,omitempty,flow"`
	Variadic    string   `yaml:"variadic,omitempty"`
	Required    bool     `yaml:"required,omitempty"`
}

func variadicity(text string, params []string) (argv.Variadicity, error) {
	if text == "" && len(params) > 0 {
		return argv.ParameterVariadicity(params[len(params)-1]), nil
	}

	return argv.ParseVariadicity(text)
}

func variadicText(v argv.Variadicity) string {
	if !v.IsVariadic() {
		return ""
	}

	return v.String()
}

func (d *command) template() (argv.Command, error) {
	v, err := variadicity(d.Variadic, d.Params)
	if err != nil {
		return argv.Command{}, pkg.ErrInvalidManifest.Wrapf("command %q", d.Name).Wrap(err)
	}

	cmd := argv.Command{
		Name:        d.Name,
		Aliases:     d.Aliases,
		Description: d.Description,
		Params:      d.Params,
		Defaults:    d.Defaults,
		Variadic:    v,
	}

	for i := range d.Options {
		opt, err := d.Options[i].template()
		if err != nil {
			return argv.Command{}, err
		}

		cmd.Options = append(cmd.Options, opt)
	}

	for i := range d.Commands {
		sub, err := d.Commands[i].template()
		if err != nil {
			return argv.Command{}, err
		}

		cmd.Commands = append(cmd.Commands, sub)
	}

	return cmd, nil
}

func (d *option) template() (argv.Option, error) {
	opt := argv.Option{
		Long:        d.Long,
		Aliases:     d.Aliases,
		Description: d.Description,
		Params:      d.Params,
		Defaults:    d.Defaults,
		Required:    d.Required,
	}

	if d.Short != "" {
		r, n := utf8.DecodeRuneInString(d.Short)
		if n != len(d.Short) {
			return argv.Option{}, pkg.ErrInvalidManifest.Wrapf(
				"short name %q is not a single character", d.Short)
		}

		opt.Short = r
	}

	v, err := variadicity(d.Variadic, d.Params)
	if err != nil {
		return argv.Option{}, pkg.ErrInvalidManifest.Wrapf("option %q", opt.Name()).Wrap(err)
	}

	opt.Variadic = v

	return opt, nil
}

func document(c *argv.Command) command {
	d := command{
		Name:        c.Name,
		Aliases:     c.Aliases,
		Description: c.Description,
		Params:      c.Params,
		Defaults:    c.Defaults,
		Variadic:    variadicText(c.Variadic),
	}

	for i := range c.Options {
		o := &c.Options[i]
		od := option{
			Long:        o.Long,
			Aliases:     o.Aliases,
			Description: o.Description,
			Params:      o.Params,
			Defaults:    o.Defaults,
			Variadic:    variadicText(o.Variadic),
			Required:    o.Required,
		}

		if o.Short != 0 {
			od.Short = string(o.Short)
		}

		d.Options = append(d.Options, od)
	}

	for i := range c.Commands {
		d.Commands = append(d.Commands, document(&c.Commands[i]))
	}

	return d
}
