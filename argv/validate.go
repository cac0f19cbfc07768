package argv

import (
	"errors"
	"strings"
	"unicode"
)

// Validate checks the template tree rooted at c for authoring errors and
// returns all of them joined. Each error wraps a [cuserr.CustomError] with
// code [ErrCodeTemplate] and metadata identifying the offending scope, field
// and name.
//
// [Parse] does not call Validate; parsing a malformed tree is undefined.
func (c *Command) Validate() error {
	var errs []error

	c.Walk(func(path []*Command) bool {
		errs = append(errs, validateScope(path)...)

		return true
	})

	return errors.Join(errs...)
}

func scopeName(path []*Command) string {
	names := make([]string, 0, len(path))

	for _, c := range path[1:] {
		names = append(names, c.Name)
	}

	return strings.Join(names, " ")
}

func validateScope(path []*Command) []error {
	var (
		errs  []error
		cmd   = path[len(path)-1]
		scope = scopeName(path)
	)

	if len(path) > 1 && cmd.Name == "" {
		errs = append(errs, newTemplateError(ErrMsgEmptyCmdName, scope, "name", ""))
	}

	if len(cmd.Defaults) > len(cmd.Params) {
		errs = append(errs, newTemplateError(ErrMsgExcessDefaults, scope, "defaults", cmd.Name))
	}

	seen := make(map[string]struct{})

	for i := range cmd.Options {
		opt := &cmd.Options[i]

		if opt.Short == 0 && len(opt.LongNames()) == 0 {
			errs = append(errs, newTemplateError(ErrMsgNoName, scope, "options", ""))

			continue
		}

		if opt.Short != 0 && !unicode.IsLetter(opt.Short) {
			errs = append(errs, newTemplateError(ErrMsgBadShortName, scope, "short", string(opt.Short)))
		}

		for _, name := range opt.LongNames() {
			if !isLongName(name) {
				errs = append(errs, newTemplateError(ErrMsgBadLongName, scope, "long", name))
			}
		}

		if len(opt.Defaults) > len(opt.Params) {
			errs = append(errs, newTemplateError(ErrMsgExcessDefaults, scope, "defaults", opt.Name()))
		}

		keys := make([]string, 0, 1+len(opt.Aliases))
		if opt.Short != 0 {
			keys = append(keys, "-"+string(opt.Short))
		}

		for _, name := range opt.LongNames() {
			keys = append(keys, "--"+name)
		}

		for _, key := range keys {
			if _, dup := seen[key]; dup {
				errs = append(errs, newTemplateError(ErrMsgDuplicateOption, scope, "options", key))
			}

			seen[key] = struct{}{}
		}
	}

	siblings := make(map[string]struct{})

	for i := range cmd.Commands {
		for _, name := range cmd.Commands[i].Names() {
			if name == "" {
				continue
			}

			if _, dup := siblings[name]; dup {
				errs = append(errs, newTemplateError(ErrMsgDuplicateCmd, scope, "commands", name))
			}

			siblings[name] = struct{}{}
		}
	}

	return errs
}
