package argv

import (
	"log/slog"
	"strings"
)

// Variadicity governs how many values an option or positional slot consumes.
type Variadicity uint8

const (
	NotVariadic Variadicity = iota // not_variadic
	ZeroOrMore                     // zero_or_more
	OneOrMore                      // one_or_more
)

// IsVariadic reports whether v accepts a variable number of values.
func (v Variadicity) IsVariadic() bool {
	return v == ZeroOrMore || v == OneOrMore
}

// ParseVariadicity parses the text form of a [Variadicity]. In addition to
// the names returned by [Variadicity.String], the shorthands "*" and "+" are
// accepted, and the empty string is [NotVariadic].
func ParseVariadicity(s string) (Variadicity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "not_variadic":
		return NotVariadic, nil
	case "*", "zero_or_more":
		return ZeroOrMore, nil
	case "+", "one_or_more":
		return OneOrMore, nil
	}

	return NotVariadic, ErrInvalidEnum.With(
		slog.String("type", "variadicity"),
		slog.String("text", s),
	)
}

// ParameterVariadicity infers variadicity from a parameter placeholder name:
// a bare "..." is [ZeroOrMore] and a name ending in "..." is [OneOrMore].
func ParameterVariadicity(name string) Variadicity {
	switch {
	case name == "...":
		return ZeroOrMore
	case strings.HasSuffix(name, "..."):
		return OneOrMore
	}

	return NotVariadic
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variadicity) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variadicity) UnmarshalText(text []byte) error {
	p, err := ParseVariadicity(string(text))
	if err != nil {
		return err
	}

	*v = p

	return nil
}

// Validity is the terminal classification of a parse result.
type Validity uint8

const (
	Unknown             Validity = iota // unknown
	Valid                               // valid
	UnrecognizedOption                  // unrecognized_option
	UnrecognizedCommand                 // unrecognized_subcommand
	NotEnoughValues                     // not_enough_values
)

// MarshalText implements [encoding.TextMarshaler].
func (v Validity) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
