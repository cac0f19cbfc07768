package argv

//go:generate go tool stringer --linecomment --type Kind,Variadicity,Validity,Match --output argv_string.go

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the lexical shape of a single token, determined without reference
// to any template.
type Kind uint8

const (
	KindUnknown      Kind = iota // unknown
	KindEmpty                    // empty
	KindShortOption              // short_option
	KindLongOption               // long_option
	KindSwitch                   // microsoft_switch
	KindSingleHyphen             // single_hyphen
	KindDoubleHyphen             // double_hyphen
	KindRegular                  // regular_argument
)

// IsOption reports whether k names an option in any supported style.
func (k Kind) IsOption() bool {
	return k == KindShortOption || k == KindLongOption || k == KindSwitch
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	for c := KindUnknown; c <= KindRegular; c++ {
		if c.String() == string(text) {
			*k = c

			return nil
		}
	}

	return ErrInvalidEnum.With(
		slog.String("type", "kind"),
		slog.String("text", string(text)),
	)
}

// Classify returns the [Kind] of token.
//
// Every input maps to exactly one Kind. Tokens that begin like an option but
// do not have a well-formed name are [KindUnknown], except for negative
// numbers and paths containing more than one slash, which are [KindRegular].
func Classify(token string) Kind {
	switch {
	case token == "":
		return KindEmpty

	case token == "-":
		return KindSingleHyphen

	case token == "--":
		return KindDoubleHyphen

	case strings.HasPrefix(token, "--"):
		name, _, _ := splitInline(token[2:])
		if isLongName(name) {
			return KindLongOption
		}

		return KindUnknown

	case strings.HasPrefix(token, "-"):
		name, _, _ := splitInline(token[1:])
		if isLetters(name) {
			return KindShortOption
		}

		if isNumber(token[1:]) {
			return KindRegular
		}

		return KindUnknown

	case strings.HasPrefix(token, "/"):
		name, _, _ := splitInline(token[1:])
		if isSwitchName(name) {
			return KindSwitch
		}

		if token == "/" || strings.Contains(token[1:], "/") {
			return KindRegular // path
		}

		return KindUnknown
	}

	return KindRegular
}

// splitInline splits an option body at the first '=' or ':' separating the
// name from an attached value.
func splitInline(body string) (name, value string, ok bool) {
	i := strings.IndexAny(body, "=:")
	if i < 0 {
		return body, "", false
	}

	return body[:i], body[i+1:], true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isLongName reports whether s is a long option name: a letter or digit
// followed by letters, digits, '-', '_', or '.'.
func isLongName(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !isWordRune(first) {
		return false
	}

	for _, r := range s[size:] {
		if !isWordRune(r) && r != '-' && r != '_' && r != '.' {
			return false
		}
	}

	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

// isSwitchName reports whether s is a Microsoft switch name. "?" is accepted
// for the conventional /? help switch.
func isSwitchName(s string) bool {
	if s == "?" {
		return true
	}

	return isLongName(s)
}

// isNumber reports whether s is an unsigned decimal with an optional
// fractional part.
func isNumber(s string) bool {
	digits, dot := 0, false

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}

	return digits > 0
}
