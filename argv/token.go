package argv

import "unicode/utf8"

// modArgument is one logical piece of a token in the parse working set.
// Short option clusters and inline values split one token into several.
// For option pieces, offset and size locate the name within the token,
// excluding its prefix.
type modArgument struct {
	token   string
	text    string
	kind    Kind
	pos     int
	offset  int
	size    int
	inline  bool // value attached to the preceding option with '=' or ':'
	literal bool // follows the "--" terminator
}

// expand builds the working set for tokens. The "--" terminator is kept as
// a boundary marker; every token after it is a literal regular argument.
func expand(tokens []string, switches bool) []modArgument {
	args := make([]modArgument, 0, len(tokens))
	terminated := false

	for pos, tok := range tokens {
		whole := modArgument{
			token: tok,
			text:  tok,
			kind:  Classify(tok),
			pos:   pos,
			size:  len(tok),
		}

		if terminated {
			whole.kind = KindRegular
			whole.literal = true
			args = append(args, whole)

			continue
		}

		switch whole.kind {
		case KindDoubleHyphen:
			terminated = true
			args = append(args, whole)

		case KindLongOption:
			args = appendNamed(args, whole, "--")

		case KindSwitch:
			if !switches {
				whole.kind = KindRegular
				args = append(args, whole)

				continue
			}

			args = appendNamed(args, whole, "/")

		case KindShortOption:
			args = appendCluster(args, whole)

		default:
			args = append(args, whole)
		}
	}

	return args
}

// appendNamed appends a prefixed option token and its inline value, if any.
func appendNamed(args []modArgument, a modArgument, prefix string) []modArgument {
	name, value, ok := splitInline(a.token[len(prefix):])

	a.text = prefix + name
	a.offset = len(prefix)
	a.size = len(name)
	args = append(args, a)

	if ok {
		args = append(args, inlineValue(a, value, len(prefix)+len(name)+1))
	}

	return args
}

// appendCluster appends one short option per letter of a "-abc" cluster,
// all sharing the token's position, followed by any inline value.
func appendCluster(args []modArgument, a modArgument) []modArgument {
	name, value, ok := splitInline(a.token[1:])
	offset := 1

	for _, r := range name {
		n := utf8.RuneLen(r)
		args = append(args, modArgument{
			token:  a.token,
			text:   "-" + string(r),
			kind:   KindShortOption,
			pos:    a.pos,
			offset: offset,
			size:   n,
		})
		offset += n
	}

	if ok {
		args = append(args, inlineValue(a, value, offset+1))
	}

	return args
}

func inlineValue(a modArgument, value string, offset int) modArgument {
	return modArgument{
		token:  a.token,
		text:   value,
		kind:   KindRegular,
		pos:    a.pos,
		offset: offset,
		size:   len(value),
		inline: true,
	}
}

// name returns the option name of a without its prefix.
func (a modArgument) name() string {
	switch a.kind {
	case KindLongOption:
		return a.text[2:]
	case KindShortOption, KindSwitch:
		return a.text[1:]
	}

	return a.text
}
