package repl

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/argot/argv"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "tree", "edit", "clear", "quit"}

// isWordBoundary returns true if the rune separates command-line tokens.
// Option prefixes and inline '=' are part of the word so that a completed
// candidate replaces the whole token.
func isWordBoundary(r rune) bool { return unicode.IsSpace(r) }

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary (after a space,
// start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// scopeChain returns root followed by each subcommand that the tokens before
// wordStart descend into, outermost first.
func scopeChain(root *argv.Command, input string, wordStart int, opts ...argv.ParseOption) []*argv.Command {
	if root == nil {
		return nil
	}

	rs := argv.Parse(strings.Fields(input[:wordStart]), root, opts...)

	return append([]*argv.Command{root}, rs.Commands()...)
}

// candidates returns the names that complete word in the given scope chain.
// Options are drawn from every scope, innermost first, in the prefix style of
// word. Bare words complete subcommands of the innermost scope.
func candidates(chain []*argv.Command, word string) []string {
	if len(chain) == 0 || word == "" {
		return nil
	}

	var names []string

	add := func(s string) {
		if !slices.Contains(names, s) {
			names = append(names, s)
		}
	}

	options := func(fn func(opt *argv.Option)) {
		for i := len(chain) - 1; i >= 0; i-- {
			for j := range chain[i].Options {
				fn(&chain[i].Options[j])
			}
		}
	}

	switch {
	case strings.HasPrefix(word, "--"):
		options(func(opt *argv.Option) {
			for _, name := range opt.LongNames() {
				add("--" + name)
			}
		})

	case strings.HasPrefix(word, "-"):
		options(func(opt *argv.Option) {
			if opt.Short != 0 {
				add("-" + string(opt.Short))
			}

			for _, name := range opt.LongNames() {
				add("--" + name)
			}
		})

	case strings.HasPrefix(word, "/"):
		options(func(opt *argv.Option) {
			if opt.Short != 0 {
				add("/" + string(opt.Short))
			}

			for _, name := range opt.LongNames() {
				add("/" + name)
			}
		})

	default:
		for _, cmd := range chain[len(chain)-1].Commands {
			for _, name := range cmd.Names() {
				add(name)
			}
		}
	}

	return names
}

// computeMatches calculates the fuzzy match results for the word at the cursor.
// It returns the matches (ranked best-first), the candidate list, and the word
// boundaries. When the current word is empty, it returns nil matches so the
// hint line stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	names []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if word == "" {
		return nil, nil, wordStart, wordEnd
	}

	if m.mode == modeCtrl {
		names = ctrlCommands
	} else {
		names = candidates(scopeChain(m.root, input, wordStart, m.parseOpts...), word)
	}

	if len(names) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	matches = fuzzy.Find(word, names)

	return matches, names, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}

// renderTree lists the command tree below root, one command per line,
// indented by depth and followed by its description.
func renderTree(root *argv.Command) string {
	var b strings.Builder

	root.Walk(func(path []*argv.Command) bool {
		cmd := path[len(path)-1]

		name := cmd.Name
		if len(cmd.Aliases) > 0 {
			name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}

		b.WriteString(strings.Repeat("  ", len(path)))
		b.WriteString(name)

		if cmd.Description != "" {
			b.WriteString(" " + hintStyle.Render(cmd.Description))
		}

		b.WriteString("\n")

		return true
	})

	return b.String()
}
