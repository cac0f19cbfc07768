package text

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMeasureWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"sgr markers", "\x1b[1mhello\x1b[0m", 5},
		{"nested markers", "\x1b[31m\x1b[4mab\x1b[24mc\x1b[0m", 3},
		{"wide runes", "日本", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Measure(tt.input)
			assert.Equal(t, tt.want, m.Width())
			assert.Equal(t, len(tt.input), m.Len())
			assert.Equal(t, tt.input, m.String())
		})
	}
}

// TestStyledWidth checks that the width of styled text is its raw length
// less the length of the style markers it carries.
func TestStyledWidth(t *testing.T) {
	styles := map[string]Style{
		"plain": Plain,
		"bold":  Color(color.Bold),
		"fg+bg": Color(color.FgRed, color.BgWhite),
		"nil":   nil,
	}

	for name, style := range styles {
		t.Run(name, func(t *testing.T) {
			txt := Text{Value: "option", Style: style}
			s := txt.String()
			markers := len(s) - len(txt.Value)

			assert.Equal(t, len(s)-markers, txt.Width())
			assert.Equal(t, txt.Width(), Measure(s).Width())
			assert.Equal(t, txt.Width(), txt.Measured().Width())
		})
	}
}

func TestConcat(t *testing.T) {
	m := Concat(Measure("a"), Text{Value: "bc", Style: Color(color.FgGreen)}.Measured(), Measure("日"))
	assert.Equal(t, 5, m.Width())
	assert.True(t, strings.HasPrefix(m.String(), "a"))
	assert.Equal(t, m.Width(), Measure(m.String()).Width())

	assert.Equal(t, Measured{}, Concat())
	assert.Equal(t, 3, Measure("x").Append(Measure("yz")).Width())
}

func TestPaddingRun(t *testing.T) {
	dots := Padding{
		First: Text{Value: " "},
		Fill:  Text{Value: "."},
		Last:  Text{Value: " "},
	}

	tests := []struct {
		n    int
		want string
	}{
		{-1, ""},
		{0, ""},
		{1, "."},
		{2, "  "},
		{3, " . "},
		{6, " .... "},
	}

	for _, tt := range tests {
		m := dots.Run(tt.n)
		assert.Equal(t, tt.want, m.String(), "Run(%d)", tt.n)
		assert.Equal(t, max(tt.n, 0), m.Width(), "Run(%d)", tt.n)
	}

	t.Run("multi-cell fill", func(t *testing.T) {
		p := Padding{Fill: Text{Value: "-="}}
		assert.Equal(t, "-=-=-", p.Run(5).String())
	})

	t.Run("wide fill", func(t *testing.T) {
		p := Padding{Fill: Text{Value: "日"}}
		m := p.Run(3)
		assert.Equal(t, 3, m.Width())
	})

	t.Run("styled fill", func(t *testing.T) {
		p := Padding{Fill: Text{Value: ".", Style: Color(color.Faint)}}
		m := p.Run(4)
		assert.Equal(t, 4, m.Width())
		assert.Greater(t, m.Len(), 4)
	})
}

func TestPaddingPad(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		input string
		want  string
	}{
		{"left", AlignLeft, "ab", "ab   "},
		{"right", AlignRight, "ab", "   ab"},
		{"center", AlignCenter, "ab", " ab  "},
		{"exact", AlignLeft, "abcde", "abcde"},
		{"overflow", AlignRight, "abcdefg", "abcdefg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Spaces()
			p.Width = 5
			p.Align = tt.align

			got := p.Pad(Measure(tt.input))
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, max(5, len(tt.input)), got.Width())
		})
	}
}

func TestEnclose(t *testing.T) {
	e := Enclosure{
		Prefix: Text{Value: "[", Style: Color(color.FgBlue)},
		Suffix: Text{Value: "]", Style: Color(color.FgBlue)},
		Style:  Color(color.Underline),
	}

	m := e.Enclose("FILE")
	assert.Equal(t, 6, m.Width())
	assert.Equal(t, "[FILE]", ansi.Strip(m.String()))

	plain := Enclosure{Prefix: Text{Value: "<"}, Suffix: Text{Value: ">"}}
	assert.Equal(t, "<N>", plain.Enclose("N").String())
	assert.Equal(t, "", Enclosure{}.Enclose("").String())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "short text", 20, []string{"short text"}},
		{"wraps", "the quick brown fox jumps", 10, []string{"the quick", "brown fox", "jumps"}},
		{"unbounded", "no limit here", 0, []string{"no limit here"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.input, tt.width)
			assert.Equal(t, tt.want, got)

			for _, line := range got {
				if tt.width > 0 {
					assert.LessOrEqual(t, Measure(line).Width(), tt.width)
				}
			}
		})
	}
}
