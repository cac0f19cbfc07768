package cmd

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/ardnew/argot/argv"
	"github.com/ardnew/argot/pkg"
	"github.com/ardnew/argot/text"
)

// Classify prints the lexical kind of each token. No manifest is required.
type Classify struct {
	Tokens []string `arg:"" optional:"" passthrough:"" help:"Tokens to classify (precede with -- if the first begins with a dash)."`
}

// Run executes the classify command.
func (c *Classify) Run(ctx context.Context) error {
	if _, err := io.WriteString(outputFrom(ctx), classifyTokens(passthrough(c.Tokens))); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}

// classifyTokens renders one line per token: its position, the token quoted,
// and its kind, with the token column aligned.
func classifyTokens(tokens []string) string {
	quoted := make([]text.Measured, len(tokens))
	width := 0

	for i, tok := range tokens {
		quoted[i] = text.Measure(strconv.Quote(tok))
		width = max(width, quoted[i].Width())
	}

	posPad := text.Padding{Width: len(strconv.Itoa(len(tokens) - 1)), Align: text.AlignRight}
	tokPad := text.Padding{Width: width}

	var sb strings.Builder

	for i, tok := range tokens {
		line := posPad.Pad(text.Measure(strconv.Itoa(i))).
			Append(text.Measure("  ")).
			Append(tokPad.Pad(quoted[i])).
			Append(text.Measure("  " + argv.Classify(tok).String()))

		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
