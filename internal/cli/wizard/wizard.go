package wizard

import (
	"context"
	"io"

	"github.com/teehex/teehex/internal/ui"
)

// Prompter asks a list of questions.
type Prompter interface {
	Run(ctx context.Context, questions []Question) (Answers, error)
}

// New returns a FormPrompter when hm reports a terminal and a
// LinePrompter otherwise.
func New(in io.Reader, out io.Writer, hm *ui.HeadlessManager, theme *ui.Theme) Prompter {
	if hm.IsHeadless() {
		return NewLinePrompter(in, out, theme)
	}
	return NewFormPrompter(in, out, theme)
}
