package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/teehex/teehex/internal/ui"
)

// FormPrompter asks questions with huh forms. Each question runs as its
// own form so that the select viewport never scrolls options out of view.
type FormPrompter struct {
	in    io.Reader
	out   io.Writer
	theme *ui.Theme
}

// NewFormPrompter creates a FormPrompter on the given terminal streams.
func NewFormPrompter(in io.Reader, out io.Writer, theme *ui.Theme) *FormPrompter {
	return &FormPrompter{in: in, out: out, theme: theme}
}

// Run asks every question in order.
func (p *FormPrompter) Run(ctx context.Context, questions []Question) (Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	theme := newWizardTheme(p.theme)
	answers := make(Answers, len(questions))
	for i := range questions {
		q := &questions[i]
		field, read := buildField(q)

		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithInput(p.in).
			WithOutput(p.out)
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		answers[q.ID] = read()
	}
	return answers, nil
}

// buildField returns the huh field for q and a function reading the
// answer after the form completes.
func buildField(q *Question) (huh.Field, func() string) {
	switch q.Type {
	case QuestionTypeSelect:
		selected := q.Options[q.defaultIndex()].Value
		opts := make([]huh.Option[string], len(q.Options))
		for i, o := range q.Options {
			opts[i] = huh.NewOption(optionKey(o), o.Value)
		}
		sel := huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(opts...).
			Validate(selectValidator(q)).
			Value(&selected)
		return sel, func() string { return selected }

	case QuestionTypeConfirm:
		value := q.Default == "true"
		c := huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&value)
		return c, func() string { return strconv.FormatBool(value) }

	default:
		value := ""
		normalized := ""
		validate := inputValidator(q, &normalized)
		in := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Placeholder(q.Default).
			Validate(validate).
			Value(&value)
		return in, func() string {
			if normalized == "" {
				_ = validate(value)
			}
			return normalized
		}
	}
}

func optionKey(o Option) string {
	key := o.Label
	if o.Desc != "" {
		key += " - " + o.Desc
	}
	if o.Planned {
		key += " (planned)"
	}
	return key
}

// selectValidator rejects planned options, the same way the line prompter does.
func selectValidator(q *Question) func(string) error {
	return func(v string) error {
		for _, o := range q.Options {
			if o.Value == v && o.Planned {
				return errors.New(plannedMessage(o))
			}
		}
		return nil
	}
}

// inputValidator applies the default to empty input, then q.Validate. The
// accepted value is stored in *out.
func inputValidator(q *Question, out *string) func(string) error {
	return func(raw string) error {
		v := strings.TrimSpace(raw)
		if v == "" {
			v = q.Default
		}
		if q.Validate != nil {
			normalized, err := q.Validate(v)
			if err != nil {
				return err
			}
			v = normalized
		}
		*out = v
		return nil
	}
}

// newWizardTheme maps the teehex palette onto a huh theme.
func newWizardTheme(t *ui.Theme) *huh.Theme {
	th := huh.ThemeBase()
	if t.NoColor {
		return th
	}

	primary := lipgloss.AdaptiveColor{Light: "#0F766E", Dark: t.Colors.Primary}
	secondary := lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: t.Colors.Secondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: t.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: t.Colors.Error}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: t.Colors.Muted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: t.Colors.Border}

	th.Focused.Base = th.Focused.Base.BorderForeground(border)
	th.Focused.Card = th.Focused.Base
	th.Focused.Title = th.Focused.Title.Foreground(primary).Bold(true)
	th.Focused.Description = th.Focused.Description.Foreground(muted)
	th.Focused.ErrorIndicator = th.Focused.ErrorIndicator.Foreground(red)
	th.Focused.ErrorMessage = th.Focused.ErrorMessage.Foreground(red)
	th.Focused.SelectSelector = th.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	th.Focused.SelectedOption = th.Focused.SelectedOption.Foreground(green)
	th.Focused.TextInput.Cursor = th.Focused.TextInput.Cursor.Foreground(primary)
	th.Focused.TextInput.Placeholder = th.Focused.TextInput.Placeholder.Foreground(muted)
	th.Focused.TextInput.Prompt = th.Focused.TextInput.Prompt.Foreground(secondary)
	th.Focused.FocusedButton = th.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	th.Focused.Next = th.Focused.FocusedButton

	th.Blurred = th.Focused
	th.Blurred.Base = th.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	th.Blurred.Card = th.Blurred.Base
	th.Blurred.NextIndicator = lipgloss.NewStyle()
	th.Blurred.PrevIndicator = lipgloss.NewStyle()

	th.Group.Title = th.Focused.Title
	th.Group.Description = th.Focused.Description
	return th
}
