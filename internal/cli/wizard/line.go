package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/teehex/teehex/internal/ui"
)

// LinePrompter asks questions as numbered menus and plain prompts, one
// line of input per answer. It works on pipes and dumb terminals.
type LinePrompter struct {
	in    *bufio.Reader
	out   io.Writer
	theme *ui.Theme
}

// NewLinePrompter creates a LinePrompter reading from in.
func NewLinePrompter(in io.Reader, out io.Writer, theme *ui.Theme) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, theme: theme}
}

// Run asks every question in order.
func (p *LinePrompter) Run(ctx context.Context, questions []Question) (Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := make(Answers, len(questions))
	for i := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q := &questions[i]

		var (
			v   string
			err error
		)
		switch q.Type {
		case QuestionTypeSelect:
			v, err = p.askSelect(q)
		case QuestionTypeConfirm:
			v, err = p.askConfirm(q)
		default:
			v, err = p.askInput(q)
		}
		if err != nil {
			return nil, err
		}
		answers[q.ID] = v
	}
	return answers, nil
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) warn(msg string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.theme.SymWarning(), p.theme.Warn(msg))
}

func (p *LinePrompter) askSelect(q *Question) (string, error) {
	def := q.defaultIndex()

	_, _ = fmt.Fprintf(p.out, "\n%s\n", p.theme.Primary(q.Title))
	for i, o := range q.Options {
		line := fmt.Sprintf("  %d) %s", i+1, o.Label)
		if o.Desc != "" {
			line += p.theme.Muted(" - " + o.Desc)
		}
		switch {
		case o.Planned:
			line += p.theme.Muted(" (planned)")
		case i == def:
			line += p.theme.Success(" (default)")
		}
		_, _ = fmt.Fprintln(p.out, line)
	}

	for {
		_, _ = fmt.Fprintf(p.out, "Choose 1-%d [%d]: ", len(q.Options), def+1)
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			return q.Options[def].Value, nil
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(q.Options) {
			p.warn(fmt.Sprintf("Enter a number between 1 and %d.", len(q.Options)))
			continue
		}
		o := q.Options[n-1]
		if o.Planned {
			p.warn(plannedMessage(o) + ".")
			continue
		}
		return o.Value, nil
	}
}

func (p *LinePrompter) askConfirm(q *Question) (string, error) {
	def := q.Default == "true"
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", p.theme.Primary(q.Title), hint)
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		switch strings.ToLower(input) {
		case "":
			return strconv.FormatBool(def), nil
		case "y", "yes":
			return "true", nil
		case "n", "no":
			return "false", nil
		}
		p.warn("Answer y or n.")
	}
}

func (p *LinePrompter) askInput(q *Question) (string, error) {
	for {
		prompt := p.theme.Primary(q.Title)
		if q.Default != "" {
			prompt += " [" + q.Default + "]"
		}
		_, _ = fmt.Fprintf(p.out, "%s: ", prompt)

		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			input = q.Default
		}
		if q.Validate == nil {
			return input, nil
		}
		v, err := q.Validate(input)
		if err != nil {
			p.warn(err.Error())
			continue
		}
		return v, nil
	}
}
