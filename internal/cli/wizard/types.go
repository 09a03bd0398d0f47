// Package wizard asks for the generation options that were not given on
// the command line, through a huh form on a terminal or numbered line
// prompts otherwise.
package wizard

import (
	"errors"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeConfirm is a yes/no question. Answers are "true" or "false".
	QuestionTypeConfirm
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Select, Confirm or Input
	Title       string       // Question title
	Description string       // Additional description
	Options     []Option     // Options for select questions
	Default     string       // Default value; for selects, an option value
	// Validate normalizes and checks input answers. It may be nil.
	Validate func(string) (string, error)
}

// Option represents a selectable option.
type Option struct {
	Label   string // Display label
	Value   string // Actual value stored
	Desc    string // Optional description
	Planned bool   // Listed but not selectable yet
}

// Answers maps question IDs to answers.
type Answers map[string]string

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInputClosed is returned when input ends before every question is answered.
	ErrInputClosed = errors.New("input closed before all questions were answered")
)

// defaultIndex returns the index of the default option, or 0.
func (q *Question) defaultIndex() int {
	for i, o := range q.Options {
		if o.Value == q.Default {
			return i
		}
	}
	return 0
}

func plannedMessage(o Option) string {
	return o.Label + " is planned and not available yet"
}
