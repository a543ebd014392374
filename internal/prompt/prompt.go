// Package prompt renders the interactive terminal prompts used by sprout: a
// single-choice select list and a free-text input. Both report a user abort
// (esc or ctrl+c) as ErrCanceled so callers can tell it apart from real
// failures.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned when the user aborts a prompt without answering.
var ErrCanceled = errors.New("prompt canceled")

// Terminal runs prompts as bubbletea programs on the given streams.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal returns a Terminal reading from in and rendering to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{In: in, Out: out}
}

// Choose shows title with choices and returns the index of the selected one.
func (t *Terminal) Choose(ctx context.Context, title string, choices []Choice) (int, error) {
	if len(choices) == 0 {
		return -1, fmt.Errorf("select %q: no choices", title)
	}
	final, err := t.run(ctx, newSelectModel(title, choices))
	if err != nil {
		return -1, err
	}
	m, ok := final.(selectModel)
	if !ok || m.canceled || m.chosen < 0 {
		return -1, ErrCanceled
	}
	return m.chosen, nil
}

// Input asks for a line of free text. The answer is trimmed; it may be empty.
func (t *Terminal) Input(ctx context.Context, title string) (string, error) {
	final, err := t.run(ctx, newInputModel(title, ""))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok || m.canceled {
		return "", ErrCanceled
	}
	return m.value, nil
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}
