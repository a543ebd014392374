// Package navigator walks the template tree one menu level at a time.
//
// The walk is a small state machine. Step is pure: given the current State
// and what the user did (picked an entry or canceled), it returns the next
// State, the resolved leaf, or Exited. Navigate drives Step with a Chooser
// that renders each level and reports the user's pick.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gorewood/sprout/internal/config"
	"github.com/gorewood/sprout/internal/prompt"
)

// ErrExited is returned by Navigate when the user cancels at the root menu.
var ErrExited = errors.New("template selection canceled")

// Title is the prompt shown above every menu level.
const Title = "Pick a template"

// Chooser presents a list of choices and returns the picked index.
// It returns prompt.ErrCanceled when the user backs out without picking.
type Chooser interface {
	Choose(ctx context.Context, title string, choices []prompt.Choice) (int, error)
}

// Kind tells what a Step produced.
type Kind int

const (
	// Continue means keep browsing with Result.State.
	Continue Kind = iota
	// Resolved means Result.Template is the chosen leaf.
	Resolved
	// Exited means the user canceled at the root.
	Exited
)

func (k Kind) String() string {
	switch k {
	case Continue:
		return "continue"
	case Resolved:
		return "resolved"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a user action on the current level.
type Event struct {
	Canceled bool
	Index    int
}

// Selected is the event for picking entry i of the current level.
func Selected(i int) Event { return Event{Index: i} }

// Canceled is the event for backing out of the current level.
func Canceled() Event { return Event{Canceled: true} }

// State is the browsing position: the level on screen, the names of the
// groups entered to reach it, and the parent levels to return to.
type State struct {
	Level []config.Template
	Path  []string
	Stack Stack
}

// Start returns the initial state for a template tree.
func Start(templates []config.Template) State {
	return State{Level: templates}
}

// Result is the outcome of a Step.
type Result struct {
	Kind     Kind
	State    State
	Template *config.Template
}

// Step applies ev to state. Picking a leaf resolves it, picking a group
// descends into its children, canceling returns to the enclosing level or
// exits at the root. A picked node that is neither a leaf nor a group yields a
// *config.BadTemplateError.
func Step(state State, ev Event) (Result, error) {
	if ev.Canceled {
		parent, rest, ok := state.Stack.Pop()
		if !ok {
			return Result{Kind: Exited}, nil
		}
		return Result{Kind: Continue, State: State{
			Level: parent,
			Path:  state.Path[:len(state.Path)-1:len(state.Path)-1],
			Stack: rest,
		}}, nil
	}

	if ev.Index < 0 || ev.Index >= len(state.Level) {
		return Result{}, fmt.Errorf("selection %d out of range [0,%d)", ev.Index, len(state.Level))
	}
	picked := &state.Level[ev.Index]
	if err := checkNode(picked, state.Path); err != nil {
		return Result{}, err
	}

	if picked.IsLeaf() {
		return Result{Kind: Resolved, Template: picked}, nil
	}

	path := make([]string, len(state.Path), len(state.Path)+1)
	copy(path, state.Path)
	return Result{Kind: Continue, State: State{
		Level: picked.Children,
		Path:  append(path, picked.Name),
		Stack: state.Stack.Push(state.Level),
	}}, nil
}

// CheckLevel verifies every node of a level before it is displayed.
// An empty level is reported as a bad template as well.
func CheckLevel(level []config.Template, path []string) error {
	if len(level) == 0 {
		return &config.BadTemplateError{
			Name:   "templates",
			Path:   strings.Join(path, "/"),
			Reason: "no templates to choose from",
		}
	}
	for i := range level {
		if err := checkNode(&level[i], path); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(tmpl *config.Template, path []string) error {
	err := tmpl.Check()
	var bad *config.BadTemplateError
	if errors.As(err, &bad) {
		bad.Path = strings.Join(append(append([]string{}, path...), tmpl.Name), "/")
	}
	return err
}

// Choices renders a level as prompt choices, keeping order.
func Choices(level []config.Template) []prompt.Choice {
	choices := make([]prompt.Choice, len(level))
	for i, tmpl := range level {
		choices[i] = prompt.Choice{
			Label: tmpl.Name,
			Color: tmpl.Color,
			Hint:  tmpl.Description,
		}
	}
	return choices
}

// Navigate runs the menu until a leaf is picked. It returns ErrExited when
// the user cancels at the root, and any non-cancel Chooser error unchanged.
func Navigate(ctx context.Context, templates []config.Template, chooser Chooser) (*config.Template, error) {
	state := Start(templates)
	for {
		if err := CheckLevel(state.Level, state.Path); err != nil {
			return nil, err
		}

		ev, err := choose(ctx, chooser, state)
		if err != nil {
			return nil, err
		}

		res, err := Step(state, ev)
		if err != nil {
			return nil, err
		}

		switch res.Kind {
		case Resolved:
			slog.Debug("template resolved", "template", res.Template.Name, "url", res.Template.URL)
			return res.Template, nil
		case Exited:
			return nil, ErrExited
		case Continue:
			state = res.State
		}
	}
}

func choose(ctx context.Context, chooser Chooser, state State) (Event, error) {
	title := Title
	if len(state.Path) > 0 {
		title += " (" + strings.Join(state.Path, " › ") + ")"
	}

	idx, err := chooser.Choose(ctx, title, Choices(state.Level))
	if errors.Is(err, prompt.ErrCanceled) {
		return Canceled(), nil
	}
	if err != nil {
		return Event{}, err
	}
	return Selected(idx), nil
}
