package navigator

import "github.com/gorewood/sprout/internal/config"

// Stack holds the parent menu levels of the level on screen. It is a value
// type: Push and Pop return a new Stack and never modify the receiver.
type Stack struct {
	levels [][]config.Template
}

// Len returns the number of saved levels.
func (s Stack) Len() int {
	return len(s.levels)
}

// Push returns a stack with level on top.
func (s Stack) Push(level []config.Template) Stack {
	levels := make([][]config.Template, len(s.levels), len(s.levels)+1)
	copy(levels, s.levels)
	return Stack{levels: append(levels, level)}
}

// Pop returns the top level and the stack below it. ok is false when the
// stack is empty.
func (s Stack) Pop() (top []config.Template, rest Stack, ok bool) {
	n := len(s.levels)
	if n == 0 {
		return nil, s, false
	}
	return s.levels[n-1], Stack{levels: s.levels[: n-1 : n-1]}, true
}
