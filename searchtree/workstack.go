package searchtree

import "github.com/emirpasic/gods/stacks/arraystack"

// workStack is the last-in-first-processed queue of pending states that an
// iteration still has to derive before it has a complete formula. It is a
// thin, typed wrapper over gods' array-backed stack, which stores values as
// interface{} internally.
type workStack[S any] struct {
	inner *arraystack.Stack
}

func newWorkStack[S any](root S) *workStack[S] {
	s := &workStack[S]{inner: arraystack.New()}
	s.Push(root)
	return s
}

func (s *workStack[S]) Push(state S) {
	s.inner.Push(state)
}

// PushAll pushes states in order, so the last one ends up on top and is
// popped first.
func (s *workStack[S]) PushAll(states []S) {
	for _, st := range states {
		s.Push(st)
	}
}

func (s *workStack[S]) Pop() (S, bool) {
	v, ok := s.inner.Pop()
	if !ok {
		var zero S
		return zero, false
	}
	return v.(S), true
}

// Peek returns the top state without removing it.
func (s *workStack[S]) Peek() (S, bool) {
	v, ok := s.inner.Peek()
	if !ok {
		var zero S
		return zero, false
	}
	return v.(S), true
}

func (s *workStack[S]) Empty() bool {
	return s.inner.Empty()
}
