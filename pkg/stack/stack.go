// Package stack provides the LIFO container used by the expression
// validators, converters and evaluators.
package stack

import "github.com/pkg/errors"

// ErrUnderflow is returned when popping or peeking an empty stack.
var ErrUnderflow = errors.New("stack underflow")

// Stack is a growable LIFO container.
// This is not thread-safe and should only be accessed by a single goroutine.
type Stack[T any] struct {
	items []T
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrUnderflow
	}

	top := len(s.items) - 1
	v := s.items[top]
	// release the reference so that popped values can be collected
	s.items[top] = zero
	s.items = s.items[:top]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrUnderflow
	}

	return s.items[len(s.items)-1], nil
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}
