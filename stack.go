package xycoll

import (
	"fmt"
	"iter"
	"sync"

	"github.com/gammazero/deque"
)

// Stack is a generic, concurrency-safe LIFO stack. Items are pushed onto and
// popped from the top. Like Queue, it owns its backing deque exclusively and
// guards every operation with a single mutex. The zero value is not ready for
// use; construct via NewStack or NewStackWithCapacity.
type Stack[T comparable] struct {
	mu sync.Mutex
	d  *deque.Deque[T]
}

// NewStack creates a new empty stack.
// All exported methods are safe for concurrent use.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{d: deque.New[T]()}
}

// NewStackWithCapacity creates a new stack with the given initial capacity.
// A negative capacity is treated as zero.
func NewStackWithCapacity[T comparable](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{d: deque.New[T](capacity)}
}

// Push places v on top of the stack. It always succeeds.
// Amortized complexity: O(1).
func (s *Stack[T]) Push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.PushBack(v)
}

// PushMany pushes items in the given order, each successively becoming the
// new top (the last item ends up topmost). The whole batch happens under one
// lock acquisition. A nil or empty argument is a no-op.
// Amortized complexity: O(k) for k items.
func (s *Stack[T]) PushMany(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range items {
		s.d.PushBack(v)
	}
}

// Pop removes and returns the top value.
// Returns ErrEmpty when the stack is empty. Amortized complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.d.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.d.PopBack(), nil
}

// PopN removes and returns count values from the top, topmost first.
// Returns ErrInvalidCount when count is not positive, and ErrEmpty when the
// stack holds fewer than count elements; in both cases the stack is left
// unchanged. Complexity: O(count).
func (s *Stack[T]) PopN(count int) ([]T, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if count > s.d.Len() {
		return nil, ErrEmpty
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, s.d.PopBack())
	}
	return out, nil
}

// Peek returns the top value without removing it.
// The second result is false when the stack is empty. Complexity: O(1).
func (s *Stack[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.d.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.d.Back(), true
}

// Len returns the number of elements currently on the stack.
// Complexity: O(1). Safe for concurrent use.
func (s *Stack[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Len()
}

// IsEmpty reports whether the stack is empty.
// Complexity: O(1). Equivalent to Len() == 0.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// DuplicateTop pushes a copy of the current top value.
// Returns ErrEmpty when the stack is empty. Complexity: O(1).
func (s *Stack[T]) DuplicateTop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.d.Len() == 0 {
		return ErrEmpty
	}
	s.d.PushBack(s.d.Back())
	return nil
}

// SwapTop exchanges the two topmost values.
// Returns ErrEmpty when the stack holds fewer than two elements.
// Complexity: O(1).
func (s *Stack[T]) SwapTop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.d.Len()
	if n < 2 {
		return ErrEmpty
	}
	a, b := s.d.At(n-2), s.d.At(n-1)
	s.d.Set(n-2, b)
	s.d.Set(n-1, a)
	return nil
}

// Contains reports whether v is currently present on the stack.
// Complexity: O(n).
func (s *Stack[T]) Contains(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Index(func(x T) bool { return x == v }) >= 0
}

// Remove deletes the first occurrence of v, scanning from the bottom, if
// present. Returns true if removed. Complexity: O(n).
func (s *Stack[T]) Remove(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.d.Index(func(x T) bool { return x == v })
	if i < 0 {
		return false
	}
	s.d.Remove(i)
	return true
}

// Clear removes all elements from the stack.
// Complexity: O(n) to release element references.
func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Clear()
}

// Reverse reverses the stack in place: the current bottom becomes the top.
// Complexity: O(n).
func (s *Stack[T]) Reverse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, j := 0, s.d.Len()-1; i < j; i, j = i+1, j-1 {
		a, b := s.d.At(i), s.d.At(j)
		s.d.Set(i, b)
		s.d.Set(j, a)
	}
}

// Snapshot returns a copy of the stack's contents in bottom-to-top order.
// The returned slice is independent of the stack. Complexity: O(n).
func (s *Stack[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Restore replaces the stack's contents with items in bottom-to-top order
// (the last element of items becomes the new top). The slice is copied; the
// caller keeps ownership of it. Complexity: O(n).
func (s *Stack[T]) Restore(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Clear()
	for _, v := range items {
		s.d.PushBack(v)
	}
}

// All returns an iterator over the stack's contents in top-to-bottom order.
// The view is captured atomically when All is called; the iterator walks that
// stable snapshot and never observes, nor holds a lock against, concurrent
// mutation.
func (s *Stack[T]) All() iter.Seq[T] {
	s.mu.Lock()
	items := s.snapshotLocked()
	s.mu.Unlock()
	return func(yield func(T) bool) {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// Use runs fn with the stack and clears it when fn returns, whether fn
// succeeds, returns an error, or panics. The error from fn is returned as is.
func (s *Stack[T]) Use(fn func(*Stack[T]) error) error {
	defer s.Clear()
	return fn(s)
}

// String returns a debug representation of the stack, bottom first.
func (s *Stack[T]) String() string {
	return fmt.Sprintf("Stack%v", s.Snapshot())
}

// snapshotLocked copies the contents bottom-to-top. Caller must hold s.mu.
func (s *Stack[T]) snapshotLocked() []T {
	out := make([]T, s.d.Len())
	for i := range out {
		out[i] = s.d.At(i)
	}
	return out
}
