package xycoll

import (
	"fmt"
	"iter"
	"sync"

	"github.com/gammazero/deque"
)

// Queue is a generic, concurrency-safe FIFO queue. Items are enqueued at the
// tail and dequeued from the head. The backing deque is owned exclusively by
// the queue and mutated only while its mutex is held, so every method is safe
// for concurrent use. The zero value is not ready for use; construct via
// NewQueue or NewQueueWithCapacity.
type Queue[T comparable] struct {
	mu sync.Mutex
	d  *deque.Deque[T]
}

// NewQueue creates a new empty queue.
// All exported methods are safe for concurrent use.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{d: deque.New[T]()}
}

// NewQueueWithCapacity creates a new queue with the given initial capacity.
// Capacity preallocates internal storage; behavior is otherwise identical to
// NewQueue. A negative capacity is treated as zero.
func NewQueueWithCapacity[T comparable](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{d: deque.New[T](capacity)}
}

// Enqueue appends v to the tail. It always succeeds.
// Amortized complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.PushBack(v)
}

// EnqueueMany appends items to the tail in the given order. The whole append
// happens under one lock acquisition, so no concurrent Dequeue can observe a
// partial batch. A nil or empty argument is a no-op.
// Amortized complexity: O(k) for k items.
func (q *Queue[T]) EnqueueMany(items ...T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, v := range items {
		q.d.PushBack(v)
	}
}

// Dequeue removes and returns the head value.
// Returns ErrEmpty when the queue is empty. Amortized complexity: O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.d.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.d.PopFront(), nil
}

// DequeueN removes and returns count values from the head, in head-to-tail
// order. Returns ErrInvalidCount when count is not positive, and ErrEmpty
// when the queue holds fewer than count elements; in both cases the queue is
// left unchanged. Complexity: O(count).
func (q *Queue[T]) DequeueN(count int) ([]T, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if count > q.d.Len() {
		return nil, ErrEmpty
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, q.d.PopFront())
	}
	return out, nil
}

// Peek returns the head value without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.d.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.d.Front(), true
}

// Len returns the number of elements currently queued.
// Complexity: O(1). Safe for concurrent use.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.Len()
}

// IsEmpty reports whether the queue is empty.
// Complexity: O(1). Equivalent to Len() == 0.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Contains reports whether v is currently present in the queue.
// Complexity: O(n).
func (q *Queue[T]) Contains(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.d.Index(func(x T) bool { return x == v }) >= 0
}

// Remove deletes the first occurrence of v from the queue if present.
// Returns true if removed. Complexity: O(n).
func (q *Queue[T]) Remove(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	i := q.d.Index(func(x T) bool { return x == v })
	if i < 0 {
		return false
	}
	q.d.Remove(i)
	return true
}

// Clear removes all elements from the queue.
// Complexity: O(n) to release element references.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.Clear()
}

// Reverse reverses the queue in place: the current tail becomes the head.
// Complexity: O(n).
func (q *Queue[T]) Reverse() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, j := 0, q.d.Len()-1; i < j; i, j = i+1, j-1 {
		a, b := q.d.At(i), q.d.At(j)
		q.d.Set(i, b)
		q.d.Set(j, a)
	}
}

// Snapshot returns a copy of the queue's contents in head-to-tail order.
// The returned slice is independent of the queue. Complexity: O(n).
func (q *Queue[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Restore replaces the queue's contents with items, preserving their order
// (items[0] becomes the new head). The slice is copied; the caller keeps
// ownership of it. Complexity: O(n).
func (q *Queue[T]) Restore(items []T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.d.Clear()
	for _, v := range items {
		q.d.PushBack(v)
	}
}

// All returns an iterator over the queue's contents in head-to-tail order.
// The view is captured atomically when All is called; the iterator walks that
// stable snapshot and never observes, nor holds a lock against, concurrent
// mutation.
func (q *Queue[T]) All() iter.Seq[T] {
	q.mu.Lock()
	items := q.snapshotLocked()
	q.mu.Unlock()
	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Use runs fn with the queue and clears it when fn returns, whether fn
// succeeds, returns an error, or panics. The error from fn is returned as is.
func (q *Queue[T]) Use(fn func(*Queue[T]) error) error {
	defer q.Clear()
	return fn(q)
}

// String returns a debug representation of the queue, head first.
func (q *Queue[T]) String() string {
	return fmt.Sprintf("Queue%v", q.Snapshot())
}

// snapshotLocked copies the contents head-to-tail. Caller must hold q.mu.
func (q *Queue[T]) snapshotLocked() []T {
	out := make([]T, q.d.Len())
	for i := range out {
		out[i] = q.d.At(i)
	}
	return out
}
