package xycoll

import (
	"fmt"
)

// Example showing basic FIFO usage.
func ExampleQueue() {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

// Example for bulk enqueue and bulk dequeue.
func ExampleQueue_DequeueN() {
	q := NewQueue[string]()
	q.EnqueueMany("a", "b", "c", "d")
	batch, _ := q.DequeueN(2)
	fmt.Println(batch)
	fmt.Println(q.Len())
	// Output:
	// [a b]
	// 2
}

// Example for Snapshot and Restore.
func ExampleQueue_Restore() {
	q := NewQueue[int]()
	q.EnqueueMany(1, 2, 3)
	snap := q.Snapshot()
	q.Clear()
	q.Restore(snap)
	fmt.Println(q)
	// Output:
	// Queue[1 2 3]
}

// Example for Reverse.
func ExampleQueue_Reverse() {
	q := NewQueue[string]()
	q.EnqueueMany("a", "b", "c")
	q.Reverse()
	for v := range q.All() {
		fmt.Println(v)
	}
	// Output:
	// c
	// b
	// a
}

// Example for scoped use: the queue is cleared when fn returns.
func ExampleQueue_Use() {
	q := NewQueue[int]()
	_ = q.Use(func(q *Queue[int]) error {
		q.EnqueueMany(1, 2, 3)
		fmt.Println(q.Len())
		return nil
	})
	fmt.Println(q.Len())
	// Output:
	// 3
	// 0
}

// Example showing basic LIFO usage.
func ExampleStack() {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	for !s.IsEmpty() {
		v, _ := s.Pop()
		fmt.Println(v)
	}
	// Output:
	// 3
	// 2
	// 1
}

// Example for SwapTop: after pushing 1 then 2, the stack reads [1,2] with 2
// on top; swapping leaves [2,1] with 1 on top.
func ExampleStack_SwapTop() {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	_ = s.SwapTop()
	fmt.Println(s)
	// Output:
	// Stack[2 1]
}

// Example for DuplicateTop.
func ExampleStack_DuplicateTop() {
	s := NewStack[string]()
	s.PushMany("x", "y")
	_ = s.DuplicateTop()
	fmt.Println(s)
	// Output:
	// Stack[x y y]
}

// Example for top-to-bottom iteration.
func ExampleStack_All() {
	s := NewStack[string]()
	s.PushMany("bottom", "middle", "top")
	for v := range s.All() {
		fmt.Println(v)
	}
	// Output:
	// top
	// middle
	// bottom
}

// Example for PopN: values come out topmost first.
func ExampleStack_PopN() {
	s := NewStack[int]()
	s.PushMany(1, 2, 3, 4)
	batch, _ := s.PopN(2)
	fmt.Println(batch)
	// Output:
	// [4 3]
}
