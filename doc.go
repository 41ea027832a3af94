// Package xycoll provides generic, concurrency-safe linear containers: a
// FIFO Queue and a LIFO Stack.
//
// Both containers are backed by a double-ended queue and guarded by a single
// mutex: all exported methods use internal locking and may be called from
// multiple goroutines. Operations never block waiting for data; removal from
// an empty container fails immediately with ErrEmpty. Construct with NewQueue
// or NewStack (or their WithCapacity variants).
package xycoll
