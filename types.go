// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpmc

// ProducerConsumer is the combined producer-consumer interface for a
// bounded FIFO queue.
//
// Both operations are non-blocking and return a would-block error
// ([ErrFull] or [ErrEmpty]) when they cannot proceed. Retry policy
// belongs to the caller.
//
// Example:
//
//	q := mpmc.MustNew[int](1024)
//
//	val := 42
//	if err := q.Enqueue(&val); mpmc.IsFull(err) {
//	    // Handle full queue
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type ProducerConsumer[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs on the
// way in. The queue stores a copy of the pointed-to value, so the original
// can be reused after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrFull if the queue is full.
	// Safe for concurrent use by multiple producers.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value and the slot is cleared so the queue
// holds no reference to it afterwards.
//
// For types wider than a cache line, queue pointers (Queue[*T]) instead so
// each slot stays on its own line.
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrEmpty) if the queue is empty.
	// Safe for concurrent use by multiple consumers.
	Dequeue() (T, error)
}

// Sizer exposes best-effort occupancy diagnostics.
//
// Values are computed from an instantaneous cursor difference and may be
// stale the instant they are read. Do not use them to decide whether an
// Enqueue or Dequeue will succeed; call the operation and check the error.
type Sizer interface {
	Len() int
	Cap() int
	IsEmpty() bool
	IsFull() bool
}

var (
	_ ProducerConsumer[int] = (*Queue[int])(nil)
	_ Sizer                 = (*Queue[int])(nil)
)
