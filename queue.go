// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpmc

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// Queue is a CAS-based multi-producer multi-consumer bounded FIFO queue.
//
// Based on Dmitry Vyukov's bounded MPMC queue. Per-slot sequence numbers
// provide:
//   - Lock-free Enqueue and Dequeue without hazard pointers or epochs
//   - ABA safety: a sequence value repeats only after a full revolution
//   - Exactly capacity physical slots, allocated once
//
// Any number of goroutines may call Enqueue and Dequeue concurrently.
// A Queue must not be copied after first use.
//
// Memory: capacity slots, each padded to its own cache line.
type Queue[T any] struct {
	_    cpu.CacheLinePad
	tail atomix.Uint64 // Enqueue cursor
	_    cpu.CacheLinePad
	head atomix.Uint64 // Dequeue cursor
	_    cpu.CacheLinePad
	ring ring[T]
}

// New creates a queue holding at most capacity elements.
// Capacity is used as given; see [Builder.RoundToPow2] for mask indexing.
// Returns ErrInvalidCapacity if capacity < 1.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return newQueue[T](uint64(capacity)), nil
}

// MustNew is like New but panics if capacity < 1.
func MustNew[T any](capacity int) *Queue[T] {
	q, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

func newQueue[T any](capacity uint64) *Queue[T] {
	return &Queue[T]{ring: newRing[T](capacity)}
}

// Enqueue copies *elem into the queue.
// Returns ErrFull if every slot holds an unconsumed element.
func (q *Queue[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadRelaxed()
		s := q.ring.at(tail)
		seq := s.seq.LoadAcquire()
		diff := int64(seq - freeSeq(tail))

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				s.data = *elem
				s.seq.StoreRelease(publishedSeq(tail))
				return nil
			}
		} else if diff < 0 {
			q.ring.checkProducerLag(diff, tail, seq)
			return ErrFull
		}
		// Another producer claimed tail first
		sw.Once()
	}
}

// Dequeue removes and returns the oldest published element.
// The slot is reset to the zero value so the queue keeps no reference.
// Returns (zero-value, ErrEmpty) if nothing is published at the head.
func (q *Queue[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadRelaxed()
		s := q.ring.at(head)
		seq := s.seq.LoadAcquire()
		diff := int64(seq - publishedSeq(head))

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := s.data
				var zero T
				s.data = zero
				s.seq.StoreRelease(freeSeq(head + q.ring.capacity))
				return elem, nil
			}
		} else if diff < 0 {
			q.ring.checkConsumerLag(diff, head, seq)
			var zero T
			return zero, ErrEmpty
		}
		sw.Once()
	}
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return int(q.ring.capacity)
}

// Len returns the number of claimed positions not yet consumed.
//
// The result is advisory: under concurrent access it may be stale by the
// time it is returned. It counts elements whose producer has claimed a slot
// but not yet published, and is clamped to [0, Cap()].
func (q *Queue[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail <= head {
		return 0
	}
	n := tail - head
	if n > q.ring.capacity {
		n = q.ring.capacity
	}
	return int(n)
}

// IsEmpty reports whether Len() == 0. Advisory, like Len.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether Len() == Cap(). Advisory, like Len.
func (q *Queue[T]) IsFull() bool {
	return q.Len() == q.Cap()
}
