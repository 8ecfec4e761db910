// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpmc provides a fixed-capacity, lock-free, multi-producer
// multi-consumer FIFO queue.
//
// The queue follows Dmitry Vyukov's bounded MPMC algorithm: a ring of
// slots, each carrying a sequence number that records where the slot is in
// its reuse cycle, and two monotonically increasing cursors claimed with
// compare-and-swap. Producers and consumers never take a lock, never wait
// on each other and never inspect each other's state before acting.
//
// # Quick Start
//
//	q, err := mpmc.New[Event](1024)
//	if err != nil {
//	    return err // capacity < 1
//	}
//
//	// Enqueue (non-blocking)
//	ev := Event{ID: 1}
//	if err := q.Enqueue(&ev); mpmc.IsFull(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	got, err := q.Dequeue()
//	if mpmc.IsEmpty(err) {
//	    // Queue is empty - try again later
//	}
//
// Builder API:
//
//	q, err := mpmc.Build[Event](mpmc.NewBuilder(1000))               // capacity 1000
//	q, err := mpmc.Build[Event](mpmc.NewBuilder(1000).RoundToPow2()) // capacity 1024
//
// # Slot Protocol
//
// Each slot cycles through free → claimed for write → published → claimed
// for read → free, one full revolution of the ring later. A producer at
// cursor position pos looks at slot pos mod capacity:
//
//	slot free for pos         claim pos by CAS on the enqueue cursor
//	slot one revolution late  queue is full, return ErrFull
//	slot already past pos     another producer won, reload and retry
//
// After winning, the producer writes the value and publishes it with a
// release store of the slot sequence. Consumers run the mirror protocol on
// the dequeue cursor and free the slot for position pos+capacity. A
// sequence value can only repeat after capacity positions have been
// consumed, which rules out ABA without hazard pointers or epochs.
//
// Per-producer order is preserved: values enqueued by one goroutine are
// dequeued in that order. Values enqueued concurrently by different
// producers are ordered only by their cursor claims.
//
// # Error Handling
//
// Full and empty are control flow signals, not failures. [ErrFull] and
// [ErrEmpty] both unwrap to [ErrWouldBlock], which is sourced from
// [code.hybscloud.com/iox] for ecosystem consistency. The queue never
// retries across calls; backoff belongs to the caller:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !mpmc.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// For semantic error classification (delegates to iox):
//
//	mpmc.IsWouldBlock(err)  // true if queue full or empty
//	mpmc.IsFull(err)        // true only for ErrFull
//	mpmc.IsEmpty(err)       // true only for ErrEmpty
//	mpmc.IsSemantic(err)    // true if control flow signal
//	mpmc.IsNonFailure(err)  // true if nil or would-block
//
// [ErrInvalidCapacity] is returned by [New] and [Build] for capacity < 1.
// A slot sequence outside its valid phases indicates broken memory
// ordering and panics; it is not a recoverable condition.
//
// # Capacity and Length
//
// Capacity is fixed at construction and may be any value >= 1. Power of 2
// capacities select slots with a mask, others with a modulo.
//
// Len, IsEmpty and IsFull are advisory. They read both cursors at slightly
// different instants and may be stale by the time they return. Check the
// error from Enqueue or Dequeue instead of calling them first.
//
// # Payload Size
//
// Every slot is padded with [cpu.CacheLinePad] so that adjacent slots do
// not share a cache line. Values wider than about one cache line stretch
// every slot over several lines and are copied on both sides; queue a
// pointer instead:
//
//	q := mpmc.MustNew[*Frame](256)
//
// Ownership of a value passes to the queue on Enqueue and to the consumer
// on Dequeue. The slot is reset to the zero value on Dequeue, so the queue
// does not keep referenced objects alive.
//
// # Race Detection
//
// Slot payloads are plain fields ordered through the acquire/release slot
// sequence. Go's race detector does not observe that happens-before edge
// and may report false positives. Concurrent payload stress tests are
// skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause instructions
// and [golang.org/x/sys/cpu] for cache line padding.
package mpmc
