// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpmc

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// slot is a single storage cell of the ring.
//
// seq encodes the phase of the slot for the position it currently serves.
// The low bit separates the two phases so that capacity 1 stays unambiguous:
//
//	2*pos     free, awaiting the producer of pos
//	2*pos+1   published, awaiting the consumer of pos
//
// The consumer of pos moves seq to 2*(pos+capacity), the free phase one
// full revolution later. seq never decreases.
type slot[T any] struct {
	seq  atomix.Uint64
	data T
	_    cpu.CacheLinePad // Keep the next slot's seq off this line
}

// ring is the fixed-length slot array. It is allocated once and never
// resized.
type ring[T any] struct {
	slots    []slot[T]
	capacity uint64
	span     int64 // 2*capacity: one revolution in stored sequence units
	mask     uint64
	pow2     bool
}

func newRing[T any](capacity uint64) ring[T] {
	r := ring[T]{
		slots:    make([]slot[T], capacity),
		capacity: capacity,
		span:     int64(capacity) << 1,
	}
	if capacity&(capacity-1) == 0 {
		r.mask = capacity - 1
		r.pow2 = true
	}

	for i := range capacity {
		r.slots[i].seq.StoreRelaxed(freeSeq(i))
	}

	return r
}

// at returns the slot serving logical position pos.
func (r *ring[T]) at(pos uint64) *slot[T] {
	if r.pow2 {
		return &r.slots[pos&r.mask]
	}
	return &r.slots[pos%r.capacity]
}

// freeSeq is the stored sequence of a slot ready for the producer of pos.
func freeSeq(pos uint64) uint64 {
	return pos << 1
}

// publishedSeq is the stored sequence of a slot holding the value of pos.
func publishedSeq(pos uint64) uint64 {
	return pos<<1 | 1
}

// logicalSeq maps a stored sequence to the per-slot counter of the
// classic formulation: i at construction, +1 on publish, +capacity per
// full revolution.
func logicalSeq(stored uint64) uint64 {
	return (stored + 1) >> 1
}

// checkProducerLag validates a negative enqueue difference.
// A slot one revolution behind the producer is either still being written
// by the producer of pos-capacity (-span) or holds its published value
// (-span+1). Anything else means the ordering protocol was broken.
func (r *ring[T]) checkProducerLag(diff int64, pos, seq uint64) {
	if diff != -r.span && diff != -r.span+1 {
		panic(phaseViolation("enqueue", pos, seq))
	}
}

// checkConsumerLag validates a negative dequeue difference.
// The slot is either free for pos and not yet published (-1) or still
// being emptied by the consumer of pos-capacity (-span).
func (r *ring[T]) checkConsumerLag(diff int64, pos, seq uint64) {
	if diff != -1 && diff != -r.span {
		panic(phaseViolation("dequeue", pos, seq))
	}
}

func phaseViolation(op string, pos, seq uint64) string {
	return fmt.Sprintf("mpmc: %s at position %d observed slot sequence %d outside its valid phases", op, pos, seq)
}
