// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpmc

// Options configures queue creation.
type Options struct {
	capacity int

	// Round capacity up to the next power of 2 (mask indexing)
	roundToPow2 bool
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Exact capacity, modulo indexing
//	q, err := mpmc.Build[Event](mpmc.NewBuilder(1000))
//
//	// Capacity 1024, mask indexing
//	q, err := mpmc.Build[Event](mpmc.NewBuilder(1000).RoundToPow2())
type Builder struct {
	opts Options
}

// NewBuilder creates a queue builder with the given capacity.
// Capacity is validated by Build.
func NewBuilder(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// RoundToPow2 rounds the capacity up to the next power of 2, so that slot
// selection is a mask instead of a modulo.
//
// For example, capacity=4 stays 4 and capacity=1000 becomes 1024.
func (b *Builder) RoundToPow2() *Builder {
	b.opts.roundToPow2 = true
	return b
}

// Capacity returns the capacity a queue built now would have.
func (b *Builder) Capacity() int {
	if b.opts.roundToPow2 {
		return roundToPow2(b.opts.capacity)
	}
	return b.opts.capacity
}

// Build creates a Queue[T] from the builder configuration.
// Returns ErrInvalidCapacity if the configured capacity < 1.
func Build[T any](b *Builder) (*Queue[T], error) {
	return New[T](b.Capacity())
}

// MustBuild is like Build but panics on an invalid configuration.
func MustBuild[T any](b *Builder) *Queue[T] {
	q, err := Build[T](b)
	if err != nil {
		panic(err)
	}
	return q
}

// roundToPow2 rounds n up to the next power of 2.
// Values below 1 are returned unchanged so New can reject them.
func roundToPow2(n int) int {
	if n < 1 {
		return n
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
