// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpmc_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/mpmc"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Uncontended
// =============================================================================

func BenchmarkQueue_SingleOp(b *testing.B) {
	q := mpmc.MustNew[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

// BenchmarkQueue_Indexing compares mask and modulo slot selection.
func BenchmarkQueue_Indexing(b *testing.B) {
	for _, capacity := range []int{1000, 1024} {
		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			q := mpmc.MustNew[int](capacity)

			b.ResetTimer()
			for i := range b.N {
				v := i
				q.Enqueue(&v)
				q.Dequeue()
			}
		})
	}
}

func BenchmarkQueue_PointerPayload(b *testing.B) {
	type frame struct {
		buf [1024]byte
	}
	q := mpmc.MustNew[*frame](1024)
	f := &frame{}

	b.ResetTimer()
	for range b.N {
		q.Enqueue(&f)
		q.Dequeue()
	}
}

// =============================================================================
// Contended
// =============================================================================

// BenchmarkQueue_Parallel has every goroutine alternate Enqueue and Dequeue.
func BenchmarkQueue_Parallel(b *testing.B) {
	q := mpmc.MustNew[int](1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		v := 1
		for pb.Next() {
			q.Enqueue(&v)
			q.Dequeue()
		}
	})
}

// BenchmarkQueue_ProducersConsumers measures throughput with dedicated
// producer and consumer goroutines on a small ring.
func BenchmarkQueue_ProducersConsumers(b *testing.B) {
	for _, capacity := range []int{16, 1024} {
		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			pairs := max(runtime.GOMAXPROCS(0)/2, 1)
			q := mpmc.MustNew[int](capacity)
			perProducer := b.N/pairs + 1

			var wg sync.WaitGroup
			b.ResetTimer()
			for range pairs {
				wg.Add(2)
				go func() {
					defer wg.Done()
					for i := range perProducer {
						v := i
						sw := spin.Wait{}
						for q.Enqueue(&v) != nil {
							sw.Once()
						}
					}
				}()
				go func() {
					defer wg.Done()
					for range perProducer {
						sw := spin.Wait{}
						for {
							if _, err := q.Dequeue(); err == nil {
								break
							}
							sw.Once()
						}
					}
				}()
			}
			wg.Wait()
		})
	}
}
