// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent producer/consumer goroutines.
// These trigger false positives with Go's race detector because slot
// payloads are ordered through atomic sequences the detector cannot see.
// The examples are correct; they're excluded from race testing.

package mpmc_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/mpmc"
)

// Example_workerPool demonstrates a worker pool with multiple submitters
// and multiple workers sharing one queue.
func Example_workerPool() {
	type Job struct {
		ID    int
		Input int
	}

	jobs := mpmc.MustNew[Job](4)
	results := make([]int, 8)
	var wg sync.WaitGroup
	var completed atomix.Int32

	// Workers
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for completed.Load() < 8 {
				job, err := jobs.Dequeue()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				results[job.ID] = job.Input * job.Input
				completed.Add(1)
			}
		}()
	}

	// Submitters
	var subs sync.WaitGroup
	for s := range 2 {
		subs.Add(1)
		go func(base int) {
			defer subs.Done()
			backoff := iox.Backoff{}
			for i := base; i < 8; i += 2 {
				job := Job{ID: i, Input: i + 1}
				for jobs.Enqueue(&job) != nil {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(s)
	}

	subs.Wait()
	wg.Wait()

	for i, r := range results {
		fmt.Printf("Job %d: %d\n", i, r)
	}

	// Output:
	// Job 0: 1
	// Job 1: 4
	// Job 2: 9
	// Job 3: 16
	// Job 4: 25
	// Job 5: 36
	// Job 6: 49
	// Job 7: 64
}

// Example_fanIn demonstrates many producers feeding one consumer; order
// within each producer is preserved.
func Example_fanIn() {
	q := mpmc.MustNew[[2]int](8)

	var wg sync.WaitGroup
	for p := range 3 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for seq := range 4 {
				msg := [2]int{id, seq}
				for q.Enqueue(&msg) != nil {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(p)
	}

	next := make([]int, 3)
	inOrder := true
	backoff := iox.Backoff{}
	for received := 0; received < 12; {
		msg, err := q.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		if msg[1] != next[msg[0]] {
			inOrder = false
		}
		next[msg[0]]++
		received++
	}
	wg.Wait()

	fmt.Println("per-producer order preserved:", inOrder)

	// Output:
	// per-producer order preserved: true
}
