// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpmc

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// Both [ErrFull] and [ErrEmpty] unwrap to ErrWouldBlock, so callers that
// only care about "try again later" can test for it alone:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if mpmc.IsWouldBlock(err) {
//	        backoff.Wait() // caller-owned backpressure
//	        continue
//	    }
//	    return err
//	}
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrFull is returned by Enqueue when every slot holds a published
	// value. It is a control flow signal, not a failure: the caller decides
	// whether to retry, drop the value or apply backpressure.
	ErrFull error = &wouldBlockError{msg: "mpmc: queue full"}

	// ErrEmpty is returned by Dequeue when no value is published at the
	// consumer position. Symmetric to ErrFull.
	ErrEmpty error = &wouldBlockError{msg: "mpmc: queue empty"}

	// ErrInvalidCapacity is returned by New and Build when capacity < 1.
	// No queue is produced.
	ErrInvalidCapacity = errors.New("mpmc: capacity must be >= 1")
)

// wouldBlockError names which side of the queue could not proceed while
// still matching ErrWouldBlock under errors.Is.
type wouldBlockError struct {
	msg string
}

func (e *wouldBlockError) Error() string { return e.msg }

func (e *wouldBlockError) Unwrap() error { return iox.ErrWouldBlock }

// IsWouldBlock reports whether err indicates the operation would block.
// True for ErrWouldBlock, ErrFull, ErrEmpty and errors wrapping them.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// IsFull reports whether err is (or wraps) ErrFull.
func IsFull(err error) bool {
	return errors.Is(err, ErrFull)
}

// IsEmpty reports whether err is (or wraps) ErrEmpty.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic] for signals other than would-block.
func IsSemantic(err error) bool {
	return IsWouldBlock(err) || iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, ErrFull and ErrEmpty.
// Delegates to [iox.IsNonFailure] for the remaining iox signals.
func IsNonFailure(err error) bool {
	return err == nil || IsWouldBlock(err) || iox.IsNonFailure(err)
}
