// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mpmc

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent payload checks, which the detector
// reports as races because slot data is ordered through the slot sequence.
const RaceEnabled = true
