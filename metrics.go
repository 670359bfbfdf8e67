// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package alloctrack

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// Metrics contains memory usage statistics for a Tracker.
type Metrics struct {
	// InUseBytes is the total usable size of all blocks currently allocated
	// and not yet freed.
	InUseBytes uint64

	// TotalBytes is the cumulative number of usable bytes allocated since the
	// tracker was created, including bytes that have since been freed.
	TotalBytes uint64
}

// Metrics returns a snapshot of t's counters.
func (t *Tracker) Metrics() Metrics {
	// Same load order as InUseBytes: freed first, so in-use never underflows.
	freed := t.counters.totalFreed.Load()
	allocated := t.counters.totalAllocated.Load()
	return Metrics{
		InUseBytes: allocated - freed,
		TotalBytes: allocated,
	}
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("in-use: %s, allocated: %s",
		crhumanize.Bytes(m.InUseBytes, crhumanize.Compact, crhumanize.OmitI),
		crhumanize.Bytes(m.TotalBytes, crhumanize.Compact, crhumanize.OmitI))
}
