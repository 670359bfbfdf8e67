// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package alloctrack

import "unsafe"

// defaultTracker wraps the system allocator for the package-level functions.
// It is initialized before main runs, so its counter starts at zero with
// respect to everything allocated through this package, and it lives for the
// rest of the process.
var defaultTracker = NewTracker(System)

// Alloc allocates a block from the process-wide tracker. See Tracker.Alloc.
func Alloc(layout Layout) unsafe.Pointer { return defaultTracker.Alloc(layout) }

// AllocZeroed allocates a zeroed block from the process-wide tracker. See
// Tracker.AllocZeroed.
func AllocZeroed(layout Layout) unsafe.Pointer { return defaultTracker.AllocZeroed(layout) }

// Realloc resizes a block from the process-wide tracker. See Tracker.Realloc.
func Realloc(ptr unsafe.Pointer, layout Layout, newSize uintptr) unsafe.Pointer {
	return defaultTracker.Realloc(ptr, layout, newSize)
}

// Free releases a block allocated from the process-wide tracker. See
// Tracker.Free.
func Free(ptr unsafe.Pointer, layout Layout) { defaultTracker.Free(ptr, layout) }

// InUseBytes returns the total usable size of the blocks currently allocated
// through the package-level functions.
func InUseBytes() uint64 { return defaultTracker.InUseBytes() }

// GetMetrics returns memory usage statistics for the process-wide tracker.
func GetMetrics() Metrics { return defaultTracker.Metrics() }
