// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package alloctrack wraps a memory allocator so that every allocation
// lifecycle event adjusts a shared counter of currently allocated bytes. The
// counter reflects the usable size of each block as reported by the
// underlying allocator, which can exceed the requested size due to size-class
// rounding.
//
// The package implements no allocation policy of its own: each operation is a
// single delegate call plus one atomic counter update, and the delegate's
// pointer and failure semantics are preserved exactly. Allocation failure
// surfaces as a nil pointer, never as an error, a retry or a fallback.
package alloctrack

import (
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/alloctrack/internal/invariants"
	"github.com/cockroachdb/errors"
)

// Layout describes the size and alignment of an allocation request. Align
// must be a power of two. A zero Size is passed through to the delegate
// unchanged; whatever pointer the delegate returns for it is accounted at its
// usable size.
type Layout struct {
	Size  uintptr
	Align uintptr
}

func (l Layout) assertValid() {
	if invariants.Enabled && (l.Align == 0 || bits.OnesCount64(uint64(l.Align)) != 1) {
		panic(errors.AssertionFailedf("layout alignment %d is not a power of two", l.Align))
	}
}

// Delegate is the underlying allocator that performs the real memory
// reservation and release. System is the Delegate for the C heap; tests
// substitute their own.
type Delegate interface {
	// Alloc returns a block of at least layout.Size bytes aligned to
	// layout.Align, or nil if the allocation fails. The memory is
	// uninitialized.
	Alloc(layout Layout) unsafe.Pointer

	// AllocZeroed is Alloc with the block zero-initialized.
	AllocZeroed(layout Layout) unsafe.Pointer

	// Realloc resizes the block at ptr, previously allocated with layout, to
	// newSize bytes, possibly moving it. On failure it returns nil and the
	// old block stays live.
	Realloc(ptr unsafe.Pointer, layout Layout, newSize uintptr) unsafe.Pointer

	// Free releases the block at ptr, previously allocated with layout.
	Free(ptr unsafe.Pointer, layout Layout)

	// UsableSize reports the number of bytes actually usable at ptr, a live
	// block obtained from this delegate. UsableSize(nil) is 0.
	UsableSize(ptr unsafe.Pointer) uintptr
}

// Tracker delegates every allocation operation to a Delegate and maintains a
// running total of the usable bytes currently allocated through it.
//
// A Tracker is safe for concurrent use from any number of goroutines. No lock
// is held across the delegate call; the delegate call and the counter update
// are two independent steps, so a concurrent reader can observe the counter
// just before it reflects an operation already completed by the delegate.
// That window is narrow and accepted: once all operations have completed, the
// counter is exact.
type Tracker struct {
	delegate Delegate

	// The counters are cumulative so that in-use can be derived without a
	// read-modify-write cycle. Updates use Go's sequentially consistent
	// atomics; a counter value observed after a free is therefore visible to
	// any goroutine that synchronizes with that free.
	counters struct {
		totalAllocated atomic.Uint64
		totalFreed     atomic.Uint64
		// Pad to a 64 byte cache line, which is the case for ARM64 servers
		// and AMD64, to keep the counters from false sharing with neighbors.
		_ [6]uint64
	}
}

// NewTracker returns a Tracker wrapping delegate, with the usage counter at
// zero. To track a whole process, create the Tracker before any allocation
// goes through the delegate; the package-level functions do this for the
// system allocator.
func NewTracker(delegate Delegate) *Tracker {
	return &Tracker{delegate: delegate}
}

// Alloc allocates a block described by layout through the delegate and, on
// success, grows the usage counter by the block's usable size. The returned
// pointer is the delegate's, unmodified; nil means the delegate failed and
// the counter is untouched.
func (t *Tracker) Alloc(layout Layout) unsafe.Pointer {
	layout.assertValid()
	ptr := t.delegate.Alloc(layout)
	if ptr != nil {
		t.counters.totalAllocated.Add(uint64(t.delegate.UsableSize(ptr)))
	}
	return ptr
}

// AllocZeroed is Alloc with the block zero-initialized by the delegate.
func (t *Tracker) AllocZeroed(layout Layout) unsafe.Pointer {
	layout.assertValid()
	ptr := t.delegate.AllocZeroed(layout)
	if ptr != nil {
		t.counters.totalAllocated.Add(uint64(t.delegate.UsableSize(ptr)))
	}
	return ptr
}

// Realloc resizes the block at ptr to newSize through the delegate. ptr must
// be a live block allocated from t with layout.
//
// When the delegate moves the block, the counter absorbs the difference
// between the new and old usable sizes. When the delegate resizes in place
// (returns ptr itself), the counter is not adjusted even though the usable
// size may have changed; the resulting drift is a known limitation of
// pointer-identity accounting and is corrected only when the block is
// eventually freed at its then-current usable size. On failure (nil return)
// the old block stays live and the counter is unchanged.
func (t *Tracker) Realloc(ptr unsafe.Pointer, layout Layout, newSize uintptr) unsafe.Pointer {
	layout.assertValid()
	oldUsable := t.delegate.UsableSize(ptr)
	newPtr := t.delegate.Realloc(ptr, layout, newSize)
	if newPtr != ptr && newPtr != nil {
		newUsable := t.delegate.UsableSize(newPtr)
		if newUsable >= oldUsable {
			t.counters.totalAllocated.Add(uint64(newUsable - oldUsable))
		} else {
			t.counters.totalFreed.Add(uint64(oldUsable - newUsable))
		}
	}
	return newPtr
}

// Free releases the block at ptr through the delegate and shrinks the usage
// counter by the usable size the block had at the moment of freeing. ptr must
// be a live block allocated from t with layout; anything else is undefined
// behavior that is not detected at runtime beyond a nil check in invariant
// builds.
func (t *Tracker) Free(ptr unsafe.Pointer, layout Layout) {
	if invariants.Enabled && ptr == nil {
		panic(errors.AssertionFailedf("free of nil pointer"))
	}
	t.counters.totalFreed.Add(uint64(t.delegate.UsableSize(ptr)))
	t.delegate.Free(ptr, layout)
}

// InUseBytes returns the total usable size of the blocks currently allocated
// through t and not yet freed. The value is a point-in-time snapshot with no
// ordering relationship to any specific operation in flight.
func (t *Tracker) InUseBytes() uint64 {
	// Loading freed before allocated keeps the difference non-negative: every
	// free counted by the first load had its allocation counted before the
	// second.
	freed := t.counters.totalFreed.Load()
	allocated := t.counters.totalAllocated.Load()
	return invariants.SafeSub(allocated, freed)
}
