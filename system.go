// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package alloctrack

import (
	"unsafe"

	"github.com/cockroachdb/alloctrack/internal/invariants"
	"github.com/cockroachdb/alloctrack/internal/rawalloc"
	"github.com/cockroachdb/errors"
)

// mallocAlign is the alignment C malloc guarantees (that of max_align_t),
// 16 bytes on the supported 64-bit platforms.
const mallocAlign = 16

// System is the Delegate backed by the C heap. Alloc and AllocZeroed honor
// any power-of-two alignment, switching to posix_memalign above the malloc
// guarantee. Layouts aligned beyond that guarantee must not be passed to
// Realloc: C realloc preserves only the malloc alignment, so the operation
// cannot be expressed without a copy, and the delegate refuses it with an
// assertion in invariant builds.
var System Delegate = systemDelegate{}

type systemDelegate struct{}

func (systemDelegate) Alloc(layout Layout) unsafe.Pointer {
	if layout.Align > mallocAlign {
		return rawalloc.Memalign(layout.Align, layout.Size)
	}
	return rawalloc.Malloc(layout.Size)
}

func (systemDelegate) AllocZeroed(layout Layout) unsafe.Pointer {
	if layout.Align > mallocAlign {
		ptr := rawalloc.Memalign(layout.Align, layout.Size)
		if ptr != nil {
			rawalloc.MemsetZero(ptr, layout.Size)
		}
		return ptr
	}
	return rawalloc.Calloc(layout.Size)
}

func (systemDelegate) Realloc(ptr unsafe.Pointer, layout Layout, newSize uintptr) unsafe.Pointer {
	if invariants.Enabled && layout.Align > mallocAlign {
		panic(errors.AssertionFailedf("realloc cannot preserve alignment %d", layout.Align))
	}
	return rawalloc.Realloc(ptr, newSize)
}

func (systemDelegate) Free(ptr unsafe.Pointer, _ Layout) {
	rawalloc.Free(ptr)
}

func (systemDelegate) UsableSize(ptr unsafe.Pointer) uintptr {
	return rawalloc.UsableSize(ptr)
}
