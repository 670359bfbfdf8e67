// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

//go:build cgo && (linux || darwin || freebsd)

package rawalloc

// #include <stdlib.h>
// #include <string.h>
//
// // cgo special-cases C.malloc to abort the process when the allocation
// // fails. Allocation failure must surface as a nil pointer here, so route
// // the call through a wrapper that cgo treats as an ordinary function.
// static void *rawalloc_malloc(size_t n) { return malloc(n); }
import "C"
import "unsafe"

// We need to be conscious of the Cgo pointer passing rules:
//
//   https://golang.org/cmd/cgo/#hdr-Passing_pointers
//
// Nothing in this package stores Go pointers in C memory; callers that do so
// must zero the block first (use Calloc or MemsetZero).

// Malloc allocates n bytes from the C heap. The memory is uninitialized.
// Returns nil when the C allocator fails.
func Malloc(n uintptr) unsafe.Pointer {
	return C.rawalloc_malloc(C.size_t(n))
}

// Calloc allocates n bytes from the C heap, zero-initialized. Returns nil
// when the C allocator fails.
func Calloc(n uintptr) unsafe.Pointer {
	return C.calloc(C.size_t(n), 1)
}

// Memalign allocates n bytes aligned to align, which must be a power of two
// and a multiple of the pointer size. The memory is uninitialized. Returns
// nil on failure.
func Memalign(align, n uintptr) unsafe.Pointer {
	var p unsafe.Pointer
	if C.posix_memalign(&p, C.size_t(align), C.size_t(n)) != 0 {
		return nil
	}
	return p
}

// Realloc resizes the block at p to n bytes, possibly moving it. It follows C
// realloc semantics: on failure it returns nil and the old block stays live.
func Realloc(p unsafe.Pointer, n uintptr) unsafe.Pointer {
	return C.realloc(p, C.size_t(n))
}

// Free returns the block at p to the C heap. Freeing nil is a no-op.
func Free(p unsafe.Pointer) {
	C.free(p)
}

// MemsetZero zeroes the n bytes at p.
func MemsetZero(p unsafe.Pointer, n uintptr) {
	C.memset(p, 0, C.size_t(n))
}
