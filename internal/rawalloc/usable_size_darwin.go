// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

//go:build cgo && darwin

package rawalloc

// #include <malloc/malloc.h>
import "C"
import "unsafe"

// UsableSize returns the number of bytes usable at p, which can exceed the
// size originally requested due to allocator size-class rounding. p must have
// been returned by this package and not yet freed. UsableSize(nil) is 0.
//
// Darwin spells the primitive malloc_size rather than malloc_usable_size.
func UsableSize(p unsafe.Pointer) uintptr {
	return uintptr(C.malloc_size(p))
}
