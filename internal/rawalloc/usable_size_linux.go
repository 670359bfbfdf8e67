// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

//go:build cgo && linux

package rawalloc

// #include <malloc.h>
import "C"
import "unsafe"

// UsableSize returns the number of bytes usable at p, which can exceed the
// size originally requested due to allocator size-class rounding. p must have
// been returned by this package and not yet freed. UsableSize(nil) is 0.
//
// malloc_usable_size is not in POSIX but is provided by glibc, musl and
// jemalloc alike.
func UsableSize(p unsafe.Pointer) uintptr {
	return uintptr(C.malloc_usable_size(p))
}
