// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package rawalloc provides direct access to the C heap. It is the only
// package that touches memory outside the Go runtime; everything above it
// treats the returned unsafe.Pointer values as opaque handles.
//
// The package requires cgo and a C allocator that can report the usable size
// of a live block: malloc_usable_size on linux and freebsd, malloc_size on
// darwin. Other targets do not compile; the absence of the primitive is a
// property of the target environment, not a runtime condition.
package rawalloc
