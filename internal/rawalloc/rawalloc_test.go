// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package rawalloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMallocUsableSize(t *testing.T) {
	for _, n := range []uintptr{1, 8, 100, 1 << 10, 1 << 20} {
		p := Malloc(n)
		require.NotNil(t, p)
		require.GreaterOrEqual(t, UsableSize(p), n)
		Free(p)
	}
}

func TestUsableSizeNil(t *testing.T) {
	require.Zero(t, UsableSize(nil))
}

func TestCallocZeroes(t *testing.T) {
	const n = 4096
	p := Calloc(n)
	require.NotNil(t, p)
	defer Free(p)
	for i, b := range unsafe.Slice((*byte)(p), n) {
		require.Zerof(t, b, "byte %d not zeroed", i)
	}
}

func TestMemsetZero(t *testing.T) {
	const n = 512
	p := Malloc(n)
	require.NotNil(t, p)
	defer Free(p)
	buf := unsafe.Slice((*byte)(p), n)
	for i := range buf {
		buf[i] = 0xff
	}
	MemsetZero(p, n)
	for i, b := range buf {
		require.Zerof(t, b, "byte %d not zeroed", i)
	}
}

func TestReallocPreservesContents(t *testing.T) {
	const n = 64
	p := Malloc(n)
	require.NotNil(t, p)
	buf := unsafe.Slice((*byte)(p), n)
	for i := range buf {
		buf[i] = byte(i)
	}
	p = Realloc(p, 1<<16)
	require.NotNil(t, p)
	defer Free(p)
	buf = unsafe.Slice((*byte)(p), n)
	for i := range buf {
		require.Equal(t, byte(i), buf[i])
	}
}

func TestMemalign(t *testing.T) {
	for _, align := range []uintptr{16, 64, 256, 4096} {
		p := Memalign(align, 100)
		require.NotNil(t, p)
		require.Zero(t, uintptr(p)%align)
		require.GreaterOrEqual(t, UsableSize(p), uintptr(100))
		Free(p)
	}
}
