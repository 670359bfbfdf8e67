// Copyright 2026 The Alloctrack Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package invariants provides assertions and constants that are compiled away
// unless the "invariants" or "race" build tags are set.
package invariants

import "github.com/cockroachdb/alloctrack/internal/buildtags"

// RaceEnabled is true if we were built with the "race" build tag.
const RaceEnabled = buildtags.Race

// Integer is a constraint that permits any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
