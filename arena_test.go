// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestLayoutReserveAndAllocate(t *testing.T) {
	var lay Layout
	a := lay.Reserve(3)
	b := lay.Reserve(5)
	c := lay.Reserve(2)

	if lay.total() != 10 {
		t.Fatalf("total() = %d, want 10", lay.total())
	}

	mem := lay.Allocate()
	defer mem.Release()

	bufA := mem.Buffer(a)
	bufB := mem.Buffer(b)
	bufC := mem.Buffer(c)

	if len(bufA) != 3 || len(bufB) != 5 || len(bufC) != 2 {
		t.Fatalf("region lengths = %d,%d,%d, want 3,5,2", len(bufA), len(bufB), len(bufC))
	}
	if cap(bufA) != 3 || cap(bufB) != 5 || cap(bufC) != 2 {
		t.Fatalf("region capacities = %d,%d,%d, want 3,5,2 (no cross-region aliasing on growth)", cap(bufA), cap(bufB), cap(bufC))
	}

	// Regions must not alias each other.
	bufA[0] = 1
	bufB[0] = 2
	bufC[0] = 3
	if bufA[0] != 1 || bufB[0] != 2 || bufC[0] != 3 {
		t.Fatal("writing to one region clobbered another")
	}
}

func TestMemoryBufferIsZeroed(t *testing.T) {
	var lay Layout
	a := lay.Reserve(4)
	mem := lay.Allocate()
	defer mem.Release()

	buf := mem.Buffer(a)
	for i := range buf {
		buf[i] = Word(i + 1)
	}
	// A region pulled from a freshly-allocated backing buffer should come
	// back zeroed even if fetched again (Buffer clears on every call).
	buf2 := mem.Buffer(a)
	for i, w := range buf2 {
		if w != 0 {
			t.Fatalf("Buffer(a)[%d] = %d, want 0 after re-fetch", i, w)
		}
	}
}
