// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Scratch-memory arena: a Layout records, up front, every scratch Buffer a
// multi-step operator call (in this package, Toom-Cook-3; the NTT
// pipeline and the division routines allocate their scratch without it) will need and
// how large each one is; Allocate then turns that into a single Memory
// backed by one pooled Buffer, handing out each region as a
// MemoryAllocation slice of it. This replaces what would otherwise be a
// dozen independent getBuffer/putBuffer round trips (one per intermediate
// value) with one pooled allocation sized by the whole call's Layout, while
// keeping bufferPool itself as the underlying recycling layer — the arena
// is a batching layer on top of the pool, not a replacement for it.

// Layout accumulates the sizes of the scratch regions a computation needs.
// The zero Layout is ready to use.
type Layout struct {
	sizes []int
}

// MemoryAllocation identifies one region reserved via Layout.Reserve.
type MemoryAllocation int

// Reserve records a region of n Words and returns a handle to it. Reserve
// calls must happen in the same order the corresponding Memory.Buffer calls
// will use, but that's a convention, not a constraint: any handle can be
// looked up in any order once the Layout is built.
func (l *Layout) Reserve(n int) MemoryAllocation {
	l.sizes = append(l.sizes, n)
	return MemoryAllocation(len(l.sizes) - 1)
}

// total returns the combined size of every reserved region.
func (l *Layout) total() int {
	n := 0
	for _, s := range l.sizes {
		n += s
	}
	return n
}

// Memory is one pooled backing Buffer sliced into the regions a Layout
// reserved.
type Memory struct {
	layout  *Layout
	backing *Buffer
	offsets []int
}

// Allocate gets one Buffer from the pool sized to the Layout's total and
// divides it into the reserved regions.
func (l *Layout) Allocate() *Memory {
	offsets := make([]int, len(l.sizes))
	off := 0
	for i, s := range l.sizes {
		offsets[i] = off
		off += s
	}
	backing := getBuffer(off)
	return &Memory{layout: l, backing: backing, offsets: offsets}
}

// Buffer returns the region a as a Buffer of exactly its reserved length,
// capacity included, so that callers can shrink it with Buffer.make/.norm
// without triggering a further allocation.
func (m *Memory) Buffer(a MemoryAllocation) Buffer {
	i := int(a)
	lo := m.offsets[i]
	n := m.layout.sizes[i]
	b := (*m.backing)[lo : lo+n : lo+n]
	b.clear()
	return b
}

// Release returns the backing Buffer to the pool. Callers must not use any
// Buffer obtained from m after calling Release.
func (m *Memory) Release() {
	putBuffer(m.backing)
}
