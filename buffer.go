// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "sync"

// MaxLen is the largest Buffer length the multiplication pipeline will
// transform via the NTT path, bounded by the largest power-of-two order
// supported by the three NTT primes (2^27 on every platform; see ntt.go).
// Buffer lengths beyond MaxCapacity (a small headroom above MaxLen) make
// every public constructor panic with NumberTooLarge.
const MaxLen = 1 << maxOrder

// MaxCapacity is the largest capacity a Buffer may hold. The +4 headroom
// exists for in-place algorithms (notably divBasic/mulAdd) that temporarily
// write one or two carry limbs past the logical length.
const MaxCapacity = MaxLen + 4

// Buffer is a resizable little-endian vector of Words: Buffer[0] is the
// least significant limb. It is the storage type behind the Large variant
// of a UBig (see ubig.go) and is never itself exported to library users.
type Buffer []Word

func (z Buffer) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm strips leading (most significant) zero limbs.
func (z Buffer) norm() Buffer {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// allocate reserves a Buffer of length n with capacity following the
// default growth policy: len + len/8 + 2, capped at MaxCapacity.
// It panics with NumberTooLarge if n exceeds MaxCapacity.
func allocate(n int) Buffer {
	if n > MaxCapacity {
		panic(NumberTooLargeError{n})
	}
	cap := n + n/8 + 2
	if cap > MaxCapacity {
		cap = MaxCapacity
	}
	if cap < n {
		cap = n
	}
	return make(Buffer, n, cap)
}

// compactCapacity returns the compact capacity bound for a buffer of
// length n: len + len/4 + 4.
func compactCapacity(n int) int {
	return n + n/4 + 4
}

// make returns a Buffer of length n, reusing z's storage if it has enough
// capacity; otherwise it allocates a fresh one via allocate.
func (z Buffer) make(n int) Buffer {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(Buffer, 1)
	}
	return allocate(n)
}

// compact shrinks z's capacity to the compact bound if it currently
// exceeds it; otherwise z is returned unchanged. Used when handing a
// Buffer over to be wrapped as a Large UBig.
func (z Buffer) compact() Buffer {
	if cap(z) <= compactCapacity(len(z)) {
		return z
	}
	b := make(Buffer, len(z))
	copy(b, z)
	return b
}

func (z Buffer) set(x Buffer) Buffer {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z Buffer) setWord(x Word) Buffer {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z Buffer) pushZerosFront(k int) Buffer {
	n := len(z)
	x := z
	z = z.make(n + k)
	copy(z[k:], x[:n])
	for i := 0; i < k; i++ {
		z[i] = 0
	}
	return z
}

// resizingCloneFrom copies src into z, reallocating if necessary, and
// returns a buffer respecting the compact-capacity invariant.
func (z Buffer) resizingCloneFrom(src Buffer) Buffer {
	z = z.set(src)
	return z.compact()
}

func same(x, y Buffer) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

func alias(x, y Buffer) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// bufferPool recycles *Buffer scratch values used internally by the
// multiplication and division engines.
var bufferPool sync.Pool

func getBuffer(n int) *Buffer {
	var z *Buffer
	if v := bufferPool.Get(); v != nil {
		z = v.(*Buffer)
	}
	if z == nil {
		z = new(Buffer)
	}
	*z = z.make(n)
	return z
}

func putBuffer(x *Buffer) {
	bufferPool.Put(x)
}

func umaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func uminInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
