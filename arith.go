// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// Slice-level add/sub/shift/compare kernels. These propagate a single
// carry or borrow limb and report it to the caller; they never decide for
// themselves whether an overflow or underflow is an error.

// addVV sets z = x+y for len(z) == min(len(x), len(y)) and returns the
// carry out of the top limb.
func addVV(z, x, y []Word) (c Word) {
	n := len(z)
	if len(x) < n {
		n = len(x)
	}
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		z[i], c = bits.Add(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x-y for len(z) == min(len(x), len(y)) and returns the
// borrow out of the top limb.
func subVV(z, x, y []Word) (c Word) {
	n := len(z)
	if len(x) < n {
		n = len(x)
	}
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		z[i], c = bits.Sub(x[i], y[i], c)
	}
	return c
}

// addVW adds y (a single limb) to x, writing the result to z.
func addVW(z, x []Word, y Word) (c Word) {
	if len(z) == 0 {
		return y
	}
	z[0], c = bits.Add(x[0], y, 0)
	for i := 1; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if &z[0] != &x[0] {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = bits.Add(x[i], 0, c)
	}
	return c
}

// subVW subtracts y (a single limb) from x, writing the result to z.
func subVW(z, x []Word, y Word) (c Word) {
	if len(z) == 0 {
		return y
	}
	z[0], c = bits.Sub(x[0], y, 0)
	for i := 1; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if &z[0] != &x[0] {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = bits.Sub(x[i], 0, c)
	}
	return c
}

// addIn adds src into dst in place: dst += src. len(dst) must be >= len(src).
func addIn(dst, src []Word) (c Word) {
	c = addVV(dst[:len(src)], dst[:len(src)], src)
	if len(dst) > len(src) {
		c = addVW(dst[len(src):], dst[len(src):], c)
	}
	return c
}

// subIn subtracts src from dst in place: dst -= src. Returns a nonzero
// borrow if dst < src (the caller decides whether that is a normal
// condition, e.g. a signed result, or a programmer error).
func subIn(dst, src []Word) (c Word) {
	c = subVV(dst[:len(src)], dst[:len(src)], src)
	if len(dst) > len(src) {
		c = subVW(dst[len(src):], dst[len(src):], c)
	}
	return c
}

// mulAddVWW sets z = x*y + r (r is a single-limb carry-in) and returns the
// carry out.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul(x[i], y)
		lo, cc := bits.Add(lo, c, 0)
		hi += cc
		z[i] = lo
		c = hi
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry out.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul(x[i], y)
		lo, cc := bits.Add(lo, z[i], 0)
		hi += cc
		lo, cc = bits.Add(lo, c, 0)
		hi += cc
		z[i] = lo
		c = hi
	}
	return c
}

// shlVU sets z = x << s for s < _W and returns the bits shifted out of the
// top limb. Each limb takes its low bits from the limb below it, so the
// top-down order is safe when z and x are the same slice.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(z)
	if len(x) < n {
		n = len(x)
	}
	if n == 0 {
		return 0
	}
	c = x[n-1] >> (_W - s)
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(_W-s)
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for s < _W and returns the low bits shifted off
// (aligned to the top of the returned Word).
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	for i := 0; i < len(z); i++ {
		if i < len(x) {
			var lo Word
			if i+1 < len(x) {
				lo = x[i+1]
			}
			z[i] = x[i]>>s | lo<<(_W-s)
		}
	}
	if len(x) > 0 {
		c = x[0] << (_W - s)
	}
	return c
}

// cmpVV compares x and y of equal length from the most significant limb
// down, returning -1, 0 or +1.
func cmpVV(x, y []Word) (r int) {
	i := len(x) - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}
