// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// The multiplication pipeline: threshold-dispatched schoolbook ->
// Karatsuba -> Toom-Cook-3 -> NTT (see toom3.go, ntt.go for the last
// two stages).

// Thresholds below which each algorithm in the pipeline hands off to the
// next. Tunable, but the ordering must be preserved.
var (
	karatsubaThreshold = 25  // limbs; below this, schoolbook wins
	toom3Threshold     = 193 // limbs; below this, Karatsuba wins
	nttThreshold       = 1 << 12
)

const schoolbookBlock = 1024 // block length of basicMul's outer loop over y

// mul sets z = x*y and returns the normalized result, dispatching through
// the multiplication pipeline by operand length.
func (z Buffer) mul(x, y Buffer) Buffer {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1

	if alias(z, x) || alias(z, y) {
		z = nil
	}

	switch {
	case n < karatsubaThreshold:
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	case n < toom3Threshold:
		return z.mulKaratsuba(x, y)
	case n < nttThreshold:
		return z.mulToom3(x, y)
	default:
		return z.mulNTT(x, y)
	}
}

func (z Buffer) mulAddWW(x Buffer, y, r Word) Buffer {
	m := len(x)
	if m == 0 || (y == 0 && r == 0) {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)
	return z.norm()
}

// basicMul sets z = x*y ("grade school" multiplication), len(z) must be
// len(x)+len(y). The outer loop walks y (the shorter operand at every
// call site) in schoolbookBlock-limb blocks, in plain index order, and
// each step multiplies all of x by one limb of y; x is not split into
// blocks, so the memory access order is that of an unblocked loop.
func basicMul(z, x, y Buffer) {
	z[0 : len(x)+len(y)].clear()
	for i := 0; i < len(y); i += schoolbookBlock {
		hi := i + schoolbookBlock
		if hi > len(y) {
			hi = len(y)
		}
		for j, d := range y[i:hi] {
			k := i + j
			if d != 0 {
				z[len(x)+k] = addMulVVW(z[k:k+len(x)], x, d)
			}
		}
	}
}

// karatsubaLen computes an approximation to the maximum k <= n such that
// k = p<<i for a number p <= threshold and an i >= 0, so that recursing on
// operands of length k eventually bottoms out near threshold.
func karatsubaLen(n, threshold int) int {
	i := uint(0)
	for n > threshold {
		n >>= 1
		i++
	}
	return n << i
}

func (z Buffer) mulKaratsuba(x, y Buffer) Buffer {
	m, n := len(x), len(y)
	k := karatsubaLen(n, karatsubaThreshold)

	x0 := x[0:k]
	y0 := y[0:k]
	z = z.make(imax(6*k, m+n))
	karatsuba(z, x0, y0)
	z = z[0 : m+n]
	z[2*k:].clear()

	if k < n || m != n {
		tp := getBuffer(3 * k)
		t := *tp

		x0 := x0.norm()
		y1 := y[k:]
		t = t.mul(x0, y1)
		addAt(z, t, k)

		y0 := y0.norm()
		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			xi = xi.norm()
			t = t.mul(xi, y0)
			addAt(z, t, i)
			t = t.mul(xi, y1)
			addAt(z, t, i+k)
		}
		putBuffer(tp)
	}

	return z.norm()
}

// karatsuba multiplies x and y (same length n) and leaves
// the (non-normalized) result in z[0:2*n]. len(z) must be >= 6*n.
func karatsuba(z, x, y Buffer) {
	n := len(y)

	if n&1 != 0 || n < karatsubaThreshold || n < 2 {
		basicMul(z, x, y)
		return
	}

	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]
	y1, y0 := y[n2:], y[0:n2]

	karatsuba(z, x0, y0)
	karatsuba(z[n:], x1, y1)

	s := 1
	xd := z[2*n : 2*n+n2]
	if subVV(xd, x1, x0) != 0 {
		s = -s
		subVV(xd, x0, x1)
	}

	yd := z[2*n+n2 : 3*n]
	if subVV(yd, y0, y1) != 0 {
		s = -s
		subVV(yd, y1, y0)
	}

	p := z[n*3:]
	karatsuba(p, xd, yd)

	r := z[n*4:]
	copy(r, z[:n*2])

	karatsubaAdd(z[n2:], r, n)
	karatsubaAdd(z[n2:], r[n:], n)
	if s > 0 {
		karatsubaAdd(z[n2:], p, n)
	} else {
		karatsubaSub(z[n2:], p, n)
	}
}

func karatsubaAdd(z, x Buffer, n int) {
	if c := addVV(z[0:n], z, x); c != 0 {
		addVW(z[n:n+n>>1], z[n:], c)
	}
}

func karatsubaSub(z, x Buffer, n int) {
	if c := subVV(z[0:n], z, x); c != 0 {
		subVW(z[n:n+n>>1], z[n:], c)
	}
}

// addAt implements z += x<<(_W*i); z must be long enough.
func addAt(z, x Buffer, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			j := i + n
			if j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

// sqr sets z = x*x.
func (z Buffer) sqr(x Buffer) Buffer {
	n := len(x)
	switch {
	case n == 0:
		return z[:0]
	case n == 1:
		hi, lo := mulWW(x[0], x[0])
		z = z.make(2)
		z[0], z[1] = lo, hi
		return z.norm()
	}
	if alias(z, x) {
		z = nil
	}
	z = z.make(2 * n)
	basicMul(z, x, x)
	return z.norm()
}
