// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// signedBuf is an internal sign-magnitude pair used by the Toom-Cook-3
// evaluation/interpolation step (toom3.go) and the extended GCD, which
// must track negative intermediate coefficients before the final
// recomposition is known to be non-negative. It plays the same role here
// that (sign, magnitude) plays for IBig (ibig.go), but stays private:
// nothing about that internal bookkeeping is part of the public value
// API.
type signedBuf struct {
	neg bool
	mag Buffer
}

func sPos(mag Buffer) signedBuf { return signedBuf{neg: false, mag: mag} }

func (a signedBuf) normalize() signedBuf {
	a.mag = a.mag.norm()
	if len(a.mag) == 0 {
		a.neg = false
	}
	return a
}

func sNeg(a signedBuf) signedBuf {
	a = a.normalize()
	if len(a.mag) == 0 {
		return a
	}
	return signedBuf{neg: !a.neg, mag: a.mag}
}

func sAdd(a, b signedBuf) signedBuf {
	a, b = a.normalize(), b.normalize()
	if a.neg == b.neg {
		return signedBuf{neg: a.neg, mag: Buffer(nil).add(a.mag, b.mag)}.normalize()
	}
	if a.mag.cmp(b.mag) >= 0 {
		return signedBuf{neg: a.neg, mag: Buffer(nil).sub(a.mag, b.mag)}.normalize()
	}
	return signedBuf{neg: b.neg, mag: Buffer(nil).sub(b.mag, a.mag)}.normalize()
}

func sSub(a, b signedBuf) signedBuf {
	return sAdd(a, sNeg(b))
}

// sShl multiplies a by 2^s.
func sShl(a signedBuf, s uint) signedBuf {
	return signedBuf{neg: a.neg, mag: Buffer(nil).shl(a.mag, s)}.normalize()
}

// sDivSmallExact divides a by the small constant d, which must divide a
// exactly (guaranteed by the Toom-3 interpolation formulas).
func sDivSmallExact(a signedBuf, d Word) signedBuf {
	q, _ := Buffer(nil).divW(a.mag, d)
	return signedBuf{neg: a.neg, mag: q}.normalize()
}

// add sets z = x+y for unsigned Buffers. It is the package's general
// magnitude addition, used by UBig.Add as well as by the signedBuf
// arithmetic above.
func (z Buffer) add(x, y Buffer) Buffer {
	m, n := len(x), len(y)
	if m < n {
		return z.add(y, x)
	}
	if m == 0 {
		return z[:0]
	}
	if n == 0 {
		return z.set(x)
	}
	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub sets z = x-y for unsigned Buffers with x >= y.
func (z Buffer) sub(x, y Buffer) Buffer {
	m, n := len(x), len(y)
	if m < n {
		panic("bigint: underflow")
	}
	if m == 0 {
		return z[:0]
	}
	if n == 0 {
		return z.set(x)
	}
	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bigint: underflow")
	}
	return z.norm()
}

// cmp compares x and y as unsigned magnitudes.
func (x Buffer) cmp(y Buffer) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	if m == 0 {
		return 0
	}
	return cmpVV(x, y)
}

// addAtSigned adds the signed value c, scaled by base^shift (shift counted
// in whole Words), into the accumulator *acc.
func addAtSigned(acc *signedBuf, c signedBuf, wordShift int) {
	shifted := make(Buffer, len(c.mag)+wordShift)
	copy(shifted[wordShift:], c.mag)
	*acc = sAdd(*acc, signedBuf{neg: c.neg, mag: shifted})
}
