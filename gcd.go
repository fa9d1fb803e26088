// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Greatest common divisor, two-phase: strip the common power of two out
// of both operands, then reduce the odd remainders with Lehmer's
// algorithm (Knuth, TAOCP vol. 2, 4.5.2; Handbook of Applied
// Cryptography, Algorithm 14.4) — a batch of Euclidean steps deduced
// from the operands' leading limbs alone and applied to the
// full-precision pair as a single 2x2 integer matrix, falling back to
// one full-precision Euclidean step whenever the leading-limb
// approximation can't validate a step.
//
// extendedGcd is the standard iterative extended Euclidean algorithm
// (Bezout coefficients via the quotient sequence), expressed with this
// package's own Buffer/signedBuf arithmetic.

// trailingZerosBuffer returns the number of trailing zero bits in x and
// whether x is nonzero (mirroring Rust's Option<u32> trailing_zeros).
func trailingZerosBuffer(x Buffer) (int, bool) {
	x = x.norm()
	for i, w := range x {
		if w != 0 {
			return i*_W + int(trailingZeros(w)), true
		}
	}
	return 0, false
}

// bufBitLen returns the number of bits required to represent x, 0 for x
// == 0 (the Buffer-level analog of UBig.BitLen).
func bufBitLen(x Buffer) int {
	x = x.norm()
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bitLen(x[len(x)-1])
}

// topBits returns bits [shift, shift+nbits) of x, i.e. the leading
// nbits-bit window of x once shifted down by shift — the machine-word
// approximation of a multi-limb operand that Lehmer's algorithm runs its
// inner loop on. Reads at most the two limbs straddling the window.
func topBits(x Buffer, shift uint, nbits uint) Word {
	limb := int(shift / _W)
	if limb >= len(x) {
		return 0
	}
	bit := shift % _W
	lo := x[limb] >> bit
	if bit != 0 && limb+1 < len(x) {
		lo |= x[limb+1] << (_W - bit)
	}
	return lo & ((Word(1) << nbits) - 1)
}

// lehmerApproxBits is the width of the machine-word approximation
// Lehmer's inner loop runs on: two bits narrower than a full Word, to
// leave headroom for the signed matrix arithmetic below (A, B, C, D and
// the running x̂, ŷ all stay within a Word's worth of magnitude).
const lehmerApproxBits = _W - 2

// lehmerStep runs Euclid's algorithm on machine-word approximations of a
// and b (which must satisfy a >= b > 0), cross-checking each quotient
// against a second approximation so that the accumulated 2x2 matrix
// (A, B, C, D) is guaranteed valid for the true a, b: applying it,
// na = A*a + B*b and nb = C*a + D*b, reproduces exactly the same
// sequence of Euclidean reduction steps performed at full precision.
// ok is false if the approximation couldn't validate even one step (a
// and b are too close in magnitude, or too small to bother), in which
// case the caller must fall back to one plain Euclidean step.
func lehmerStep(a, b Buffer) (A, B, C, D int64, ok bool) {
	na := bufBitLen(a)
	if na < lehmerApproxBits {
		return 0, 0, 0, 0, false
	}
	shift := uint(na - lehmerApproxBits)
	xHat := int64(topBits(a, shift, lehmerApproxBits))
	yHat := int64(topBits(b, shift, lehmerApproxBits))

	A, B, C, D = 1, 0, 0, 1
	for yHat+C != 0 && yHat+D != 0 {
		q := (xHat + A) / (yHat + C)
		q2 := (xHat + B) / (yHat + D)
		if q != q2 {
			break
		}
		A, B, C, D = C, D, A-q*C, B-q*D
		xHat, yHat = yHat, xHat-q*yHat
		ok = true
	}
	return
}

// mulW returns x * y for a single-limb y.
func (z Buffer) mulW(x Buffer, y Word) Buffer {
	if y == 0 || len(x) == 0 {
		return z[:0]
	}
	z = z.make(len(x) + 1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, y, 0)
	return z.norm()
}

// smallMulBuf returns the signed product a*x, a being small enough to
// fit in a Word's magnitude (guaranteed by lehmerApproxBits).
func smallMulBuf(a int64, x Buffer) signedBuf {
	if a == 0 || len(x) == 0 {
		return signedBuf{}
	}
	neg := a < 0
	m := a
	if neg {
		m = -m
	}
	return signedBuf{neg: neg, mag: Buffer(nil).mulW(x, Word(m))}.normalize()
}

// gcdBuffers returns gcd(x, y) as a normalized Buffer. Panics with
// UndefinedError if both x and y are zero.
func gcdBuffers(x, y Buffer) Buffer {
	x = x.norm()
	y = y.norm()

	xz, xok := trailingZerosBuffer(x)
	yz, yok := trailingZerosBuffer(y)

	switch {
	case !xok && !yok:
		panic(UndefinedError{Op: "gcd(0, 0)"})
	case !xok:
		return y
	case !yok:
		return x
	}

	zeros := xz
	if yz < zeros {
		zeros = yz
	}

	a := Buffer(nil).shr(x, uint(xz))
	b := Buffer(nil).shr(y, uint(yz))

	if a.cmp(b) < 0 {
		a, b = b, a
	}

	for len(b) != 0 {
		A, B, C, D, ok := lehmerStep(a, b)
		if !ok {
			_, rem := Buffer(nil).div(Buffer(nil), a, b)
			a, b = b, rem
			continue
		}
		na := sAdd(smallMulBuf(A, a), smallMulBuf(B, b))
		nb := sAdd(smallMulBuf(C, a), smallMulBuf(D, b))
		a, b = na.mag, nb.mag
	}

	return Buffer(nil).shl(a, uint(zeros))
}

// sMulPos returns a * qMag, where qMag is a non-negative magnitude (such
// as a Euclidean quotient).
func sMulPos(a signedBuf, qMag Buffer) signedBuf {
	return signedBuf{neg: a.neg, mag: Buffer(nil).mul(a.mag, qMag)}.normalize()
}

// extendedGcdBuffers computes (g, x, y) such that g = gcd(a, b) and
// x*a + y*b = g, via the standard iterative extended Euclidean algorithm.
// Panics with UndefinedError if both a and b are zero.
func extendedGcdBuffers(a, b Buffer) (g Buffer, x, y signedBuf) {
	a = a.norm()
	b = b.norm()
	if len(a) == 0 && len(b) == 0 {
		panic(UndefinedError{Op: "gcd(0, 0)"})
	}

	oldR, r := sPos(a), sPos(b)
	oldS, s := sPos(Buffer(nil).setWord(1)), sPos(nil)
	oldT, t := sPos(nil), sPos(Buffer(nil).setWord(1))

	for len(r.mag) != 0 {
		q, rem := Buffer(nil).div(Buffer(nil), oldR.mag, r.mag)
		oldR, r = r, sPos(rem)

		newS := sSub(oldS, sMulPos(s, q))
		oldS, s = s, newS

		newT := sSub(oldT, sMulPos(t, q))
		oldT, t = t, newT
	}

	return oldR.mag, oldS, oldT
}
