// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// Number-theoretic-transform multiplication, the last stage of the
// pipeline for operands beyond nttThreshold, using the classical
// three-prime convolution technique.
//
// Each operand is re-split into small base-2^16 "NTT digits" (so that a
// convolution of up to MaxLen digits never overflows the product of the
// three primes below), convolved independently modulo each of the three
// primes via an iterative Cooley-Tukey NTT, and the three per-coefficient
// residues are recombined by Garner's algorithm (using this package's own
// Buffer arithmetic, since a 3-prime CRT value does not fit in one Word)
// before a final base-2^16-to-native-limb reassembly pass.

const (
	nttDigitBits = 16
	nttDigitBase = 1 << nttDigitBits
)

// maxOrder bounds the largest transform length (as a power of two) the NTT
// stage supports. All three primes below satisfy p-1 = k*2^27 for some k,
// so 2^27 is the largest power-of-two convolution length available
// regardless of platform word width; this is deliberately conservative
// rather than picking different, less battle-tested primes per word width
// (see DESIGN.md).
const maxOrder = 27

// nttPrimes are three NTT-friendly primes, each congruent to 1 modulo
// 2^27, with nttRoots[i] a primitive root of nttPrimes[i]. This is the
// standard "three NTT primes" set used throughout convolution-based
// bignum multiplication.
var nttPrimes = [3]Word{2013265921, 2281701377, 3221225473}
var nttRoots = [3]Word{31, 3, 5}

func modAdd(a, b, p Word) Word {
	// The s < a test catches Word overflow on 32-bit platforms, where the
	// largest prime exceeds 2^31 and a+b can wrap.
	s := a + b
	if s < a || s >= p {
		s -= p
	}
	return s
}

func modSub(a, b, p Word) Word {
	if a >= b {
		return a - b
	}
	return a + p - b
}

// modMul returns a*b mod p via a full double-word product followed by a
// hardware division; a, b < p and p fits comfortably within a Word, so
// this needs no reciprocal trick of its own (the primes are fixed and
// small, unlike the caller-supplied divisors FastDivideNormalized exists
// for).
func modMul(a, b, p Word) Word {
	hi, lo := mulWW(a, b)
	_, r := bits.Div(hi, lo, p)
	return r
}

func modPow(base, exp, p Word) Word {
	result := Word(1) % p
	base %= p
	for exp > 0 {
		if exp&1 == 1 {
			result = modMul(result, base, p)
		}
		base = modMul(base, base, p)
		exp >>= 1
	}
	return result
}

func modInverse(a, p Word) Word {
	return modPow(a, p-2, p)
}

// nttTransform computes the (inverse, if invert) NTT of a in place modulo
// p, using root as a primitive root of p. len(a) must be a power of two
// dividing 2^maxOrder.
func nttTransform(a []Word, invert bool, p, root Word) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		exp := (p - 1) / Word(length)
		w := modPow(root, exp, p)
		if invert {
			w = modInverse(w, p)
		}
		for i := 0; i < n; i += length {
			wn := Word(1)
			half := length / 2
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := modMul(a[i+j+half], wn, p)
				a[i+j] = modAdd(u, v, p)
				a[i+j+half] = modSub(u, v, p)
				wn = modMul(wn, w, p)
			}
		}
	}

	if invert {
		nInv := modInverse(Word(n), p)
		for i := range a {
			a[i] = modMul(a[i], nInv, p)
		}
	}
}

// nttSplit re-expresses x as a little-endian sequence of base-2^16
// digits.
func nttSplit(x Buffer) []Word {
	const perWord = _W / nttDigitBits
	digits := make([]Word, len(x)*perWord)
	for i, w := range x {
		for k := 0; k < perWord; k++ {
			digits[i*perWord+k] = (w >> (uint(k) * nttDigitBits)) & (nttDigitBase - 1)
		}
	}
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	return digits
}

// crtCombine reconstructs, as a Buffer, the unique non-negative integer
// congruent to r[i] modulo nttPrimes[i] for all i, via Garner's algorithm.
// Each step's arithmetic stays within this package's own Buffer
// primitives since the running modulus product quickly exceeds one Word.
func crtCombine(r [3]Word) Buffer {
	acc := Buffer(nil).setWord(r[0])
	m := Buffer(nil).setWord(nttPrimes[0])

	for k := 1; k < len(nttPrimes); k++ {
		p := nttPrimes[k]
		mModP := m.modW(p)
		accModP := acc.modW(p)
		diff := modSub(r[k], accModP, p)
		invM := modInverse(mModP, p)
		t := modMul(diff, invM, p)

		term := Buffer(nil).mulAddWW(m, t, 0)
		acc = Buffer(nil).add(acc, term)
		m = Buffer(nil).mulAddWW(m, p, 0)
	}
	return acc
}

// nttCombine reassembles a sequence of (possibly oversized, post-CRT)
// base-2^16 coefficients into a normalized Buffer via Horner's method:
// result = sum(digits[i] * base^i). This is O(n^2) rather than the linear
// carry-propagation a production implementation would use (see
// DESIGN.md); it is unconditionally correct because it reuses this
// package's own shl/add rather than a hand-rolled carry scheme.
func nttCombine(digits []Buffer) Buffer {
	var result Buffer
	for i := len(digits) - 1; i >= 0; i-- {
		result = Buffer(nil).shl(result, nttDigitBits)
		result = Buffer(nil).add(result, digits[i])
	}
	return result.norm()
}

// mulNTT sets z = x*y using three-prime NTT convolution and returns the
// normalized result.
func (z Buffer) mulNTT(x, y Buffer) Buffer {
	xd := nttSplit(x)
	yd := nttSplit(y)
	resultLen := len(xd) + len(yd)
	if resultLen == 0 {
		return z[:0]
	}

	n := 1
	for n < resultLen {
		n <<= 1
	}
	if n > 1<<maxOrder {
		// The primes only supply roots of unity up to order 2^maxOrder, so
		// a longer transform cannot represent the convolution.
		panic(NumberTooLargeError{Len: resultLen})
	}

	var conv [3][]Word
	for k := 0; k < 3; k++ {
		a := make([]Word, n)
		b := make([]Word, n)
		copy(a, xd)
		copy(b, yd)
		nttTransform(a, false, nttPrimes[k], nttRoots[k])
		nttTransform(b, false, nttPrimes[k], nttRoots[k])
		for i := range a {
			a[i] = modMul(a[i], b[i], nttPrimes[k])
		}
		nttTransform(a, true, nttPrimes[k], nttRoots[k])
		conv[k] = a[:resultLen]
	}

	digits := make([]Buffer, resultLen)
	for i := 0; i < resultLen; i++ {
		digits[i] = crtCombine([3]Word{conv[0][i], conv[1][i], conv[2][i]})
	}

	result := nttCombine(digits)
	z = z.make(len(result))
	copy(z, result)
	return z.norm()
}
