// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// A Word is a single limb of a multi-precision unsigned integer, sized to
// the platform's native pointer width.
type Word = uint

const (
	_W = bits.UintSize // word width in bits
	_B = 1 << (_W - 1) << 1
)

// addWWC returns the sum x+y+carryIn and the carry out of the addition.
// carryIn and the returned carry must be 0 or 1.
func addWWC(x, y, carryIn Word) (sum, carryOut Word) {
	s, c := bits.Add(x, y, carryIn)
	return s, c
}

// subWWB returns the difference x-y-borrowIn and the borrow out of the
// subtraction. borrowIn and the returned borrow must be 0 or 1.
func subWWB(x, y, borrowIn Word) (diff, borrowOut Word) {
	d, b := bits.Sub(x, y, borrowIn)
	return d, b
}

// mulWW returns the 2-word product of x*y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	return bits.Mul(x, y)
}

// splitDouble splits a (hi, lo) pair into its two halves; it exists purely
// to give the (hi, lo) pair a name at call sites that think in terms of a
// single double-width value.
func splitDouble(hi, lo Word) (Word, Word) { return hi, lo }

// combine is the inverse of splitDouble.
func combine(hi, lo Word) (Word, Word) { return hi, lo }

// bitLen returns the minimum number of bits required to represent x; the
// result is 0 for x == 0.
func bitLen(x Word) int {
	return bits.UintSize - bits.LeadingZeros(x)
}

// leadingZeros returns the number of leading zero bits in x; the result is
// _W for x == 0.
func leadingZeros(x Word) uint {
	return uint(bits.LeadingZeros(x))
}

// trailingZeros returns the number of trailing zero bits in x; the result
// is _W for x == 0.
func trailingZeros(x Word) uint {
	return uint(bits.TrailingZeros(x))
}

// FastDivideSmall precomputes the reciprocal of a Word divisor d so that
// subsequent div_rem calls replace a hardware division with two
// multiplications, a shift and an add/sub.
//
// Granlund, Montgomery, "Division by Invariant Integers using
// Multiplication", Algorithm 4.1.
type FastDivideSmall struct {
	divisor Word
	shift   uint
	m       Word
}

// NewFastDivideSmall precomputes the reciprocal of d. d must be >= 2.
func NewFastDivideSmall(d Word) FastDivideSmall {
	if d < 2 {
		panic("bigint: FastDivideSmall requires a divisor >= 2")
	}
	n := uint(bitLen(d - 1)) // == ceil(log2(d)) for d > 1
	shift := n - 1
	// m = floor(B * (2**n - d) / d) + 1; 2**n - d < d so the division of
	// the double-word (2**n - d, 0) by d does not overflow a Word.
	x := onesWord(n) - (d - 1)
	q, _ := bits.Div(x, 0, d)
	return FastDivideSmall{divisor: d, shift: shift, m: Word(q) + 1}
}

func onesWord(n uint) Word {
	if n >= _W {
		return ^Word(0)
	}
	return (Word(1) << n) - 1
}

// DivRem returns (a/d, a%d).
func (f FastDivideSmall) DivRem(a Word) (q, r Word) {
	_, t := mulWW(f.m, a)
	q = (t + ((a - t) >> 1)) >> f.shift
	r = a - q*f.divisor
	return q, r
}

// FastDivideNormalized precomputes the reciprocal of a normalized divisor
// (top bit set) so that a DoubleWord/Word division costs two multiplications
// and a handful of corrections instead of a hardware double-word division.
//
// Möller, Granlund, "Improved division by invariant integers",
// Algorithm 4.
type FastDivideNormalized struct {
	divisor Word
	m       Word
}

// NewFastDivideNormalized precomputes the reciprocal of a normalized d
// (d's top bit must be set).
func NewFastDivideNormalized(d Word) FastDivideNormalized {
	if leadingZeros(d) != 0 {
		panic("bigint: FastDivideNormalized requires a normalized divisor")
	}
	// m = floor((B^2-1)/d) - B, computed without overflowing the hardware
	// division as floor(((B-1-d)*B + (B-1)) / d): d's top bit is set, so
	// ^d < d and the quotient fits in one Word.
	q, _ := bits.Div(^d, ^Word(0), d)
	return FastDivideNormalized{divisor: d, m: q}
}

// DivRem returns (q, r) such that hi*B+lo = q*divisor+r, 0 <= r < divisor.
// Precondition: hi < divisor (so that the quotient fits in a single Word).
func (f FastDivideNormalized) DivRem(hi, lo Word) (q, r Word) {
	// (q0, q1) = m*hi + (hi:lo), as a double-word addition.
	mHi, mLo := mulWW(f.m, hi)
	q0, carry := bits.Add(mLo, lo, 0)
	q1, _ := bits.Add(mHi, hi, carry)

	q1++ // wrapping add
	r = lo - q1*f.divisor // wrapping sub

	if r > q0 {
		q1--
		r += f.divisor
	}
	if r >= f.divisor {
		q1++
		r -= f.divisor
	}
	return q1, r
}

func umax(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

func umin(a, b uint) uint {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
