// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// NormalizedModulus is a precomputed reduction context: a shifted,
// top-bit-normalized modulus m' = m << leadingZeros(top limb of m) and
// the FastDivideNormalized reciprocal of m''s top limb. divLarge derives
// exactly this normalize/build-reciprocal sequence fresh on every call
// because its divisor varies; NormalizedModulus hoists it out to
// construction time for a divisor — a modulus — that ring reuses across
// many residue operations.
type NormalizedModulus struct {
	m     UBig
	shift uint
	mp    Buffer
	recip FastDivideNormalized
}

// NewNormalizedModulus precomputes the normalized-reduction context for
// modulus m. Panics with DivisionByZeroError if m is zero.
func NewNormalizedModulus(m UBig) NormalizedModulus {
	if m.IsZero() {
		panic(DivisionByZeroError{})
	}
	b := m.buf()
	shift := leadingZeros(b[len(b)-1])
	mp := Buffer(nil).shl(b, shift)
	recip := NewFastDivideNormalized(mp[len(mp)-1])
	return NormalizedModulus{m: m, shift: shift, mp: mp, recip: recip}
}

// Modulus returns the plain (unshifted) modulus m.
func (nm NormalizedModulus) Modulus() UBig { return nm.m }

// Shift returns the normalization shift applied to produce m' and to the
// normalized residues ring.Residue stores.
func (nm NormalizedModulus) Shift() uint { return nm.shift }

// ShiftedModulus returns m' = m << Shift(), the top-bit-normalized
// modulus that normalized residues are compared and added/subtracted
// against.
func (nm NormalizedModulus) ShiftedModulus() UBig { return fromBuffer(nm.mp) }

// Reduce returns x mod nm.Modulus(), using the precomputed shift/m'/
// reciprocal instead of re-deriving them the way UBig.Mod would.
func (nm NormalizedModulus) Reduce(x UBig) UBig {
	xb := x.buf()
	if xb.cmp(nm.m.buf()) < 0 {
		return x
	}

	mp := nm.mp
	n := len(mp)
	shift := nm.shift

	if n == 1 {
		u := Buffer(nil).shl(xb, shift)
		var r Word
		for i := len(u) - 1; i >= 0; i-- {
			_, r = nm.recip.DivRem(r, u[i])
		}
		return fromBuffer(Buffer{r >> shift})
	}

	m := len(xb)
	u := make(Buffer, m+1)
	u[m] = shlVU(u[:m], xb, shift)

	q := make(Buffer, len(u)-n+1)
	q.divBasic(u, mp, nm.recip)

	rr := make(Buffer, n)
	shrVU(rr, u[:n], shift)
	return fromBuffer(rr)
}
