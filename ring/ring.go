// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ring provides a modular-arithmetic context: an immutable Ring
// fixes a modulus once, precomputing a normalized reduction context, and
// Residue values created from it carry that modulus implicitly, so that
// Add/Sub/Mul never need to re-validate or re-derive it.
//
// Residues remember their Ring by pointer identity: two Rings built from
// the same modulus are still distinct, and mixing their residues panics.
// This makes "which modulus does this value belong to" a property of the
// value rather than a convention the caller has to maintain.
package ring

import (
	"github.com/dbdeville/bigint"
)

// Ring is an immutable modular-arithmetic context for a fixed modulus
// m > 0. The zero Ring is not valid; use New.
//
// Construction precomputes a bigint.NormalizedModulus: the shifted
// modulus m' = m << leadingZeros(top_limb(m)) and the
// FastDivideNormalized reciprocal of m''s top limb, so that every
// Residue operation below reduces against that precomputed context
// instead of re-deriving shift/m'/reciprocal on every call.
type Ring struct {
	modulus bigint.NormalizedModulus
}

// New creates a Ring for modulus m. Panics with bigint.DivisionByZeroError
// if m == 0.
func New(m bigint.UBig) *Ring {
	return &Ring{modulus: bigint.NewNormalizedModulus(m)}
}

// Modulus returns the ring's modulus.
func (r *Ring) Modulus() bigint.UBig {
	return r.modulus.Modulus()
}

// Residue is a value known to belong to a particular Ring (by pointer
// identity, not merely by equal moduli — two Rings for the same modulus
// produce residues that Add/Sub/Mul/etc. will refuse to mix).
//
// normalized stores the value in the normalized form
// r * 2^shift, where r is the canonical representative in
// [0, modulus) and shift is r.ring.modulus.Shift(). normalized is always
// < r.ring.modulus.ShiftedModulus().
type Residue struct {
	ring       *Ring
	normalized bigint.UBig
}

// From reduces x modulo r's modulus and returns the resulting Residue.
func (r *Ring) From(x bigint.UBig) Residue {
	red := r.modulus.Reduce(x)
	return Residue{ring: r, normalized: red.Lsh(r.modulus.Shift())}
}

// FromSigned reduces x modulo r's modulus (per Euclidean/RemEuclid
// semantics, always producing a non-negative result) and returns the
// resulting Residue.
func (r *Ring) FromSigned(x bigint.IBig) Residue {
	m := bigint.IBigFromUBig(r.modulus.Modulus())
	red := x.RemEuclid(m)
	return r.From(red.UnsignedAbs())
}

// Ring returns the Ring this residue belongs to.
func (x Residue) Ring() *Ring { return x.ring }

// Value returns x's canonical representative in [0, modulus), unshifting
// the normalized internal form.
func (x Residue) Value() bigint.UBig {
	return x.normalized.Rsh(x.ring.modulus.Shift())
}

func (x Residue) checkRing(y Residue) {
	if x.ring != y.ring {
		panic(bigint.DifferentRingsError{})
	}
}

// Add returns x + y mod m: a slice add with a conditional subtract of
// m', operating entirely in the normalized representation.
func (x Residue) Add(y Residue) Residue {
	x.checkRing(y)
	mp := x.ring.modulus.ShiftedModulus()
	sum := x.normalized.Add(y.normalized)
	if sum.Cmp(mp) >= 0 {
		sum = sum.Sub(mp)
	}
	return Residue{ring: x.ring, normalized: sum}
}

// Sub returns x - y mod m: a slice subtract with a conditional add of m'
// when x < y.
func (x Residue) Sub(y Residue) Residue {
	x.checkRing(y)
	if x.normalized.Cmp(y.normalized) >= 0 {
		return Residue{ring: x.ring, normalized: x.normalized.Sub(y.normalized)}
	}
	mp := x.ring.modulus.ShiftedModulus()
	return Residue{ring: x.ring, normalized: x.normalized.Add(mp).Sub(y.normalized)}
}

// Negate returns -x mod m, i.e. m' - x with a zero special case.
func (x Residue) Negate() Residue {
	if x.normalized.IsZero() {
		return x
	}
	mp := x.ring.modulus.ShiftedModulus()
	return Residue{ring: x.ring, normalized: mp.Sub(x.normalized)}
}

// Mul returns x * y mod m. The normalized residues are un-shifted back to
// their canonical representatives, multiplied as plain big integers, and
// the product is reduced through the ring's precomputed context in a
// single normalized division step before being re-shifted into
// normalized form.
func (x Residue) Mul(y Residue) Residue {
	x.checkRing(y)
	shift := x.ring.modulus.Shift()
	r1 := x.normalized.Rsh(shift)
	r2 := y.normalized.Rsh(shift)
	prod := r1.Mul(r2)
	r3 := x.ring.modulus.Reduce(prod)
	return Residue{ring: x.ring, normalized: r3.Lsh(shift)}
}

// Div returns x / y mod m, i.e. x times the inverse of y. It fails with
// a NotInvertibleError if y has no inverse.
func (x Residue) Div(y Residue) (Residue, error) {
	x.checkRing(y)
	inv, err := y.Inverse()
	if err != nil {
		return Residue{}, err
	}
	return x.Mul(inv), nil
}

// Pow returns x**exp mod m. The exponentiation scheme is chosen from the
// exponent's bit length: short exponents use plain square-and-multiply
// (a window table would cost more to fill than it saves), longer ones a
// width-4 sliding window, and very long ones width-5.
func (x Residue) Pow(exp bigint.UBig) Residue {
	switch n := exp.BitLen(); {
	case n <= 32:
		return x.powBinary(exp)
	case n <= 512:
		return x.powWindow(exp, 4)
	default:
		return x.powWindow(exp, 5)
	}
}

// powBinary is plain square-and-multiply.
func (x Residue) powBinary(exp bigint.UBig) Residue {
	result := x.ring.From(bigint.One)
	base := x
	e := exp
	for !e.IsZero() {
		if e.Bit(0) {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e = e.Rsh(1)
	}
	return result
}

// PowSigned returns x**exp mod m for a possibly-negative exp, via
// Inverse for the negative case.
func (x Residue) PowSigned(exp bigint.IBig) (Residue, error) {
	if exp.Sign() >= 0 {
		return x.Pow(exp.UnsignedAbs()), nil
	}
	inv, err := x.Inverse()
	if err != nil {
		return Residue{}, err
	}
	return inv.Pow(exp.UnsignedAbs()), nil
}

// PowWindow returns x**exp mod m using width-4 sliding-window
// exponentiation regardless of the exponent's size; Pow normally picks
// the window for the caller.
func (x Residue) PowWindow(exp bigint.UBig) Residue {
	return x.powWindow(exp, 4)
}

// powWindow computes x**exp with a window of w bits: it precomputes the
// odd powers x^1, x^3, ..., x^(2^w - 1) once, then consumes up to w
// exponent bits per table multiplication, sliding each window so its low
// bit is set, so every table lookup hits an odd power.
func (x Residue) powWindow(exp bigint.UBig, w int) Residue {
	n := exp.BitLen()
	if n == 0 {
		return x.ring.From(bigint.One)
	}

	tableSize := 1 << (w - 1)
	odd := make([]Residue, tableSize)
	odd[0] = x
	sq := x.Mul(x)
	for i := 1; i < tableSize; i++ {
		odd[i] = odd[i-1].Mul(sq)
	}

	result := x.ring.From(bigint.One)
	i := n - 1
	for i >= 0 {
		if !exp.Bit(uint(i)) {
			result = result.Mul(result)
			i--
			continue
		}
		// Find the window [j, i] of length <= w ending at i whose low
		// bit is 1.
		j := i - w + 1
		if j < 0 {
			j = 0
		}
		for !exp.Bit(uint(j)) {
			j++
		}
		for k := i; k >= j; k-- {
			result = result.Mul(result)
		}
		v := windowValue(exp, j, i)
		result = result.Mul(odd[(v-1)/2])
		i = j - 1
	}
	return result
}

func windowValue(exp bigint.UBig, lo, hi int) uint {
	var v uint
	for i := hi; i >= lo; i-- {
		v <<= 1
		if exp.Bit(uint(i)) {
			v |= 1
		}
	}
	return v
}

// Inverse returns the multiplicative inverse of x mod m, via the
// extended Euclidean algorithm on (residue_of_x, m), or a
// NotInvertibleError if gcd(x, m) != 1.
func (x Residue) Inverse() (Residue, error) {
	m := x.ring.modulus.Modulus()
	g, a, _ := bigint.ExtendedGcd(bigint.IBigFromUBig(x.Value()), bigint.IBigFromUBig(m))
	if !g.Equal(bigint.One) {
		return Residue{}, bigint.NotInvertibleError{}
	}
	return x.ring.FromSigned(a), nil
}
