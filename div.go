// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// Division: single-limb division via a direct hardware (hi,lo)/d step,
// multi-limb division via Knuth's Algorithm D (TAOCP vol. 2, 4.3.1), and
// a recursive block division for large divisors.
//
// Normalization is a binary left-shift by leadingZeros(v[n-1]) applied
// to both operands, undone afterwards by right-shifting the remainder;
// qhat estimation goes through a FastDivideNormalized reciprocal of the
// normalized top divisor limb.

// divW sets q = x/d and returns the remainder; panics with
// DivisionByZeroError if d == 0.
func (z Buffer) divW(x Buffer, d Word) (q Buffer, r Word) {
	m := len(x)
	switch {
	case d == 0:
		panic(DivisionByZeroError{})
	case d == 1:
		return z.set(x), 0
	case m == 0:
		return z[:0], 0
	}
	z = z.make(m)
	for i := m - 1; i >= 0; i-- {
		z[i], r = bits.Div(r, x[i], d)
	}
	return z.norm(), r
}

// modW returns x mod d.
func (x Buffer) modW(d Word) (r Word) {
	for i := len(x) - 1; i >= 0; i-- {
		_, r = bits.Div(r, x[i], d)
	}
	return r
}


// div computes q, r such that u = q*v + r, 0 <= r < v, using z as storage
// for q and z2 as storage for r. Panics with DivisionByZeroError if v is
// zero.
func (z Buffer) div(z2, u, v Buffer) (q, r Buffer) {
	if len(v) == 0 {
		panic(DivisionByZeroError{})
	}
	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}
	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}
	q, r = z.divLarge(z2, u, v)
	return
}

// divLarge implements division for len(v) >= 2, len(u) >= len(v).
func (z Buffer) divLarge(z2, uIn, vIn Buffer) (q, r Buffer) {
	n := len(vIn)
	m := len(uIn)

	shift := leadingZeros(vIn[n-1])

	vp := getBuffer(n)
	v := *vp
	shlVU(v, vIn, shift)

	u := z2.make(m + 1)
	u[m] = shlVU(u[:m], uIn, shift)

	if alias(z, u) {
		z = nil
	}
	q = z.make(m - n + 1)

	recip := NewFastDivideNormalized(v[n-1])
	if n < divRecursiveThreshold {
		q.divBasic(u, v, recip)
	} else {
		q.divRecursive(u, v, recip)
	}
	putBuffer(vp)

	q = q.norm()

	rr := make(Buffer, n)
	shrVU(rr, u[:n], shift)
	r = rr.norm()
	return q, r
}

// divBasic performs word-by-word division of u by v (Knuth Algorithm D).
// The quotient is written into the pre-allocated q; the remainder
// overwrites u in place (in its low len(v) limbs).
//
// Preconditions: len(v) >= 2, v[len(v)-1]'s top bit is set (normalized),
// recip is the FastDivideNormalized reciprocal of v[len(v)-1], and q is
// large enough to hold the quotient (len(u)-len(v)+1 limbs).
func (q Buffer) divBasic(u, v Buffer, recip FastDivideNormalized) {
	n := len(v)
	m := len(u) - n

	qhatvp := getBuffer(n + 1)
	qhatv := *qhatvp

	vn1 := v[n-1]
	vn2 := v[n-2]
	for j := m; j >= 0; j-- {
		qhat := ^Word(0)
		var ujn Word
		if j+n < len(u) {
			ujn = u[j+n]
		}
		if ujn != vn1 {
			var rhat Word
			qhat, rhat = recip.DivRem(ujn, u[j+n-1])

			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		qhl := len(qhatv)
		if j+qhl > len(u) && qhatv[n] == 0 {
			qhl--
		}
		c := subVV(u[j:j+qhl], u[j:], qhatv[:qhl])
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			if n < qhl {
				u[j+n] += c
			}
			qhat--
		}

		if j == m && m == len(q) && qhat == 0 {
			continue
		}
		q[j] = qhat
	}

	putBuffer(qhatvp)
}

// divRecursiveThreshold is the divisor length (in limbs) at which divLarge
// switches from divBasic to the recursive block division below. Tunable,
// like the multiplication thresholds in mul.go.
var divRecursiveThreshold = 100

// divRecursive performs word-by-word division of u by v.
// The quotient is written in pre-allocated z.
// The remainder overwrites input u.
//
// Precondition:
//   - len(z) >= len(u)-len(v)
//   - v is normalized (top bit of v[len(v)-1] set) and recip is the
//     FastDivideNormalized reciprocal of v[len(v)-1]
//
// See Burnikel, Ziegler, "Fast Recursive Division", Algorithm 1 and 2.
func (z Buffer) divRecursive(u, v Buffer, recip FastDivideNormalized) {
	// Recursion depth is less than 2 log2(len(v)).
	// Allocate a slice of temporaries to be reused across recursion,
	// plus one scratch large enough for Karatsuba on operands as large
	// as v.
	recDepth := 2 * bits.Len(uint(len(v)))
	tmp := getBuffer(3 * len(v))
	temps := make([]*Buffer, recDepth)
	z.clear()
	z.divRecursiveStep(u, v, 0, tmp, temps, recip)
	for _, t := range temps {
		if t != nil {
			putBuffer(t)
		}
	}
	putBuffer(tmp)
}

// divRecursiveStep computes the division of u by v.
// - z must be large enough to hold the quotient
// - the quotient will overwrite z
// - the remainder will overwrite u
func (z Buffer) divRecursiveStep(u, v Buffer, depth int, tmp *Buffer, temps []*Buffer, recip FastDivideNormalized) {
	u = u.norm()
	v = v.norm()

	if len(u) == 0 {
		z.clear()
		return
	}
	n := len(v)
	if n < divRecursiveThreshold {
		z.divBasic(u, v, recip)
		return
	}
	m := len(u) - n
	if m < 0 {
		return
	}

	// Produce the quotient by blocks of B words.
	// Division by v (length n) is done using a length n/2 division
	// and a length n/2 multiplication for each block. The final
	// complexity is driven by multiplication complexity.
	B := n / 2

	// Allocate a buffer for qhat below.
	if temps[depth] == nil {
		temps[depth] = getBuffer(n)
	} else {
		*temps[depth] = (*temps[depth]).make(B + 1)
	}

	j := m
	for j > B {
		// Divide u[j-B:j+n] by v. Keep the remainder in u for the
		// next block.
		//
		// The following property will be used (Lemma 2):
		// if u = u1 << s + u0
		//    v = v1 << s + v0
		// then floor(u1/v1) >= floor(u/v)
		//
		// Moreover, the difference is at most 2 if len(v1) >= len(u/v)
		// We choose s = B-1 since len(v)-B >= B+1 >= len(u/v)
		s := B - 1
		// Except for the first step, the top bits are always
		// a division remainder, so the quotient length is <= n.
		uu := u[j-B:]

		qhat := *temps[depth]
		qhat.clear()
		qhat.divRecursiveStep(uu[s:B+n], v[s:], depth+1, tmp, temps, recip)
		qhat = qhat.norm()
		// Adjust the quotient:
		//    u = u_h << s + u_l
		//    v = v_h << s + v_l
		//  u_h = q̂ v_h + rh
		//    u = q̂ (v - v_l) + rh << s + u_l
		// After the above step, u contains a remainder:
		//    u = rh << s + u_l
		// and we need to subtract q̂ v_l
		//
		// But it may be a bit too large, in which case q̂ needs to be
		// smaller.
		qhatv := (*tmp).make(3 * n)
		qhatv.clear()
		qhatv = qhatv.mul(qhat, v[:s])
		for i := 0; i < 2; i++ {
			e := qhatv.cmp(uu.norm())
			if e <= 0 {
				break
			}
			subVW(qhat, qhat, 1)
			c := subVV(qhatv[:s], qhatv[:s], v[:s])
			if len(qhatv) > s {
				subVW(qhatv[s:], qhatv[s:], c)
			}
			addAt(uu[s:], v[s:], 0)
		}
		if qhatv.cmp(uu.norm()) > 0 {
			panic("impossible")
		}
		c := subVV(uu[:len(qhatv)], uu[:len(qhatv)], qhatv)
		if c > 0 {
			subVW(uu[len(qhatv):], uu[len(qhatv):], c)
		}
		addAt(z, qhat, j-B)
		j -= B
	}

	// Now u < (v<<B), compute the lower bits in the same way.
	// Choose shift = B here.
	s := B
	qhat := *temps[depth]
	qhat.clear()
	qhat.divRecursiveStep(u[s:].norm(), v[s:], depth+1, tmp, temps, recip)
	qhat = qhat.norm()
	qhatv := (*tmp).make(3 * n)
	qhatv.clear()
	qhatv = qhatv.mul(qhat, v[:s])
	// Set the correct remainder as before.
	for i := 0; i < 2; i++ {
		if e := qhatv.cmp(u.norm()); e > 0 {
			subVW(qhat, qhat, 1)
			c := subVV(qhatv[:s], qhatv[:s], v[:s])
			if len(qhatv) > s {
				subVW(qhatv[s:], qhatv[s:], c)
			}
			addAt(u[s:], v[s:], 0)
		}
	}
	if qhatv.cmp(u.norm()) > 0 {
		panic("impossible")
	}
	c := subVV(u[0:len(qhatv)], u[0:len(qhatv)], qhatv)
	if c > 0 {
		c = subVW(u[len(qhatv):], u[len(qhatv):], c)
	}
	if c > 0 {
		panic("impossible")
	}

	// Done!
	addAt(z, qhat.norm(), 0)
}

// greaterThan reports whether the double-word x1:x2 is strictly greater
// than y1:y2.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
