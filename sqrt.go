// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Integer square root via the Newton iteration
//
//	x_{k+1} = floor((x_k + floor(n/x_k)) / 2)
//
// which converges monotonically to floor(sqrt(n)) from any seed >=
// sqrt(n) and needs only the division and shift primitives already in
// this package. The seed is the power of two at half the bit length,
// rounded up, which is always an upper bound.

// Sqrt returns floor(sqrt(u)).
func (u UBig) Sqrt() UBig {
	s, _ := u.SqrtRem()
	return s
}

// SqrtRem returns (s, r) where s = floor(sqrt(u)) and r = u - s*s.
func (u UBig) SqrtRem() (UBig, UBig) {
	if u.IsZero() {
		return UBig{}, UBig{}
	}
	if u.Cmp(One) == 0 {
		return One, UBig{}
	}

	// Seed the iteration with 2^ceil(BitLen(u)/2), which is guaranteed
	// to be >= sqrt(u), so the iteration below (which only ever
	// decreases once it overshoots) converges monotonically.
	n := uint(u.BitLen())
	x := One.Lsh((n + 1) / 2)

	for {
		// next = (x + u/x) / 2
		q := u.Div(x)
		next := x.Add(q).Rsh(1)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}

	r := u.Sub(x.Sqr())
	return x, r
}

// IsPerfectSquare reports whether u is a perfect square.
func (u UBig) IsPerfectSquare() bool {
	_, r := u.SqrtRem()
	return r.IsZero()
}
