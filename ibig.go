// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// IBig is an arbitrarily large signed integer: a sign paired with a UBig
// magnitude. By invariant, neg is always false when the magnitude is zero
// (there is no signed zero).
//
// Add/Sub reduce to a case analysis on the sign pair: "x+y", "(-x)+(-y)
// == -(x+y)", "x+(-y) == x-y == -(y-x)", "(-x)+y == y-x == -(x-y)",
// with a compare deciding which magnitude subtraction stays non-negative.
type IBig struct {
	neg bool
	mag UBig
}

// IBigZero is the additive identity.
var IBigZero = IBig{}

// IBigOne is the multiplicative identity.
var IBigOne = IBig{mag: One}

// IBigFromUBig wraps a non-negative UBig as an IBig.
func IBigFromUBig(m UBig) IBig {
	return IBig{mag: m}
}

// IBigFromInt64 constructs an IBig from a signed 64-bit integer.
func IBigFromInt64(v int64) IBig {
	if v < 0 {
		// v == math.MinInt64 overflows -v as an int64; handle via uint64.
		return IBig{neg: true, mag: UBigFromUint64(uint64(-(v + 1)) + 1)}
	}
	return IBig{mag: UBigFromUint64(uint64(v))}
}

func ibigNormal(neg bool, mag UBig) IBig {
	if mag.IsZero() {
		return IBig{}
	}
	return IBig{neg: neg, mag: mag}
}

// IsZero reports whether x == 0.
func (x IBig) IsZero() bool { return x.mag.IsZero() }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x IBig) Sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -x.
func (x IBig) Neg() IBig {
	return ibigNormal(!x.neg, x.mag)
}

// Abs returns |x|.
func (x IBig) Abs() IBig {
	return IBig{mag: x.mag}
}

// Not returns the bitwise complement of x under an infinite two's-complement
// representation: !x = -x - 1. This is the only
// definition that makes sense for an unbounded integer, where there is no
// fixed bit width to complement within; it is defined on IBig only; UBig has
// no sign bit to complement against.
func (x IBig) Not() IBig {
	return x.Neg().Sub(IBigOne)
}

// UnsignedAbs returns the magnitude of x as a UBig.
func (x IBig) UnsignedAbs() UBig {
	return x.mag
}

// Cmp compares x and y, returning -1, 0 or +1.
func (x IBig) Cmp(y IBig) int {
	switch {
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	case x.neg:
		return y.mag.Cmp(x.mag)
	default:
		return x.mag.Cmp(y.mag)
	}
}

// Equal reports whether x == y.
func (x IBig) Equal(y IBig) bool { return x.Cmp(y) == 0 }

// Add returns x + y.
func (x IBig) Add(y IBig) IBig {
	if x.neg == y.neg {
		// x+y == x+y; (-x)+(-y) == -(x+y)
		return ibigNormal(x.neg, x.mag.Add(y.mag))
	}
	// x+(-y) == x-y == -(y-x); (-x)+y == y-x == -(x-y)
	if x.mag.Cmp(y.mag) >= 0 {
		return ibigNormal(x.neg, x.mag.Sub(y.mag))
	}
	return ibigNormal(!x.neg, y.mag.Sub(x.mag))
}

// Sub returns x - y.
func (x IBig) Sub(y IBig) IBig {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x IBig) Mul(y IBig) IBig {
	return ibigNormal(x.neg != y.neg, x.mag.Mul(y.mag))
}

// DivRem returns the truncated quotient and remainder of x/y, i.e. the
// remainder has the same sign as x (Go/Rust integer-division semantics).
// Panics with DivisionByZeroError if y == 0.
func (x IBig) DivRem(y IBig) (IBig, IBig) {
	q, r := x.mag.DivRem(y.mag)
	return ibigNormal(x.neg != y.neg, q), ibigNormal(x.neg, r)
}

// DivEuclid returns the Euclidean quotient of x/y: the remainder returned
// by RemEuclid is always non-negative. Panics with DivisionByZeroError if
// y == 0.
func (x IBig) DivEuclid(y IBig) IBig {
	q, _ := x.DivRemEuclid(y)
	return q
}

// RemEuclid returns the non-negative remainder of x/y. Panics with
// DivisionByZeroError if y == 0.
func (x IBig) RemEuclid(y IBig) IBig {
	_, r := x.DivRemEuclid(y)
	return r
}

// DivRemEuclid returns the Euclidean quotient and remainder of x/y in one
// call: the remainder always lies in [0, |y|). Panics with
// DivisionByZeroError if y == 0.
func (x IBig) DivRemEuclid(y IBig) (IBig, IBig) {
	q, r := x.DivRem(y)
	if !r.neg {
		return q, r
	}
	if y.neg {
		return q.Add(IBigOne), r.Sub(y)
	}
	return q.Sub(IBigOne), r.Add(y)
}

// Gcd returns the greatest common divisor of |x| and |y|. Panics with
// UndefinedError if both are zero.
func (x IBig) Gcd(y IBig) UBig {
	return x.mag.Gcd(y.mag)
}

// ExtendedGcd returns (g, a, b) such that g = gcd(x, y) and
// a*x + b*y == g. Panics with UndefinedError if both x and y are zero.
func ExtendedGcd(x, y IBig) (g UBig, a, b IBig) {
	gm, xs, ys := extendedGcdBuffers(x.mag.buf(), y.mag.buf())
	if x.neg {
		xs = sNeg(xs)
	}
	if y.neg {
		ys = sNeg(ys)
	}
	return fromBuffer(gm), ibigNormal(xs.neg, fromBuffer(xs.mag)), ibigNormal(ys.neg, fromBuffer(ys.mag))
}

// Pow returns x**exp. The result is negative iff x is negative and exp
// is odd.
func (x IBig) Pow(exp UBig) IBig {
	return ibigNormal(x.neg && exp.Bit(0), x.mag.Pow(exp))
}

// The bitwise operators below treat negative values as infinite
// two's-complement bit strings, reducing each sign combination to an
// unsigned operation on the magnitudes via -v == ^(v-1):
//
//	(-x) & (-y) == -(((x-1) | (y-1)) + 1)
//	  x  & (-y) ==     x &^ (y-1)
//	(-x) | (-y) == -(((x-1) & (y-1)) + 1)
//	  x  | (-y) == -(((y-1) &^ x) + 1)
//	(-x) ^ (-y) ==    (x-1) ^ (y-1)
//	  x  ^ (-y) == -(( x ^ (y-1)) + 1)

// And returns x & y.
func (x IBig) And(y IBig) IBig {
	switch {
	case !x.neg && !y.neg:
		return IBigFromUBig(x.mag.And(y.mag))
	case x.neg && y.neg:
		return ibigNormal(true, x.mag.Sub(One).Or(y.mag.Sub(One)).Add(One))
	case y.neg:
		return IBigFromUBig(x.mag.AndNot(y.mag.Sub(One)))
	default:
		return IBigFromUBig(y.mag.AndNot(x.mag.Sub(One)))
	}
}

// Or returns x | y.
func (x IBig) Or(y IBig) IBig {
	switch {
	case !x.neg && !y.neg:
		return IBigFromUBig(x.mag.Or(y.mag))
	case x.neg && y.neg:
		return ibigNormal(true, x.mag.Sub(One).And(y.mag.Sub(One)).Add(One))
	case y.neg:
		return ibigNormal(true, y.mag.Sub(One).AndNot(x.mag).Add(One))
	default:
		return ibigNormal(true, x.mag.Sub(One).AndNot(y.mag).Add(One))
	}
}

// Xor returns x ^ y.
func (x IBig) Xor(y IBig) IBig {
	switch {
	case !x.neg && !y.neg:
		return IBigFromUBig(x.mag.Xor(y.mag))
	case x.neg && y.neg:
		return IBigFromUBig(x.mag.Sub(One).Xor(y.mag.Sub(One)))
	case y.neg:
		return ibigNormal(true, x.mag.Xor(y.mag.Sub(One)).Add(One))
	default:
		return ibigNormal(true, y.mag.Xor(x.mag.Sub(One)).Add(One))
	}
}

// Lsh returns x << s.
func (x IBig) Lsh(s uint) IBig {
	return ibigNormal(x.neg, x.mag.Lsh(s))
}

// Rsh returns an arithmetic right shift of x by s bits (rounding towards
// negative infinity, as Go's native signed >> does): for x >= 0 this is
// the magnitude's logical shift; for x < 0 the magnitude is shifted and
// then incremented if any shifted-out bit was set, per
// shift.go's anyLowBitsSet.
func (x IBig) Rsh(s uint) IBig {
	shifted := x.mag.Rsh(s)
	if !x.neg {
		return ibigNormal(false, shifted)
	}
	if x.mag.buf().anyLowBitsSet(s) {
		shifted = shifted.Add(One)
	}
	return ibigNormal(true, shifted)
}
