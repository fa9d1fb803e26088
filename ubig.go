// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// UBig is an arbitrarily large unsigned integer.
//
// Internally it is a tagged Small(Word)/Large(Buffer) representation:
// large == nil means the value is held inline in small (the Small
// variant); large != nil means small is unused and large holds the value
// (the Large variant, always normalized: length >= 2, no leading zero
// limb, compact capacity). Values below 2^_W always take the Small form,
// so the dominant single-limb workloads never touch the heap.
type UBig struct {
	small Word
	large Buffer
}

// Zero is the additive identity.
var Zero = UBig{}

// One is the multiplicative identity.
var One = UBig{small: 1}

// UBigFromWord constructs a UBig from a single machine word.
func UBigFromWord(w Word) UBig {
	return UBig{small: w}
}

// UBigFromUint64 constructs a UBig from a uint64, splitting it across two
// Words on platforms where Word is narrower than 64 bits.
func UBigFromUint64(v uint64) UBig {
	if _W >= 64 {
		return UBig{small: Word(v)}
	}
	lo := Word(v)
	hi := Word(v >> 32)
	if hi == 0 {
		return UBig{small: lo}
	}
	return fromBuffer(Buffer{lo, hi})
}

// fromBuffer normalizes b and wraps it as a UBig, collapsing to the Small
// representation whenever the value fits in one Word.
func fromBuffer(b Buffer) UBig {
	b = b.norm()
	switch len(b) {
	case 0:
		return UBig{}
	case 1:
		return UBig{small: b[0]}
	default:
		return UBig{large: b.compact()}
	}
}

// buf returns a Buffer view of u's value, suitable for read-only use by
// the internal arithmetic kernels. Buffers returned for the Small variant
// are freshly allocated and may be used as mutation scratch by callers
// that own them exclusively; Large buffers must not be mutated.
func (u UBig) buf() Buffer {
	if u.large != nil {
		return u.large
	}
	if u.small == 0 {
		return nil
	}
	return Buffer{u.small}
}

// IsZero reports whether u == 0.
func (u UBig) IsZero() bool {
	return u.large == nil && u.small == 0
}

// BitLen returns the number of bits required to represent u, 0 for u == 0.
func (u UBig) BitLen() int {
	if u.large != nil {
		n := len(u.large)
		return (n-1)*_W + bitLen(u.large[n-1])
	}
	return bitLen(u.small)
}

// TrailingZeros returns the number of trailing zero bits in u, and false
// if u == 0 (which has no well-defined trailing-zero count).
func (u UBig) TrailingZeros() (int, bool) {
	return trailingZerosBuffer(u.buf())
}

// Bit reports whether bit i of u is set.
func (u UBig) Bit(i uint) bool {
	return u.buf().bitAt(i)
}

// SetBit returns u with bit i set.
func (u UBig) SetBit(i uint) UBig {
	n := int(i/_W) + 1
	b := u.buf()
	if n < len(b) {
		n = len(b)
	}
	z := make(Buffer, n)
	copy(z, b)
	z[i/_W] |= Word(1) << (i % _W)
	return fromBuffer(z)
}

// ClearBit returns u with bit i cleared.
func (u UBig) ClearBit(i uint) UBig {
	b := u.buf()
	if int(i/_W) >= len(b) {
		return u
	}
	z := make(Buffer, len(b))
	copy(z, b)
	z[i/_W] &^= Word(1) << (i % _W)
	return fromBuffer(z)
}

// IsPowerOfTwo reports whether u is an exact power of two (u != 0 and
// exactly one bit set).
func (u UBig) IsPowerOfTwo() bool {
	b := u.buf()
	b = b.norm()
	if len(b) == 0 {
		return false
	}
	for _, w := range b[:len(b)-1] {
		if w != 0 {
			return false
		}
	}
	top := b[len(b)-1]
	return top&(top-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= u (1 if u == 0).
func (u UBig) NextPowerOfTwo() UBig {
	if u.IsZero() {
		return One
	}
	if u.IsPowerOfTwo() {
		return u
	}
	n := uint(u.BitLen())
	return fromBuffer(Buffer(nil).shl(Buffer{1}, n))
}

// Cmp compares u and v, returning -1, 0 or +1.
func (u UBig) Cmp(v UBig) int {
	return u.buf().cmp(v.buf())
}

// Equal reports whether u == v.
func (u UBig) Equal(v UBig) bool {
	return u.Cmp(v) == 0
}

// Add returns u + v.
func (u UBig) Add(v UBig) UBig {
	return fromBuffer(Buffer(nil).add(u.buf(), v.buf()))
}

// Sub returns u - v. Panics if u < v (use SubChecked for a recoverable
// variant), mirroring the underflow panic of signed.go's Buffer.sub.
func (u UBig) Sub(v UBig) UBig {
	return fromBuffer(Buffer(nil).sub(u.buf(), v.buf()))
}

// SubChecked returns (u-v, true) if u >= v, or (0, false) otherwise.
func (u UBig) SubChecked(v UBig) (UBig, bool) {
	if u.Cmp(v) < 0 {
		return UBig{}, false
	}
	return u.Sub(v), true
}

// Mul returns u * v.
func (u UBig) Mul(v UBig) UBig {
	return fromBuffer(Buffer(nil).mul(u.buf(), v.buf()))
}

// Sqr returns u * u.
func (u UBig) Sqr() UBig {
	return fromBuffer(Buffer(nil).sqr(u.buf()))
}

// DivRem returns (u/v, u%v). Panics with DivisionByZeroError if v == 0.
func (u UBig) DivRem(v UBig) (UBig, UBig) {
	q, r := Buffer(nil).div(Buffer(nil), u.buf(), v.buf())
	return fromBuffer(q), fromBuffer(r)
}

// Div returns u / v. Panics with DivisionByZeroError if v == 0.
func (u UBig) Div(v UBig) UBig {
	q, _ := u.DivRem(v)
	return q
}

// Mod returns u % v. Panics with DivisionByZeroError if v == 0.
func (u UBig) Mod(v UBig) UBig {
	_, r := u.DivRem(v)
	return r
}

// Gcd returns the greatest common divisor of u and v. Panics with
// UndefinedError if both u and v are zero.
func (u UBig) Gcd(v UBig) UBig {
	return fromBuffer(gcdBuffers(u.buf(), v.buf()))
}

// Lsh returns u << s.
func (u UBig) Lsh(s uint) UBig {
	return fromBuffer(Buffer(nil).shl(u.buf(), s))
}

// Rsh returns u >> s.
func (u UBig) Rsh(s uint) UBig {
	return fromBuffer(Buffer(nil).shr(u.buf(), s))
}

// Pow returns u**exp via square-and-multiply.
func (u UBig) Pow(exp UBig) UBig {
	result := One
	base := u
	n := exp.BitLen()
	for i := 0; i < n; i++ {
		if exp.Bit(uint(i)) {
			result = result.Mul(base)
		}
		base = base.Sqr()
	}
	return result
}

func bitwiseBuf(x, y Buffer, f func(a, b Word) Word, resultLen int) Buffer {
	z := make(Buffer, resultLen)
	for i := range z {
		var a, b Word
		if i < len(x) {
			a = x[i]
		}
		if i < len(y) {
			b = y[i]
		}
		z[i] = f(a, b)
	}
	return z.norm()
}

// And returns u & v.
func (u UBig) And(v UBig) UBig {
	x, y := u.buf(), v.buf()
	n := imin(len(x), len(y))
	return fromBuffer(bitwiseBuf(x, y, func(a, b Word) Word { return a & b }, n))
}

// Or returns u | v.
func (u UBig) Or(v UBig) UBig {
	x, y := u.buf(), v.buf()
	n := imax(len(x), len(y))
	return fromBuffer(bitwiseBuf(x, y, func(a, b Word) Word { return a | b }, n))
}

// Xor returns u ^ v.
func (u UBig) Xor(v UBig) UBig {
	x, y := u.buf(), v.buf()
	n := imax(len(x), len(y))
	return fromBuffer(bitwiseBuf(x, y, func(a, b Word) Word { return a ^ b }, n))
}

// AndNot returns u &^ v.
func (u UBig) AndNot(v UBig) UBig {
	x, y := u.buf(), v.buf()
	return fromBuffer(bitwiseBuf(x, y, func(a, b Word) Word { return a &^ b }, len(x)))
}
