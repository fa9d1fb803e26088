// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math"

// Byte-sequence, fixed-width, and floating-point conversions. The float
// directions are built around math.Ldexp/math.Frexp rather than manual
// exponent-field assembly, since the mantissa extracted from the limbs is
// already binary.

// FromLEBytes constructs a UBig from little-endian bytes (bytes[0] is the
// least significant byte).
func FromLEBytes(b []byte) UBig {
	n := (len(b) + int(_W)/8 - 1) / (int(_W) / 8)
	buf := make(Buffer, n)
	for i, c := range b {
		buf[i/(int(_W)/8)] |= Word(c) << uint((i%(int(_W)/8))*8)
	}
	return fromBuffer(buf)
}

// FromBEBytes constructs a UBig from big-endian bytes (bytes[0] is the
// most significant byte).
func FromBEBytes(b []byte) UBig {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	return FromLEBytes(rev)
}

// ToLEBytes returns u's value as little-endian bytes, the minimal length
// that can hold it (0 bytes for u == 0).
func (u UBig) ToLEBytes() []byte {
	n := u.BitLen()
	nBytes := (n + 7) / 8
	out := make([]byte, nBytes)
	b := u.buf()
	wordBytes := int(_W) / 8
	for i := range out {
		w := Word(0)
		limb := i / wordBytes
		if limb < len(b) {
			w = b[limb]
		}
		out[i] = byte(w >> uint((i%wordBytes)*8))
	}
	return out
}

// ToBEBytes returns u's value as big-endian bytes, the minimal length
// that can hold it (0 bytes for u == 0).
func (u UBig) ToBEBytes() []byte {
	le := u.ToLEBytes()
	out := make([]byte, len(le))
	for i, c := range le {
		out[len(le)-1-i] = c
	}
	return out
}

// UBigFromInt64 constructs a UBig from a signed 64-bit integer, returning
// an OutOfBoundsError if v is negative.
func UBigFromInt64(v int64) (UBig, error) {
	if v < 0 {
		return UBig{}, OutOfBoundsError{Type: "UBig (negative int64)"}
	}
	return UBigFromUint64(uint64(v)), nil
}

// FromFloat64 truncates f toward zero into an IBig. It fails with a
// NotFiniteError for NaN or infinite input.
func FromFloat64(f float64) (IBig, error) {
	if math.IsNaN(f) {
		return IBig{}, NotFiniteError{Value: "NaN"}
	}
	if math.IsInf(f, 0) {
		return IBig{}, NotFiniteError{Value: "Inf"}
	}
	neg := math.Signbit(f)
	f = math.Trunc(math.Abs(f))
	if f == 0 {
		return IBig{}, nil
	}
	var mag UBig
	if f < (1 << 53) {
		// Exactly representable as a uint64 mantissa with no shift needed.
		mag = UBigFromUint64(uint64(f))
	} else {
		// f == frac * 2**exp, 0.5 <= frac < 1; frac*2**53 is an exact
		// 53-bit integer mantissa, and exp-53 >= 1 whenever f >= 2**53.
		frac, exp := math.Frexp(f)
		mantissa := uint64(frac * (1 << 53))
		mag = UBigFromUint64(mantissa).Lsh(uint(exp - 53))
	}
	return ibigNormal(neg, mag), nil
}

// FromFloat32 truncates f toward zero into an IBig. It fails with a
// NotFiniteError for NaN or infinite input.
func FromFloat32(f float32) (IBig, error) {
	return FromFloat64(float64(f))
}

// Uint64 converts u to a uint64, returning an OutOfBoundsError if u does
// not fit.
func (u UBig) Uint64() (uint64, error) {
	if u.BitLen() > 64 {
		return 0, OutOfBoundsError{Type: "uint64"}
	}
	b := u.buf()
	var v uint64
	if len(b) > 0 {
		v = uint64(b[0])
	}
	if _W < 64 && len(b) > 1 {
		v |= uint64(b[1]) << 32
	}
	return v, nil
}

// Uint32 converts u to a uint32, returning an OutOfBoundsError if u does
// not fit.
func (u UBig) Uint32() (uint32, error) {
	v, err := u.Uint64()
	if err != nil || v > math.MaxUint32 {
		return 0, OutOfBoundsError{Type: "uint32"}
	}
	return uint32(v), nil
}

// Int64 converts x to an int64, returning an OutOfBoundsError if x does
// not fit.
func (x IBig) Int64() (int64, error) {
	v, err := x.mag.Uint64()
	if err != nil {
		return 0, OutOfBoundsError{Type: "int64"}
	}
	if x.neg {
		if v > uint64(math.MaxInt64)+1 {
			return 0, OutOfBoundsError{Type: "int64"}
		}
		return -int64(v - 1) - 1, nil
	}
	if v > math.MaxInt64 {
		return 0, OutOfBoundsError{Type: "int64"}
	}
	return int64(v), nil
}

// Int32 converts x to an int32, returning an OutOfBoundsError if x does
// not fit.
func (x IBig) Int32() (int32, error) {
	v, err := x.Int64()
	if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, OutOfBoundsError{Type: "int32"}
	}
	return int32(v), nil
}

// Float64 converts u to the nearest float64, rounding half to even, and
// reports whether the conversion was exact.
func (u UBig) Float64() (float64, bool) {
	n := u.BitLen()
	if n == 0 {
		return 0, true
	}
	if n > 1024 {
		return math.Inf(1), false
	}
	mantissa, overflow, exact := roundToMantissa(u.buf(), n, 53)
	exp := n - 53
	if overflow {
		exp++
	}
	return math.Ldexp(float64(mantissa), exp), exact
}

// Float32 converts u to the nearest float32, rounding half to even, and
// reports whether the conversion was exact.
func (u UBig) Float32() (float32, bool) {
	n := u.BitLen()
	if n == 0 {
		return 0, true
	}
	if n > 128 {
		return float32(math.Inf(1)), false
	}
	mantissa, overflow, exact := roundToMantissa(u.buf(), n, 24)
	exp := n - 24
	if overflow {
		exp++
	}
	return float32(math.Ldexp(float64(mantissa), exp)), exact
}

// roundToMantissa extracts the top mantissaBits bits of b (which has
// bitLength n), rounding half to even, and reports whether no bit below
// the rounding point was set (i.e. whether the result is exact) and
// whether rounding carried out of the mantissaBits window.
//
// The truncated mantissa is incremented if the bits immediately below it
// are 1_10.., or 1_01..1 with any further bit set (sticky), or the
// boundary pattern 1_11... The three-bit window inspected here is
// (roundBit, stickyIndicator, keptLSB).
//
// When the increment carries all mantissaBits bits (e.g. a run of all
// ones rounds up to a power of two), the caller must bump its exponent
// by one in addition to using the renormalized mantissa returned here —
// shifting right without adjusting the exponent would silently halve the
// result.
func roundToMantissa(b Buffer, n, mantissaBits int) (mantissa uint64, overflow, exact bool) {
	if n <= mantissaBits {
		return bufToUint64(b) << uint(mantissaBits-n), false, true
	}
	shift := uint(n - mantissaBits)
	mantissa = bufToUint64(shrCopy(b, shift))

	roundBit := b.bitAt(shift - 1)
	sticky := shift > 1 && b.anyLowBitsSet(shift-1)
	exact = !roundBit && !sticky

	if roundBit && (sticky || mantissa&1 == 1) {
		mantissa++
		if mantissa>>mantissaBits != 0 {
			// Rounding overflowed into an extra bit; renormalize by
			// dropping the new LSB and reporting the overflow so the
			// caller can bump its exponent accordingly.
			mantissa >>= 1
			overflow = true
		}
	}
	return mantissa, overflow, exact
}

func shrCopy(b Buffer, s uint) Buffer {
	return Buffer(nil).shr(b, s)
}

func bufToUint64(b Buffer) uint64 {
	var v uint64
	if _W >= 64 {
		if len(b) > 0 {
			v = uint64(b[0])
		}
		return v
	}
	if len(b) > 0 {
		v = uint64(b[0])
	}
	if len(b) > 1 {
		v |= uint64(b[1]) << 32
	}
	return v
}
