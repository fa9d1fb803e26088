// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUBigFromWordSmall(t *testing.T) {
	u := UBigFromWord(42)
	assert.Equal(t, "42", u.String())
	assert.False(t, u.IsZero())
	assert.True(t, Zero.IsZero())
}

func TestUBigFromUint64CrossesWordBoundary(t *testing.T) {
	v := uint64(0x1_0000_0001)
	u := UBigFromUint64(v)
	got, err := u.Uint64()
	assert.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestUBigAddSubMulAgainstBigInt(t *testing.T) {
	for trial := 0; trial < 300; trial++ {
		a := randUBig(10)
		b := randUBig(10)
		aBI, bBI := toBigInt(a), toBigInt(b)

		sum := a.Add(b)
		wantSum := new(big.Int).Add(aBI, bBI)
		assert.Equal(t, wantSum.String(), toBigInt(sum).String())

		prod := a.Mul(b)
		wantProd := new(big.Int).Mul(aBI, bBI)
		assert.Equal(t, wantProd.String(), toBigInt(prod).String())

		if a.Cmp(b) >= 0 {
			diff := a.Sub(b)
			wantDiff := new(big.Int).Sub(aBI, bBI)
			assert.Equal(t, wantDiff.String(), toBigInt(diff).String())
		}
	}
}

func TestUBigSubPanicsOnUnderflow(t *testing.T) {
	assert.Panics(t, func() { UBigFromWord(1).Sub(UBigFromWord(2)) })
}

func TestUBigSubChecked(t *testing.T) {
	_, ok := UBigFromWord(1).SubChecked(UBigFromWord(2))
	assert.False(t, ok)
	v, ok := UBigFromWord(5).SubChecked(UBigFromWord(2))
	assert.True(t, ok)
	assert.Equal(t, "3", v.String())
}

func TestUBigDivRemAgainstBigInt(t *testing.T) {
	for trial := 0; trial < 300; trial++ {
		a := randUBig(10)
		b := randUBig(5)
		if b.IsZero() {
			continue
		}
		q, r := a.DivRem(b)

		aBI, bBI := toBigInt(a), toBigInt(b)
		wantR := new(big.Int)
		wantQ, _ := new(big.Int).QuoRem(aBI, bBI, wantR)

		assert.Equal(t, wantQ.String(), toBigInt(q).String())
		assert.Equal(t, wantR.String(), toBigInt(r).String())
	}
}

func TestUBigDivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { UBigFromWord(1).Div(Zero) })
}

func TestUBigGcdUndefinedPanics(t *testing.T) {
	assert.Panics(t, func() { Zero.Gcd(Zero) })
}

func TestUBigPow(t *testing.T) {
	got := UBigFromWord(2).Pow(UBigFromWord(10))
	assert.Equal(t, "1024", got.String())
	assert.Equal(t, "1", UBigFromWord(5).Pow(Zero).String())
}

func TestUBigBitwiseOps(t *testing.T) {
	a := UBigFromWord(0b1100)
	b := UBigFromWord(0b1010)
	assert.Equal(t, "8", a.And(b).String())
	assert.Equal(t, "14", a.Or(b).String())
	assert.Equal(t, "6", a.Xor(b).String())
	assert.Equal(t, "4", a.AndNot(b).String())
}

func TestUBigSetBitClearBit(t *testing.T) {
	u := Zero
	u = u.SetBit(0)
	u = u.SetBit(100)
	assert.True(t, u.Bit(0))
	assert.True(t, u.Bit(100))
	assert.False(t, u.Bit(50))

	u = u.ClearBit(0)
	assert.False(t, u.Bit(0))
	assert.True(t, u.Bit(100))

	u = u.ClearBit(100)
	assert.True(t, u.IsZero())

	// Clearing a bit beyond the value's length is a no-op.
	v := UBigFromWord(1)
	assert.True(t, v.ClearBit(500).Equal(v))
}

func TestUBigShifts(t *testing.T) {
	u := UBigFromWord(1)
	assert.Equal(t, "1024", u.Lsh(10).String())
	assert.Equal(t, "1", u.Lsh(10).Rsh(10).String())
}

func TestUBigIsPowerOfTwoNextPowerOfTwo(t *testing.T) {
	assert.True(t, UBigFromWord(1).IsPowerOfTwo())
	assert.True(t, UBigFromWord(1024).IsPowerOfTwo())
	assert.False(t, UBigFromWord(1023).IsPowerOfTwo())
	assert.False(t, Zero.IsPowerOfTwo())

	assert.Equal(t, "1", Zero.NextPowerOfTwo().String())
	assert.Equal(t, "1024", UBigFromWord(1024).NextPowerOfTwo().String())
	assert.Equal(t, "1024", UBigFromWord(1000).NextPowerOfTwo().String())
}

func TestUBigBitLenAndBit(t *testing.T) {
	u := UBigFromWord(0b1010)
	assert.Equal(t, 4, u.BitLen())
	assert.False(t, u.Bit(0))
	assert.True(t, u.Bit(1))
	assert.False(t, u.Bit(2))
	assert.True(t, u.Bit(3))
}
