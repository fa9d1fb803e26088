// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/bits"
	"testing"
)

func TestBitLen(t *testing.T) {
	tests := []struct {
		x Word
		n int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{^Word(0), _W},
	}
	for _, tt := range tests {
		if got := bitLen(tt.x); got != tt.n {
			t.Errorf("bitLen(%d) = %d, want %d", tt.x, got, tt.n)
		}
	}
}

func TestLeadingTrailingZeros(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := Word(rnd.Uint64())
		if got, want := leadingZeros(x), uint(bits.LeadingZeros(uint(x))); got != want {
			t.Fatalf("leadingZeros(%d) = %d, want %d", x, got, want)
		}
		if got, want := trailingZeros(x), uint(bits.TrailingZeros(uint(x))); got != want {
			t.Fatalf("trailingZeros(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestFastDivideSmall(t *testing.T) {
	for i := 0; i < 10000; i++ {
		d := Word(rnd.Uint64())
		if d < 2 {
			d = 2
		}
		f := NewFastDivideSmall(d)
		a := Word(rnd.Uint64())
		q, r := f.DivRem(a)
		wantQ, wantR := a/d, a%d
		if q != wantQ || r != wantR {
			t.Fatalf("FastDivideSmall(%d).DivRem(%d) = (%d,%d), want (%d,%d)", d, a, q, r, wantQ, wantR)
		}
	}
}

func TestFastDivideSmallPanicsBelowTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewFastDivideSmall(1) did not panic")
		}
	}()
	NewFastDivideSmall(1)
}

func TestFastDivideNormalized(t *testing.T) {
	for i := 0; i < 10000; i++ {
		d := Word(rnd.Uint64()) | (Word(1) << (_W - 1)) // force top bit set
		f := NewFastDivideNormalized(d)
		hi := Word(rnd.Uint64()) % d // hi < divisor precondition
		lo := Word(rnd.Uint64())
		q, r := f.DivRem(hi, lo)
		wantQ, wantR := bits.Div(uint(hi), uint(lo), uint(d))
		if q != Word(wantQ) || r != Word(wantR) {
			t.Fatalf("FastDivideNormalized(%d).DivRem(%d,%d) = (%d,%d), want (%d,%d)", d, hi, lo, q, r, wantQ, wantR)
		}
	}
}

func TestFastDivideNormalizedPanicsUnnormalized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewFastDivideNormalized(1) did not panic")
		}
	}()
	NewFastDivideNormalized(1)
}

func TestMulWWAddWWC(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x, y := Word(rnd.Uint64()), Word(rnd.Uint64())
		hi, lo := mulWW(x, y)
		wantHi, wantLo := bits.Mul(uint(x), uint(y))
		if hi != Word(wantHi) || lo != Word(wantLo) {
			t.Fatalf("mulWW(%d,%d) = (%d,%d), want (%d,%d)", x, y, hi, lo, wantHi, wantLo)
		}

		c := Word(rnd.Intn(2))
		s, cOut := addWWC(x, y, c)
		wantS, wantC := bits.Add(uint(x), uint(y), uint(c))
		if s != Word(wantS) || cOut != Word(wantC) {
			t.Fatalf("addWWC(%d,%d,%d) = (%d,%d), want (%d,%d)", x, y, c, s, cOut, wantS, wantC)
		}
	}
}
