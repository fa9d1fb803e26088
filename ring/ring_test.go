// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"math/big"
	"testing"

	"github.com/dbdeville/bigint"
)

func u(v uint64) bigint.UBig { return bigint.UBigFromUint64(v) }

func TestRingFromReducesModulo(t *testing.T) {
	r := New(u(13))
	res := r.From(u(100))
	if got, _ := res.Value().Uint64(); got != 100%13 {
		t.Fatalf("From(100) mod 13 = %d, want %d", got, 100%13)
	}
}

func TestNewPanicsOnZeroModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0) did not panic")
		}
	}()
	New(bigint.Zero)
}

func TestResidueAddSubMulAgainstBigInt(t *testing.T) {
	m := uint64(97)
	r := New(u(m))
	mBI := new(big.Int).SetUint64(m)

	for a := uint64(0); a < m; a += 11 {
		for b := uint64(0); b < m; b += 13 {
			ra, rb := r.From(u(a)), r.From(u(b))

			sum := ra.Add(rb)
			wantSum := new(big.Int).Mod(new(big.Int).Add(bigFromU64(a), bigFromU64(b)), mBI)
			if got, _ := sum.Value().Uint64(); got != wantSum.Uint64() {
				t.Fatalf("Add(%d,%d) mod %d = %d, want %d", a, b, m, got, wantSum)
			}

			prod := ra.Mul(rb)
			wantProd := new(big.Int).Mod(new(big.Int).Mul(bigFromU64(a), bigFromU64(b)), mBI)
			if got, _ := prod.Value().Uint64(); got != wantProd.Uint64() {
				t.Fatalf("Mul(%d,%d) mod %d = %d, want %d", a, b, m, got, wantProd)
			}

			diff := ra.Sub(rb)
			wantDiff := new(big.Int).Mod(new(big.Int).Sub(bigFromU64(a), bigFromU64(b)), mBI)
			if got, _ := diff.Value().Uint64(); got != wantDiff.Uint64() {
				t.Fatalf("Sub(%d,%d) mod %d = %d, want %d", a, b, m, got, wantDiff)
			}
		}
	}
}

func bigFromU64(v uint64) *big.Int { return new(big.Int).SetUint64(v) }

func TestResidueDifferentRingsPanics(t *testing.T) {
	r1 := New(u(7))
	r2 := New(u(7)) // same modulus, different Ring identity
	a := r1.From(u(3))
	b := r2.From(u(4))

	defer func() {
		if recover() == nil {
			t.Fatal("Add across different Rings did not panic")
		}
	}()
	a.Add(b)
}

func TestResiduePowMatchesRepeatedMul(t *testing.T) {
	r := New(u(1000000007))
	x := r.From(u(12345))

	got := x.Pow(u(17))

	want := r.From(bigint.One)
	for i := 0; i < 17; i++ {
		want = want.Mul(x)
	}
	if !got.Value().Equal(want.Value()) {
		t.Fatalf("Pow(17) = %s, want %s", got.Value(), want.Value())
	}
}

func TestResiduePowWindowMatchesPow(t *testing.T) {
	r := New(u(1000000007))
	x := r.From(u(98765))

	for _, e := range []uint64{0, 1, 2, 17, 255, 65536} {
		exp := u(e)
		got := x.PowWindow(exp)
		want := x.Pow(exp)
		if !got.Value().Equal(want.Value()) {
			t.Fatalf("PowWindow(%d) = %s, want %s (from Pow)", e, got.Value(), want.Value())
		}
	}
}

func TestResidueInverse(t *testing.T) {
	r := New(u(1000000007)) // prime modulus: every nonzero residue is invertible
	x := r.From(u(42))

	inv, err := x.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error: %v", err)
	}
	one := x.Mul(inv)
	if got, _ := one.Value().Uint64(); got != 1 {
		t.Fatalf("x * inverse(x) = %d, want 1", got)
	}
}

func TestResidueInverseNotInvertible(t *testing.T) {
	r := New(u(12))
	x := r.From(u(4)) // gcd(4,12) = 4 != 1

	if _, err := x.Inverse(); err == nil {
		t.Fatal("Inverse() of a non-unit did not error")
	}
}

func TestResiduePowSignedNegativeExponent(t *testing.T) {
	r := New(u(1000000007))
	x := r.From(u(3))

	neg := bigint.IBigFromInt64(-5)
	got, err := x.PowSigned(neg)
	if err != nil {
		t.Fatalf("PowSigned(-5) error: %v", err)
	}

	inv, _ := x.Inverse()
	want := inv.Pow(u(5))
	if !got.Value().Equal(want.Value()) {
		t.Fatalf("PowSigned(-5) = %s, want %s", got.Value(), want.Value())
	}
}

func TestRingFromSignedNegativeValue(t *testing.T) {
	r := New(u(7))
	neg := bigint.IBigFromInt64(-3)
	res := r.FromSigned(neg)
	if got, _ := res.Value().Uint64(); got != 4 { // -3 mod 7 == 4
		t.Fatalf("FromSigned(-3) mod 7 = %d, want 4", got)
	}
}

func TestResiduePowAgainstBigIntAllWindowTiers(t *testing.T) {
	// Exponent bit lengths straddling both window-dispatch cutoffs:
	// square-and-multiply (<= 32 bits), width-4 (<= 512), width-5 above.
	m := u(1000000007)
	r := New(m)
	x := r.From(u(424242))

	mBI := big.NewInt(1000000007)
	xBI := big.NewInt(424242)

	for _, bits := range []uint{1, 20, 33, 100, 512, 513, 700} {
		exp := bigint.One.Lsh(bits).Sub(bigint.One) // 2^bits - 1: all bits set
		got := x.Pow(exp)

		expBI := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
		want := new(big.Int).Exp(xBI, expBI, mBI)
		if gotV, _ := got.Value().Uint64(); gotV != want.Uint64() {
			t.Fatalf("Pow(2^%d-1) = %d, want %d", bits, gotV, want.Uint64())
		}
	}
}

func TestResiduePowFermatMersenne607(t *testing.T) {
	// p = 2^607 - 1 is a Mersenne prime, so a^(p-1) = 1 mod p for any
	// a not divisible by p.
	p := bigint.One.Lsh(607).Sub(bigint.One)
	r := New(p)
	a := r.From(u(123))

	got := a.Pow(p.Sub(bigint.One))
	if !got.Value().Equal(bigint.One) {
		t.Fatalf("123^(p-1) mod p = %s, want 1", got.Value())
	}
}

func TestResidueInverseMod100(t *testing.T) {
	r := New(u(100))

	inv, err := r.From(u(9)).Inverse()
	if err != nil {
		t.Fatalf("inverse(9) mod 100 error: %v", err)
	}
	if got, _ := inv.Value().Uint64(); got != 89 {
		t.Fatalf("inverse(9) mod 100 = %d, want 89", got)
	}

	if _, err := r.From(u(10)).Inverse(); err == nil {
		t.Fatal("inverse(10) mod 100 did not error")
	}
}

func TestResidueDiv(t *testing.T) {
	r := New(u(97))
	x := r.From(u(42))
	y := r.From(u(5))

	q, err := x.Div(y)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if back := q.Mul(y); !back.Value().Equal(x.Value()) {
		t.Fatalf("(x/y)*y = %s, want %s", back.Value(), x.Value())
	}

	r100 := New(u(100))
	if _, err := r100.From(u(3)).Div(r100.From(u(10))); err == nil {
		t.Fatal("Div by a non-unit did not error")
	}
}
