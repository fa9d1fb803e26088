// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestMulToom3DirectAgainstBigInt(t *testing.T) {
	for _, n := range []int{10, 33, 100, 301} {
		for trial := 0; trial < 5; trial++ {
			x := randWords(n)
			y := randWords(n)

			got := Buffer(nil).mulToom3(x, y)

			want := toBigInt(fromBuffer(x))
			want.Mul(want, toBigInt(fromBuffer(y)))

			if toBigInt(fromBuffer(got)).Cmp(want) != 0 {
				t.Fatalf("mulToom3(n=%d) mismatch:\ngot =%v\nwant=%v", n, toBigInt(fromBuffer(got)), want)
			}
		}
	}
}

func TestMulDispatchesToToom3(t *testing.T) {
	n := toom3Threshold + 7
	x := randWords(n)
	y := randWords(n)

	got := Buffer(nil).mul(x, y)
	want := Buffer(nil).mulToom3(x, y)
	if got.cmp(want) != 0 {
		t.Fatalf("mul() and mulToom3() disagree for n=%d", n)
	}
}

func TestMulToom3UnbalancedLengths(t *testing.T) {
	x := randWords(150)
	y := randWords(40)

	got := Buffer(nil).mulToom3(x, y)
	want := toBigInt(fromBuffer(x))
	want.Mul(want, toBigInt(fromBuffer(y)))
	if toBigInt(fromBuffer(got)).Cmp(want) != 0 {
		t.Fatalf("mulToom3(unbalanced) mismatch:\ngot =%v\nwant=%v", toBigInt(fromBuffer(got)), want)
	}
}
