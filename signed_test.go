// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestSignedBufAddSub(t *testing.T) {
	tests := []struct {
		a, b     signedBuf
		wantNeg  bool
		wantWord Word
	}{
		{sPos(Buffer{5}), sPos(Buffer{3}), false, 8},
		{sPos(Buffer{3}), sPos(Buffer{5}), false, 8},
		{signedBuf{neg: true, mag: Buffer{5}}, sPos(Buffer{3}), true, 2},
		{sPos(Buffer{3}), signedBuf{neg: true, mag: Buffer{5}}, true, 2},
	}
	for _, tt := range tests {
		got := sAdd(tt.a, tt.b)
		if got.neg != tt.wantNeg || got.mag.cmp(Buffer{tt.wantWord}) != 0 {
			t.Errorf("sAdd(%+v,%+v) = %+v, want neg=%v mag=%d", tt.a, tt.b, got, tt.wantNeg, tt.wantWord)
		}
	}
}

func TestSignedBufSubIsAddNeg(t *testing.T) {
	a := sPos(Buffer{10})
	b := sPos(Buffer{7})
	got := sSub(a, b)
	if got.neg || got.mag.cmp(Buffer{3}) != 0 {
		t.Fatalf("sSub(10,7) = %+v, want 3", got)
	}
	got2 := sSub(b, a)
	if !got2.neg || got2.mag.cmp(Buffer{3}) != 0 {
		t.Fatalf("sSub(7,10) = %+v, want -3", got2)
	}
}

func TestSignedBufNormalizeZeroIsPositive(t *testing.T) {
	z := signedBuf{neg: true, mag: Buffer{}}.normalize()
	if z.neg {
		t.Fatal("normalize() left neg=true on a zero magnitude")
	}
}

func TestBufferAddSub(t *testing.T) {
	for trial := 0; trial < 500; trial++ {
		x := randWords(rnd.Intn(5) + 1)
		y := randWords(rnd.Intn(5) + 1)

		sum := Buffer(nil).add(x, y)
		wantSum := toBigInt(fromBuffer(x))
		wantSum.Add(wantSum, toBigInt(fromBuffer(y)))
		if toBigInt(fromBuffer(sum)).Cmp(wantSum) != 0 {
			t.Fatalf("add(%v,%v) = %v, want %v", []Word(x), []Word(y), toBigInt(fromBuffer(sum)), wantSum)
		}

		if x.cmp(y) >= 0 {
			diff := Buffer(nil).sub(x, y)
			wantDiff := toBigInt(fromBuffer(x))
			wantDiff.Sub(wantDiff, toBigInt(fromBuffer(y)))
			if toBigInt(fromBuffer(diff)).Cmp(wantDiff) != 0 {
				t.Fatalf("sub(%v,%v) = %v, want %v", []Word(x), []Word(y), toBigInt(fromBuffer(diff)), wantDiff)
			}
		}
	}
}

func TestBufferSubPanicsOnUnderflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("sub(1,2) did not panic")
		}
	}()
	Buffer(nil).sub(Buffer{1}, Buffer{2})
}

func TestAddAtSigned(t *testing.T) {
	var acc signedBuf
	addAtSigned(&acc, sPos(Buffer{1}), 0)
	addAtSigned(&acc, sPos(Buffer{1}), 1)
	want := Buffer(nil).add(Buffer{1}, Buffer{0, 1})
	if acc.mag.cmp(want) != 0 || acc.neg {
		t.Fatalf("addAtSigned accumulated %+v, want %v", acc, []Word(want))
	}
}
