// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Toom-Cook-3 multiplication: splits each operand into three parts,
// evaluates the resulting degree-2 polynomials at {0, 1, -1, 2, inf},
// multiplies the five evaluations pointwise (recursing back into the
// pipeline, as Karatsuba does for its sub-products), and interpolates
// the degree-4 product polynomial. Intermediate coefficients can go
// negative, so the combination runs on signedBuf (signed.go).

// mulToom3 sets z = x*y using Toom-Cook-3 and returns the normalized
// result.
func (z Buffer) mulToom3(x, y Buffer) Buffer {
	n := imax(len(x), len(y))
	n3 := (n + 2) / 3

	a0, a1, a2 := toom3Split(x, n3)
	b0, b1, b2 := toom3Split(y, n3)

	// The five pointwise products (v0, vinf, v1, vm1, v2) and the six
	// top-level sums that feed them are the buffers worth pooling; the
	// smaller intermediates nested inside each sum (a0+a1 before adding a2,
	// 2*a1 before adding it in, ...) are left as one-off allocations, since
	// giving every nested expression its own region would multiply the
	// bookkeeping here for buffers too short-lived to matter. A Layout
	// reserves the eleven pooled regions up front so that part of the
	// evaluation phase costs one pooled allocation instead of eleven.
	var lay Layout
	sumSz := n3 + 2
	prodSz := 2*n3 + 2
	rASum1, rBSum1 := lay.Reserve(sumSz), lay.Reserve(sumSz)
	rAEven, rBEven := lay.Reserve(sumSz), lay.Reserve(sumSz)
	rAAt2, rBAt2 := lay.Reserve(sumSz), lay.Reserve(sumSz)
	rV0, rVinf, rV1, rVm1, rV2 := lay.Reserve(prodSz), lay.Reserve(prodSz), lay.Reserve(prodSz), lay.Reserve(prodSz), lay.Reserve(prodSz)
	mem := lay.Allocate()
	defer mem.Release()

	// Evaluations at 0 and inf are plain non-negative products.
	v0 := mem.Buffer(rV0).mul(a0, b0)
	vinf := mem.Buffer(rVinf).mul(a2, b2)

	// Evaluation at 1: (a0+a1+a2)(b0+b1+b2), both factors non-negative.
	aSum1 := mem.Buffer(rASum1).add(Buffer(nil).add(a0, a1), a2)
	bSum1 := mem.Buffer(rBSum1).add(Buffer(nil).add(b0, b1), b2)
	v1 := mem.Buffer(rV1).mul(aSum1, bSum1)

	// Evaluation at -1: (a0-a1+a2)(b0-b1+b2); factors may be negative.
	aEven := sPos(mem.Buffer(rAEven).add(a0, a2))
	aM1 := sSub(aEven, sPos(a1))
	bEven := sPos(mem.Buffer(rBEven).add(b0, b2))
	bM1 := sSub(bEven, sPos(b1))
	vm1 := signedBuf{
		neg: aM1.neg != bM1.neg,
		mag: mem.Buffer(rVm1).mul(aM1.mag, bM1.mag),
	}.normalize()

	// Evaluation at 2: (a0+2a1+4a2)(b0+2b1+4b2), both non-negative.
	aAt2 := mem.Buffer(rAAt2).add(Buffer(nil).add(a0, Buffer(nil).shl(a1, 1)), Buffer(nil).shl(a2, 2))
	bAt2 := mem.Buffer(rBAt2).add(Buffer(nil).add(b0, Buffer(nil).shl(b1, 1)), Buffer(nil).shl(b2, 2))
	v2 := mem.Buffer(rV2).mul(aAt2, bAt2)

	// Interpolate the degree-4 product polynomial c0..c4.
	c0 := sPos(v0)
	c4 := sPos(vinf)

	sum1m1 := sAdd(sPos(v1), vm1)
	c2 := sSub(sSub(sum1m1.halve(), c0), c4)

	a := sSub(sPos(v1), vm1).halve()

	bq := sSub(sSub(sPos(v2), c0), sShl(c4, 4)).halve()
	bq = sSub(bq, sShl(c2, 1))

	c3 := sDivSmallExact(sSub(bq, a), 3)
	c1 := sSub(a, c3)

	var acc signedBuf
	addAtSigned(&acc, c0, 0)
	addAtSigned(&acc, c1, n3)
	addAtSigned(&acc, c2, 2*n3)
	addAtSigned(&acc, c3, 3*n3)
	addAtSigned(&acc, c4, 4*n3)

	if acc.neg && len(acc.mag) != 0 {
		panic("bigint: toom-3 interpolation produced a negative product")
	}

	z = z.make(len(acc.mag))
	copy(z, acc.mag)
	return z.norm()
}

// halve divides a signed value by 2, which must be exact for every call
// site in mulToom3's interpolation.
func (a signedBuf) halve() signedBuf {
	return signedBuf{neg: a.neg, mag: Buffer(nil).shr(a.mag, 1)}.normalize()
}

func toom3Split(x Buffer, n3 int) (a0, a1, a2 Buffer) {
	a0 = sliceOrEmpty(x, 0, n3).norm()
	a1 = sliceOrEmpty(x, n3, 2*n3).norm()
	a2 = sliceOrEmpty(x, 2*n3, len(x)).norm()
	return
}

func sliceOrEmpty(x Buffer, lo, hi int) Buffer {
	if lo >= len(x) {
		return nil
	}
	if hi > len(x) {
		hi = len(x)
	}
	return x[lo:hi]
}
