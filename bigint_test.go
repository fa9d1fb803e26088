// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/big"
	"math/rand"
)

// Shared test helpers: a package-level math/rand source for reproducible
// random operands, and conversions through *big.Int so the stdlib can
// serve as an independent oracle for arithmetic results.

var rnd = rand.New(rand.NewSource(1))

// randWords returns n random Words, the high one guaranteed nonzero when
// n > 0 so callers get a normalized buffer back from norm().
func randWords(n int) Buffer {
	b := make(Buffer, n)
	for i := range b {
		b[i] = Word(rnd.Uint64())
	}
	if n > 0 {
		for b[n-1] == 0 {
			b[n-1] = Word(rnd.Uint64())
		}
	}
	return b.norm()
}

// randUBig returns a random UBig with up to maxWords limbs.
func randUBig(maxWords int) UBig {
	n := rnd.Intn(maxWords + 1)
	return fromBuffer(randWords(n))
}

// randIBig returns a random IBig with up to maxWords limbs in its magnitude.
func randIBig(maxWords int) IBig {
	m := randUBig(maxWords)
	return ibigNormal(rnd.Intn(2) == 0, m)
}

// toBigInt converts a UBig to the stdlib math/big representation, used as
// an independent oracle to cross-check arithmetic results.
func toBigInt(u UBig) *big.Int {
	return new(big.Int).SetBytes(u.ToBEBytes())
}

func toBigIntSigned(x IBig) *big.Int {
	v := toBigInt(x.mag)
	if x.neg {
		v.Neg(v)
	}
	return v
}
