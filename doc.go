// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision integer arithmetic.

It provides two value types: UBig for unsigned integers and IBig for
signed integers. Both are arbitrarily large: internally, a value that
fits in one machine word is stored inline, and anything larger is stored
in a normalized little-endian slice of words, so small values never pay
for an allocation they don't need.

The zero value for a UBig or IBig is 0, so new values can be declared in
the usual way and used directly:

	var z UBig // z is 0

Values are otherwise constructed with one of the UBigFromXxx/IBigFromXxx
functions, or parsed from a string with Parse/ParseSigned.

Arithmetic is exposed as plain methods rather than operators (Go has
none to overload):

	z := x.Add(y)
	z := x.Mul(y)
	q, r := x.DivRem(y)

UBig and IBig are immutable value types: every operation returns a new
value rather than mutating the receiver, so they can be freely shared
and copied. They hold a slice internally, so they are not comparable
with == and cannot be used as map keys; compare values with Cmp.

Modular arithmetic over a fixed modulus is provided by the ring
subpackage, which wraps a UBig/IBig value as a Residue tied to a
particular Ring so that repeated operations modulo the same value don't
need to re-specify it each time.
*/
package bigint
