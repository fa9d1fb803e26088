// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "fmt"

// Error model: recoverable conditions are returned as values (ParseError
// and its Kind, OutOfBoundsError); conditions that indicate a broken
// program invariant are panic values (DivisionByZeroError,
// NumberTooLargeError, UndefinedError, DifferentRingsError). Each is a
// small named type implementing error, so recover() callers can still
// switch on the failure mode.

// DivisionByZeroError is the panic value of any operation asked to divide
// by an UBig/IBig value of zero.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string { return "bigint: division by zero" }

// NumberTooLargeError is the panic value raised when an operation would
// produce a Buffer longer than MaxCapacity.
type NumberTooLargeError struct {
	Len int
}

func (e NumberTooLargeError) Error() string {
	return fmt.Sprintf("bigint: number too large (%d words exceeds MaxCapacity)", e.Len)
}

// UndefinedError is the panic value for operations with no defined result,
// such as Gcd(0, 0).
type UndefinedError struct {
	Op string
}

func (e UndefinedError) Error() string { return "bigint: " + e.Op + " is undefined" }

// DifferentRingsError is the panic value raised when a Residue operation
// is given operands created by two distinct *Ring values (the rings differ
// by pointer identity, not just by equal moduli; see ring/ring.go).
type DifferentRingsError struct{}

func (DifferentRingsError) Error() string {
	return "bigint: residues belong to different rings"
}

// NotInvertibleError reports that a value has no multiplicative inverse in
// the ring or modulus it was asked to invert in (gcd(value, modulus) != 1).
type NotInvertibleError struct{}

func (NotInvertibleError) Error() string { return "bigint: value is not invertible" }

// OutOfBoundsError is returned by fixed-width conversions (Int64, Uint32,
// ...) when the value does not fit in the destination type, and by
// UBigFromInt64 when the source value is negative.
type OutOfBoundsError struct {
	Type string
}

func (e OutOfBoundsError) Error() string {
	return "bigint: value out of bounds for " + e.Type
}

// NotFiniteError is returned by the FromFloat32/FromFloat64 constructors
// when given a NaN or infinite input, which has no integer representation.
type NotFiniteError struct {
	Value string
}

func (e NotFiniteError) Error() string {
	return "bigint: " + e.Value + " has no integer representation"
}

// ParseErrorKind classifies why Parse/SetString failed.
type ParseErrorKind int

const (
	// NoDigits means the input (after an optional sign and base prefix)
	// contained no digits at all.
	NoDigits ParseErrorKind = iota
	// InvalidDigit means a byte was found that is not a valid digit in the
	// requested radix.
	InvalidDigit
	// UnsupportedRadix means the requested radix is outside [2, 36].
	UnsupportedRadix
)

func (k ParseErrorKind) String() string {
	switch k {
	case NoDigits:
		return "no digits"
	case InvalidDigit:
		return "invalid digit"
	case UnsupportedRadix:
		return "unsupported radix"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by Parse/ParseSigned, tagged with a Kind so
// callers can distinguish failure modes.
type ParseError struct {
	Kind  ParseErrorKind
	Radix int
	Pos   int
}

func (e ParseError) Error() string {
	switch e.Kind {
	case UnsupportedRadix:
		return fmt.Sprintf("bigint: unsupported radix %d", e.Radix)
	case NoDigits:
		return "bigint: no digits in input"
	default:
		return fmt.Sprintf("bigint: invalid digit at position %d", e.Pos)
	}
}
