// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "fmt"

// fmt.Formatter support for the integer verbs 'd' (base 10), 'b' (base
// 2), 'o' (base 8), 'x'/'X' (base 16, with '#' prefixing), and 'v'
// (treated like 'd').

// Format implements fmt.Formatter for UBig. It supports 'd', 'b', 'o', 'x',
// 'X' and 'v', the '#' flag (prefixes 0b/0o/0x for the matching verb), the
// '+' and ' ' flags for sign control on an otherwise-unsigned value, '0' for
// zero-padding and '-' for left justification, and a minimum field width.
func (u UBig) Format(s fmt.State, verb rune) {
	formatMagnitude(s, verb, false, u)
}

// Format implements fmt.Formatter for IBig, with the same verb/flag support
// as UBig.Format plus an actual sign for negative values.
func (x IBig) Format(s fmt.State, verb rune) {
	formatMagnitude(s, verb, x.neg, x.mag)
}

func formatMagnitude(s fmt.State, verb rune, neg bool, mag UBig) {
	radix, prefix := 10, ""
	switch verb {
	case 'd', 'v':
		radix = 10
	case 'b':
		radix = 2
		prefix = "0b"
	case 'o':
		radix = 8
		prefix = "0o"
	case 'x':
		radix = 16
		prefix = "0x"
	case 'X':
		radix = 16
		prefix = "0x"
	default:
		fmt.Fprintf(s, "%%!%c(bigint=%s)", verb, mag.Text(10))
		return
	}

	digits := mag.Text(radix)
	if verb == 'X' {
		digits = toUpperHex(digits)
	}
	if !s.Flag('#') {
		prefix = ""
	}

	var sign string
	switch {
	case neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	body := prefix + digits
	padding := 0
	if width, ok := s.Width(); ok && width > len(sign)+len(body) {
		padding = width - len(sign) - len(body)
	}

	switch {
	case s.Flag('0'):
		writeString(s, sign)
		writeString(s, prefix)
		writeRepeated(s, '0', padding)
		writeString(s, digits)
	case s.Flag('-'):
		writeString(s, sign)
		writeString(s, body)
		writeRepeated(s, ' ', padding)
	default:
		writeRepeated(s, ' ', padding)
		writeString(s, sign)
		writeString(s, body)
	}
}

func toUpperHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func writeString(s fmt.State, str string) {
	if str == "" {
		return
	}
	s.Write([]byte(str))
}

func writeRepeated(s fmt.State, c byte, n int) {
	if n <= 0 {
		return
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c
	}
	s.Write(buf)
}
