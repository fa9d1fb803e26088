// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// encoding.TextMarshaler/TextUnmarshaler support: render via the existing
// formatter, parse via the existing parser. There is no GobEncode/
// GobDecode pair — UBig/IBig carry no state beyond the value itself, so
// the text form is already complete.

// MarshalText implements encoding.TextMarshaler, rendering u in base 10.
func (u UBig) MarshalText() ([]byte, error) {
	return []byte(u.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing a base-10
// unsigned integer.
func (u *UBig) UnmarshalText(text []byte) error {
	v, err := Parse(string(text), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalText implements encoding.TextMarshaler, rendering x in base 10
// with a leading '-' if negative.
func (x IBig) MarshalText() ([]byte, error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing a base-10
// signed integer.
func (x *IBig) UnmarshalText(text []byte) error {
	v, err := ParseSigned(string(text), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
