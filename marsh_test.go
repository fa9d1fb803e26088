// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"encoding/json"
	"testing"
)

func TestUBigTextMarshalRoundTrip(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		u := randUBig(10)
		text, err := u.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error: %v", err)
		}
		var got UBig
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if !got.Equal(u) {
			t.Fatalf("round trip: got %s, want %s", got, u)
		}
	}
}

func TestIBigTextMarshalRoundTrip(t *testing.T) {
	for trial := 0; trial < 50; trial++ {
		x := randIBig(10)
		text, err := x.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error: %v", err)
		}
		var got IBig
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if !got.Equal(x) {
			t.Fatalf("round trip: got %s, want %s", got, x)
		}
	}
}

func TestUBigJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		V UBig `json:"v"`
	}
	w := wrapper{V: UBigFromWord(123456789)}
	b, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	var got wrapper
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if !got.V.Equal(w.V) {
		t.Fatalf("json round trip: got %s, want %s", got.V, w.V)
	}
}

func TestUBigUnmarshalTextInvalid(t *testing.T) {
	var u UBig
	if err := u.UnmarshalText([]byte("not-a-number")); err == nil {
		t.Fatal("UnmarshalText(garbage) did not error")
	}
}
