// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "testing"

func FuzzParse(f *testing.F) {
	seeds := [][]byte{
		{},
		{0x02, 0x01, 0x2a},
		{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02},
		{0x30, 0x80, 0x02, 0x01, 0x2a, 0x00, 0x00},
		{0x31, 0x06, 0x02, 0x01, 0x02, 0x02, 0x01, 0x01},
		{0xff, 0xff, 0xff, 0xff},
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		// Parse must never panic, regardless of input, and must always
		// terminate: a malformed or truncated encoding returns an error
		// rather than hanging or crashing.
		_, _, _ = Parse(data)
		_, _, _ = ParseOptions(data, Options{Strict: true})
	})
}

func FuzzEncodeParseRoundTrip(f *testing.F) {
	f.Add([]byte{0x2a})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, content []byte) {
		obj := NewOctetString(content)
		encoded := Encode(nil, obj)
		decoded, rest, err := Parse(encoded)
		if err != nil {
			t.Fatalf("Parse(Encode(obj)) error = %v", err)
		}
		if len(rest) != 0 {
			t.Fatalf("Parse(Encode(obj)) left %d trailing bytes", len(rest))
		}
		got, err := decoded.OctetString()
		if err != nil {
			t.Fatalf("OctetString() error = %v", err)
		}
		if string(got) != string(content) {
			t.Fatalf("round trip = %q, want %q", got, content)
		}
	})
}
