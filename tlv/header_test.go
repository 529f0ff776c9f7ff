// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import (
	"testing"

	"github.com/kberio/asn1"
)

func TestDecodeTag(t *testing.T) {
	tests := []struct {
		name           string
		data           []byte
		strict         bool
		wantTag        asn1.Tag
		wantConstr     bool
		wantN          int
		wantErr        bool
		wantIncomplete bool
	}{
		{"bool", []byte{0x01}, false, asn1.TagBoolean, false, 1, false, false},
		{"sequence", []byte{0x30}, false, asn1.TagSequence, true, 1, false, false},
		{"contextSpecific0", []byte{0xa0}, false, asn1.Tag{Class: asn1.ClassContextSpecific, Number: 0}, true, 1, false, false},
		{"highTagNumber", []byte{0x1f, 0x81, 0x00}, false, asn1.Tag{Class: asn1.ClassUniversal, Number: 128}, false, 3, false, false},
		{"emptyInput", nil, false, asn1.Tag{}, false, 0, true, true},
		{"nonMinimalStrict", []byte{0x1f, 0x80, 0x01}, true, asn1.Tag{}, false, 0, true, false},
		{"nonMinimalLenient", []byte{0x1f, 0x80, 0x01}, false, asn1.Tag{Class: asn1.ClassUniversal, Number: 1}, false, 3, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag, constructed, n, err := decodeTag(tc.data, tc.strict)
			if (err != nil) != tc.wantErr {
				t.Fatalf("decodeTag(%#x, %v) error = %v, wantErr %v", tc.data, tc.strict, err, tc.wantErr)
			}
			if err != nil {
				if tc.wantIncomplete {
					if _, ok := asn1.IsIncomplete(err); !ok {
						t.Errorf("decodeTag(%#x) = %v, want ErrIncomplete", tc.data, err)
					}
				}
				return
			}
			if tag != tc.wantTag || constructed != tc.wantConstr || n != tc.wantN {
				t.Errorf("decodeTag(%#x) = (%v, %v, %d), want (%v, %v, %d)",
					tc.data, tag, constructed, n, tc.wantTag, tc.wantConstr, tc.wantN)
			}
		})
	}
}

func TestDecodeLength(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		strict  bool
		wantLen int
		wantN   int
		wantErr bool
	}{
		{"shortForm", []byte{0x05}, false, 5, 1, false},
		{"longForm", []byte{0x81, 0x80}, false, 128, 2, false},
		{"indefiniteBER", []byte{0x80}, false, LengthIndefinite, 1, false},
		{"indefiniteDER", []byte{0x80}, true, 0, 0, true},
		{"nonMinimalLongForm", []byte{0x81, 0x05}, false, 5, 2, false},
		{"nonMinimalLongFormStrict", []byte{0x81, 0x05}, true, 0, 0, true},
		{"reservedForm", []byte{0xff}, false, 0, 0, true},
		{"truncated", []byte{0x82, 0x01}, false, 0, 0, true},
		{"leadingZeroStrict", []byte{0x82, 0x00, 0x80}, true, 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			length, n, err := decodeLength(tc.data, tc.strict)
			if (err != nil) != tc.wantErr {
				t.Fatalf("decodeLength(%#x, %v) error = %v, wantErr %v", tc.data, tc.strict, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if length != tc.wantLen || n != tc.wantN {
				t.Errorf("decodeLength(%#x) = (%d, %d), want (%d, %d)", tc.data, length, n, tc.wantLen, tc.wantN)
			}
		})
	}
}
