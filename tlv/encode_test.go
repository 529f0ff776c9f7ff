// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import (
	"bytes"
	"testing"

	"github.com/kberio/asn1"
)

func TestAppendHeader(t *testing.T) {
	tests := []struct {
		name        string
		tag         asn1.Tag
		constructed bool
		length      int
		want        []byte
	}{
		{"integerShort", asn1.TagInteger, false, 3, []byte{0x02, 0x03}},
		{"sequence", asn1.TagSequence, true, 10, []byte{0x30, 0x0a}},
		{"longFormLength", asn1.TagOctetString, false, 128, []byte{0x04, 0x81, 0x80}},
		{"highTagNumber", asn1.Tag{Class: asn1.ClassContextSpecific, Number: 31}, true, 0, []byte{0xbf, 0x1f, 0x00}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AppendHeader(nil, tc.tag, tc.constructed, tc.length)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("AppendHeader(%v, %v, %d) = %#x, want %#x", tc.tag, tc.constructed, tc.length, got, tc.want)
			}
			if n := HeaderLen(tc.tag, tc.constructed, tc.length); n != len(tc.want) {
				t.Errorf("HeaderLen(...) = %d, want %d", n, len(tc.want))
			}
		})
	}
}

func TestAppendHeader_RoundTripsThroughDecode(t *testing.T) {
	buf := AppendHeader(nil, asn1.TagSequence, true, 200)
	buf = append(buf, make([]byte, 200)...)
	hdr, content, rest, err := ReadElement(buf)
	if err != nil {
		t.Fatalf("ReadElement() error = %v", err)
	}
	if hdr.Tag != asn1.TagSequence || !hdr.Constructed || hdr.Length != 200 {
		t.Errorf("hdr = %+v", hdr)
	}
	if len(content) != 200 || len(rest) != 0 {
		t.Errorf("content len = %d, rest len = %d", len(content), len(rest))
	}
}
