// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"testing"

	"github.com/kberio/asn1"
)

func TestEncode_RoundTripsParse(t *testing.T) {
	data := []byte{0x30, 0x0a, 0x02, 0x03, 0x01, 0x00, 0x01, 0x02, 0x03, 0x01, 0x00, 0x00}
	obj, rest, err := Parse(data)
	if err != nil || len(rest) != 0 {
		t.Fatalf("Parse() error = %v, rest = %#x", err, rest)
	}
	got := Encode(nil, obj)
	if !bytes.Equal(got, data) {
		t.Errorf("Encode(Parse(data)) = %#x, want %#x", got, data)
	}
}

func TestEncode_SetOfSortsChildren(t *testing.T) {
	s := Set(
		NewInteger(EncodeInt64(3)),
		NewInteger(EncodeInt64(1)),
		NewInteger(EncodeInt64(2)),
	)
	got := Encode(nil, s)

	sorted := Set(
		NewInteger(EncodeInt64(1)),
		NewInteger(EncodeInt64(2)),
		NewInteger(EncodeInt64(3)),
	)
	want := Encode(nil, sorted)
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(Set(3,1,2)) = %#x, want %#x (sorted)", got, want)
	}
}

func TestEncode_BuildersRoundTrip(t *testing.T) {
	obj := Sequence(
		NewBoolean(true),
		NewInteger(EncodeInt64(-129)),
		NewOctetString([]byte("hi")),
		NewNull(),
	)
	encoded := Encode(nil, obj)
	parsed, rest, err := Parse(encoded)
	if err != nil || len(rest) != 0 {
		t.Fatalf("Parse() error = %v, rest = %#x", err, rest)
	}
	if len(parsed.Children) != 4 {
		t.Fatalf("len(Children) = %d, want 4", len(parsed.Children))
	}
	b, err := parsed.Children[0].Boolean()
	if err != nil || !b {
		t.Errorf("Children[0].Boolean() = %v, %v", b, err)
	}
	i, err := parsed.Children[1].Int64()
	if err != nil || i != -129 {
		t.Errorf("Children[1].Int64() = %d, %v, want -129", i, err)
	}
}

func TestEncode_OIDRoundTrip(t *testing.T) {
	oid, err := asn1.ParseOID("1.2.840.113549")
	if err != nil {
		t.Fatalf("ParseOID() error = %v", err)
	}
	obj := NewOID(oid)
	encoded := Encode(nil, obj)
	want := []byte{0x06, 0x06, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d}
	if !bytes.Equal(encoded, want) {
		t.Errorf("Encode(NewOID(...)) = %#x, want %#x", encoded, want)
	}
}
