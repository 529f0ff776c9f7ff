// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"testing"

	"github.com/kberio/asn1"
)

func TestParse_AcceptsCanonicalInput(t *testing.T) {
	data := []byte{0x30, 0x0a, 0x02, 0x03, 0x01, 0x00, 0x01, 0x02, 0x03, 0x01, 0x00, 0x00}
	obj, rest, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %#x, want empty", rest)
	}
	if len(obj.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(obj.Children))
	}
}

func TestParse_RejectsIndefiniteLength(t *testing.T) {
	data := []byte{0x30, 0x80, 0x02, 0x01, 0x2a, 0x00, 0x00}
	_, _, err := Parse(data)
	if err == nil {
		t.Fatal("Parse() on indefinite length = nil error")
	}
	if kind, ok := asn1.Kind(err); !ok || kind != asn1.ErrDerConstraint {
		t.Errorf("kind = %v, want ErrDerConstraint", kind)
	}
}

func TestEncode_IsIdentityOverBer(t *testing.T) {
	data := []byte{0x02, 0x01, 0x05}
	obj, _, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := Encode(nil, obj)
	if !bytes.Equal(got, data) {
		t.Errorf("Encode(Parse(data)) = %#x, want %#x", got, data)
	}
}
