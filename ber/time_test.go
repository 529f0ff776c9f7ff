// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"testing"

	"github.com/kberio/asn1"
)

func TestObject_UTCTime(t *testing.T) {
	tests := []struct {
		content  string
		wantYear int
	}{
		{"920521000000Z", 1992},
		{"490101000000Z", 2049},
		{"500101000000Z", 1950},
	}
	for _, tc := range tests {
		o := New(asn1.TagUTCTime, []byte(tc.content))
		tm, err := o.UTCTime()
		if err != nil {
			t.Fatalf("UTCTime(%q) error = %v", tc.content, err)
		}
		if tm.Year != tc.wantYear {
			t.Errorf("UTCTime(%q).Year = %d, want %d", tc.content, tm.Year, tc.wantYear)
		}
		if !tm.UTC {
			t.Errorf("UTCTime(%q).UTC = false, want true", tc.content)
		}
	}
}

func TestObject_GeneralizedTime(t *testing.T) {
	o := New(asn1.TagGeneralizedTime, []byte("20230615143012.5Z"))
	tm, err := o.GeneralizedTime()
	if err != nil {
		t.Fatalf("GeneralizedTime() error = %v", err)
	}
	if tm.Year != 2023 || tm.Month != 6 || tm.Day != 15 || tm.Hour != 14 || tm.Minute != 30 || tm.Second != 12 {
		t.Errorf("GeneralizedTime() = %+v", tm)
	}
	if tm.Fractional != "5" {
		t.Errorf("Fractional = %q, want 5", tm.Fractional)
	}
}

func TestIsCanonicalTime(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"20230615143012Z", true},
		{"20230615143012.5Z", true},
		{"20230615143012.50Z", false}, // trailing zero fractional digit
		{"20230615143012+0000", false},
		{"20230615143012", false},
	}
	for _, tc := range tests {
		if got := isCanonicalTime([]byte(tc.s)); got != tc.want {
			t.Errorf("isCanonicalTime(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}
