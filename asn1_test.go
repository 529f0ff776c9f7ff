// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import "testing"

func TestTag_String(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{TagSequence, "[UNIVERSAL 16]"},
		{Tag{ClassApplication, 3}, "[APPLICATION 3]"},
		{Tag{ClassContextSpecific, 0}, "[0]"},
		{Tag{ClassPrivate, 7}, "[PRIVATE 7]"},
	}
	for _, tc := range tests {
		if got := tc.tag.String(); got != tc.want {
			t.Errorf("Tag{%+v}.String() = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestClass_String(t *testing.T) {
	tests := []struct {
		c    Class
		want string
	}{
		{ClassUniversal, "Universal"},
		{ClassApplication, "Application"},
		{ClassContextSpecific, "ContextSpecific"},
		{ClassPrivate, "Private"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("Class(%d).String() = %q, want %q", tc.c, got, tc.want)
		}
	}
}
