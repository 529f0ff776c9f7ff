// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import "testing"

func FuzzReadElement(f *testing.F) {
	seeds := [][]byte{
		{},
		{0x02, 0x01, 0x2a},
		{0x30, 0x80, 0x02, 0x01, 0x2a, 0x00, 0x00},
		{0x1f, 0x81, 0x00, 0x00},
		{0x80},
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _, _, _ = ReadElement(data)
		_, _, _, _ = ReadElementStrict(data)
	})
}
