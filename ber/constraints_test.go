// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kberio/asn1"
)

func TestAs_FitsRequestedType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int32
	}{
		{"zero", []byte{0x02, 0x01, 0x00}, 0},
		{"positive", []byte{0x02, 0x02, 0x01, 0x00}, 256},
		{"negative", []byte{0x02, 0x01, 0xff}, -1},
		{"large positive", []byte{0x02, 0x02, 0x7f, 0xff}, 32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, rest, err := Parse(tt.data)
			require.NoError(t, err)
			require.Empty(t, rest)

			got, err := As[int32](&obj)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAs_OverflowsRequestedType(t *testing.T) {
	// INTEGER -32768 does not fit an int8 or a uint8.
	data := []byte{0x02, 0x02, 0x80, 0x00}
	obj, _, err := Parse(data)
	require.NoError(t, err)

	_, err = As[int8](&obj)
	require.Error(t, err)
	kind, ok := asn1.Kind(err)
	require.True(t, ok)
	assert.Equal(t, asn1.ErrIntegerTooLarge, kind)
}

func TestAs_UnsignedRejectsNegative(t *testing.T) {
	data := []byte{0x02, 0x01, 0xff} // INTEGER -1
	obj, _, err := Parse(data)
	require.NoError(t, err)

	_, err = As[uint8](&obj)
	require.Error(t, err)
}
