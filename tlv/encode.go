// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import (
	"bytes"

	"github.com/kberio/asn1"
	"github.com/kberio/asn1/internal/vlq"
)

// HeaderLen returns the number of bytes [AppendHeader] would append for a
// header with the given tag, constructed flag and (definite) content length.
func HeaderLen(tag asn1.Tag, constructed bool, length int) int {
	n := 1
	if tag.Number >= 31 {
		n += vlq.Size(tag.Number)
	}
	if length < 128 {
		n++
	} else {
		n++
		for l := length; l > 0; l >>= 8 {
			n++
		}
	}
	return n
}

// AppendHeader appends the minimal-form DER encoding of a header with the
// given tag, constructed flag, and definite content length to buf, returning
// the extended slice.
func AppendHeader(buf []byte, tag asn1.Tag, constructed bool, length int) []byte {
	b := byte(tag.Class) << 6
	if constructed {
		b |= 0x20
	}
	if tag.Number < 31 {
		buf = append(buf, b|byte(tag.Number))
	} else {
		buf = append(buf, b|0x1f)
		var tmp bytes.Buffer
		_, _ = vlq.Write(&tmp, tag.Number)
		buf = append(buf, tmp.Bytes()...)
	}
	return appendLength(buf, length)
}

func appendLength(buf []byte, length int) []byte {
	if length < 128 {
		return append(buf, byte(length))
	}
	var lb []byte
	for l := length; l > 0; l >>= 8 {
		lb = append([]byte{byte(l)}, lb...)
	}
	buf = append(buf, 0x80|byte(len(lb)))
	return append(buf, lb...)
}
