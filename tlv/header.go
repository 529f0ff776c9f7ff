// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import (
	"io"
	"math"

	"github.com/kberio/asn1"
	"github.com/kberio/asn1/internal/bytesio"
	"github.com/kberio/asn1/internal/vlq"
)

// decodeTag reads the identifier octets from the start of data. It returns the
// decoded tag, whether the constructed bit was set, the number of octets
// consumed, and an error. strict rejects a non-minimal multi-byte tag number
// (a leading continuation octet of 0x80), as required for DER.
func decodeTag(data []byte, strict bool) (tag asn1.Tag, constructed bool, n int, err error) {
	if len(data) == 0 {
		return asn1.Tag{}, false, 0, asn1.Incomplete(0, 1)
	}
	b := data[0]
	class := asn1.Class(b >> 6)
	constructed = b&0x20 != 0
	if b&0x1f != 0x1f {
		return asn1.Tag{class, uint64(b & 0x1f)}, constructed, 1, nil
	}
	r := bytesio.NewReader(data[1:])
	if strict && len(data) > 1 && data[1] == 0x80 {
		return asn1.Tag{}, false, 0, asn1.NewError(asn1.ErrInvalidTag, 0).
			WithSub(asn1.DerTagNotMinimal).
			WithErr(errNonMinimalTag)
	}
	num, rerr := vlq.Read[uint64](r)
	if rerr != nil {
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			return asn1.Tag{}, false, 0, asn1.Incomplete(0, 1)
		}
		return asn1.Tag{}, false, 0, asn1.NewError(asn1.ErrInvalidTag, 0).WithErr(rerr)
	}
	return asn1.Tag{class, num}, constructed, 1 + r.Pos, nil
}

var errNonMinimalTag = errString("tag number is not minimally encoded")

type errString string

func (e errString) Error() string { return string(e) }

// decodeLength reads the length octets following a tag. It returns the
// decoded length (or LengthIndefinite), the number of octets consumed, and an
// error. strict enforces DER: no indefinite length, no non-minimal multi-byte
// form.
func decodeLength(data []byte, strict bool) (length, n int, err error) {
	if len(data) == 0 {
		return 0, 0, asn1.Incomplete(0, 1)
	}
	b := data[0]
	if b&0x80 == 0 {
		return int(b & 0x7f), 1, nil
	}
	if b == 0x80 {
		if strict {
			return 0, 0, asn1.NewError(asn1.ErrDerConstraint, 0).WithSub(asn1.DerIndefiniteLength)
		}
		return LengthIndefinite, 1, nil
	}
	numBytes := int(b & 0x7f)
	if numBytes == 0x7f {
		return 0, 0, asn1.NewError(asn1.ErrInvalidLength, 0).WithErr(errString("reserved length form (0xff)"))
	}
	if len(data) < 1+numBytes {
		return 0, 0, asn1.Incomplete(0, 1+numBytes-len(data))
	}
	if strict && data[1] == 0x00 {
		return 0, 0, asn1.NewError(asn1.ErrDerConstraint, 0).WithSub(asn1.DerLengthNotMinimal)
	}
	length = 0
	for i := 0; i < numBytes; i++ {
		if length > (math.MaxInt-int(data[1+i]))>>8 {
			return 0, 0, asn1.NewError(asn1.ErrInvalidLength, 0).WithErr(errString("length overflows int"))
		}
		length = length<<8 | int(data[1+i])
	}
	if strict && length < 128 {
		return 0, 0, asn1.NewError(asn1.ErrDerConstraint, 0).WithSub(asn1.DerLengthNotMinimal)
	}
	if numBytes > 1 && length>>(8*(numBytes-1)) == 0 && strict {
		return 0, 0, asn1.NewError(asn1.ErrDerConstraint, 0).WithSub(asn1.DerLengthNotMinimal)
	}
	return length, 1 + numBytes, nil
}
