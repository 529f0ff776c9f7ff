// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math/bits"

	"github.com/kberio/asn1"
)

// Boolean decodes o's content as a BOOLEAN value. Per DER (Rec. ITU-T X.690,
// Section 11.1), true must be encoded as 0xff; this decoder accepts any
// non-zero octet as true in BER mode, matching common real-world encoders.
func (o *Object) Boolean() (bool, error) {
	if len(o.content) != 1 {
		return false, derr(asn1.ErrInvalidValue, o, "BOOLEAN content must be exactly one octet")
	}
	return o.content[0] != 0, nil
}

// Integer returns the content octets of an INTEGER element, interpreted as a
// two's-complement big-endian integer, without any size conversion. Use
// [Object.Int64], [Object.Uint64], or the bigint build's [Object.BigInt] to
// decode into a concrete Go integer type.
func (o *Object) Integer() ([]byte, error) {
	if len(o.content) == 0 {
		return nil, derr(asn1.ErrObjectTooShort, o, "INTEGER content must not be empty")
	}
	return o.content, nil
}

// Int64 decodes o's content as a two's-complement INTEGER and returns it as
// an int64, failing with [asn1.ErrIntegerTooLarge] if the value does not fit.
func (o *Object) Int64() (int64, error) {
	b, err := o.Integer()
	if err != nil {
		return 0, err
	}
	if len(b) > 8 {
		return 0, derr(asn1.ErrIntegerTooLarge, o, "INTEGER does not fit in int64")
	}
	var v int64
	if b[0]&0x80 != 0 {
		v = -1
	}
	for _, c := range b {
		v = v<<8 | int64(c)
	}
	return v, nil
}

// Uint64 decodes o's content as a non-negative INTEGER and returns it as a
// uint64, failing if the value is negative or does not fit.
func (o *Object) Uint64() (uint64, error) {
	b, err := o.Integer()
	if err != nil {
		return 0, err
	}
	if b[0]&0x80 != 0 {
		return 0, derr(asn1.ErrInvalidValue, o, "INTEGER is negative")
	}
	trimmed := b
	for len(trimmed) > 1 && trimmed[0] == 0x00 {
		trimmed = trimmed[1:]
	}
	if len(trimmed) > 8 {
		return 0, derr(asn1.ErrIntegerTooLarge, o, "INTEGER does not fit in uint64")
	}
	var v uint64
	for _, c := range trimmed {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// Uint32 decodes o's content like [Object.Uint64], narrowed to uint32.
func (o *Object) Uint32() (uint32, error) {
	v, err := o.Uint64()
	if err != nil {
		return 0, err
	}
	if v > 0xffffffff {
		return 0, derr(asn1.ErrIntegerTooLarge, o, "INTEGER does not fit in uint32")
	}
	return uint32(v), nil
}

// BitString decodes o's content as a BIT STRING. It returns the full octets
// and the count of unused trailing bits in the final octet (0-7), per Rec.
// ITU-T X.690, Section 8.6.
func (o *Object) BitString() (data []byte, unused int, err error) {
	if len(o.content) == 0 {
		return nil, 0, derr(asn1.ErrObjectTooShort, o, "BIT STRING content must not be empty")
	}
	unused = int(o.content[0])
	if unused > 7 {
		return nil, 0, derr(asn1.ErrInvalidValue, o, "BIT STRING unused-bit count out of range")
	}
	if unused > 0 && len(o.content) == 1 {
		return nil, 0, derr(asn1.ErrInvalidValue, o, "BIT STRING has unused bits but no data octets")
	}
	return o.content[1:], unused, nil
}

// BitAt reports whether the bit numbered n (0-indexed from the most
// significant bit of the first octet) is set in a decoded BIT STRING.
func BitAt(data []byte, unused int, n int) bool {
	byteIdx := n / 8
	if byteIdx >= len(data) {
		return false
	}
	bitIdx := 7 - n%8
	if byteIdx == len(data)-1 && bitIdx < unused {
		return false
	}
	return data[byteIdx]&(1<<bitIdx) != 0
}

// OctetString decodes o's content as an OCTET STRING: the raw content octets.
func (o *Object) OctetString() ([]byte, error) {
	return o.content, nil
}

// Null validates that o is a well-formed NULL value (empty content).
func (o *Object) Null() error {
	if len(o.content) != 0 {
		return derr(asn1.ErrInvalidValue, o, "NULL content must be empty")
	}
	return nil
}

// OID decodes o's content as an OBJECT IDENTIFIER.
func (o *Object) OID() (asn1.ObjectIdentifier, error) {
	if len(o.content) == 0 {
		return asn1.ObjectIdentifier{}, derr(asn1.ErrObjectTooShort, o, "OBJECT IDENTIFIER content must not be empty")
	}
	return asn1.OID(o.content), nil
}

// Enumerated decodes o's content as an ENUMERATED value, using the same rules
// as [Object.Int64].
func (o *Object) Enumerated() (int64, error) {
	return o.Int64()
}

// bitLen returns the number of bits required to represent n.
func bitLen(n uint64) int { return bits.Len64(n) }

func derr(kind asn1.ErrorKind, o *Object, msg string) error {
	e := asn1.NewError(kind, 0)
	if o != nil {
		e = e.WithTag(o.Header.Tag)
	}
	return e.WithErr(errString(msg))
}

type errString string

func (e errString) Error() string { return string(e) }
