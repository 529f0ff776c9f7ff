// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"sort"

	"github.com/kberio/asn1"
	"github.com/kberio/asn1/tlv"
)

// Encode appends the DER-canonical encoding of obj to dst and returns the
// extended slice. Encode always produces definite-length, minimal-form
// output regardless of how obj was parsed: BER's permissive alternatives
// (indefinite length, non-minimal length/tag forms) exist only on the
// decoding side.
//
// If obj is constructed with a tag of [asn1.ClassUniversal] and number
// [asn1.TagSet].Number, its children are reordered by their encoded bytes
// (Rec. ITU-T X.690, Section 11.6) before being written; all other
// constructed elements preserve child order.
func Encode(dst []byte, obj Object) []byte {
	if !obj.Header.Constructed {
		dst = tlv.AppendHeader(dst, obj.Header.Tag, false, len(obj.content))
		return append(dst, obj.content...)
	}

	children := make([][]byte, len(obj.Children))
	for i, c := range obj.Children {
		children[i] = Encode(nil, c)
	}
	if obj.Header.Tag == asn1.TagSet {
		sort.Slice(children, func(i, j int) bool {
			return bytes.Compare(children[i], children[j]) < 0
		})
	}
	contentLen := 0
	for _, c := range children {
		contentLen += len(c)
	}
	dst = tlv.AppendHeader(dst, obj.Header.Tag, true, contentLen)
	for _, c := range children {
		dst = append(dst, c...)
	}
	return dst
}

// New builds a leaf (primitive) Object with the given tag and content
// octets, suitable for passing to [Encode] or assembling into a [Sequence]
// or [Set].
func New(tag asn1.Tag, content []byte) Object {
	return Object{
		Header:  tlv.Header{Tag: tag, Constructed: false, Length: len(content)},
		content: content,
	}
}

// Sequence builds a constructed SEQUENCE Object from children, in order.
func Sequence(children ...Object) Object {
	return container(asn1.TagSequence, children)
}

// Set builds a constructed SET Object from children; [Encode] reorders them
// canonically.
func Set(children ...Object) Object {
	return container(asn1.TagSet, children)
}

// Container builds a constructed Object with an arbitrary tag (e.g. for an
// implicitly or explicitly tagged field) from children, in order.
func Container(tag asn1.Tag, children ...Object) Object {
	return container(tag, children)
}

func container(tag asn1.Tag, children []Object) Object {
	obj := Object{
		Header:   tlv.Header{Tag: tag, Constructed: true},
		Children: children,
	}
	return obj
}

// NewBoolean builds a BOOLEAN Object.
func NewBoolean(v bool) Object {
	b := byte(0x00)
	if v {
		b = 0xff
	}
	return New(asn1.TagBoolean, []byte{b})
}

// NewInteger builds an INTEGER Object from its minimal two's-complement
// big-endian representation. Callers encoding a native integer type should
// pre-compute the minimal form (see [ber.EncodeReal] for the analogous REAL
// helper); [EncodeInt64] and [EncodeUint64] do so for the built-in integer
// types.
func NewInteger(content []byte) Object {
	return New(asn1.TagInteger, content)
}

// EncodeInt64 returns the minimal two's-complement encoding of v.
func EncodeInt64(v int64) []byte {
	return minimalSignedBytes(v)
}

// EncodeUint64 returns the minimal two's-complement encoding of v, which is
// always non-negative and therefore has a leading 0x00 octet whenever its
// most significant bit would otherwise be set.
func EncodeUint64(v uint64) []byte {
	b := minimalUnsignedBytes(v)
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// NewNull builds a NULL Object.
func NewNull() Object {
	return New(asn1.TagNull, nil)
}

// NewOID builds an OBJECT IDENTIFIER Object.
func NewOID(oid asn1.ObjectIdentifier) Object {
	return New(asn1.TagOID, oid.Raw())
}

// NewOctetString builds an OCTET STRING Object.
func NewOctetString(b []byte) Object {
	return New(asn1.TagOctetString, b)
}

// NewBitString builds a BIT STRING Object from data and its count of unused
// trailing bits (0-7) in the final octet.
func NewBitString(data []byte, unused int) Object {
	content := make([]byte, 1+len(data))
	content[0] = byte(unused)
	copy(content[1:], data)
	return New(asn1.TagBitString, content)
}

// NewString builds a character-string Object of the given universal tag
// (e.g. [asn1.TagUTF8String], [asn1.TagPrintableString]) from s.
func NewString(tag asn1.Tag, s string) Object {
	return New(tag, []byte(s))
}
