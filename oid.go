// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/kberio/asn1/internal/bytesio"
	"github.com/kberio/asn1/internal/vlq"
)

// ObjectIdentifier is an immutable ASN.1 OBJECT IDENTIFIER. It is stored as the
// packed BER content octets of its arcs (base-128 groups, continuation bit
// set on all but the last byte of each arc, with the first two arcs combined
// as 40*a+b per Rec. ITU-T X.690, Section 8.19). This mirrors how an OID is
// actually encoded on the wire, so a value parsed from a byte slice can borrow
// that slice's bytes directly (zero-copy) instead of allocating a new arc
// slice, and a value can be re-encoded by writing raw back out unchanged.
type ObjectIdentifier struct {
	raw []byte // packed content octets; never mutated after construction
}

// OID constructs an [ObjectIdentifier] from its packed BER content octets
// without validating them. Use [ParseOID] to build one from a dotted string,
// or decode one from BER/DER input via [github.com/kberio/asn1/ber.Object.OID].
func OID(raw []byte) ObjectIdentifier {
	return ObjectIdentifier{raw: raw}
}

// Raw returns the packed BER content octets of oid. The returned slice must
// not be modified; it may alias the buffer oid was parsed from.
func (oid ObjectIdentifier) Raw() []byte { return oid.raw }

// IsZero reports whether oid holds no arcs (the zero value).
func (oid ObjectIdentifier) IsZero() bool { return len(oid.raw) == 0 }

// Arcs decodes oid into its individual arc values. An error is returned if the
// packed octets are malformed (see [github.com/kberio/asn1/ber] OID decoding rules).
func (oid ObjectIdentifier) Arcs() ([]uint64, error) {
	if len(oid.raw) == 0 {
		return nil, NewError(ErrObjectTooShort, -1).WithTag(TagOID)
	}
	if oid.raw[len(oid.raw)-1]&0x80 != 0 {
		return nil, NewError(ErrInvalidValue, -1).WithTag(TagOID).WithErr(errOIDTruncated)
	}
	r := bytesio.NewReader(oid.raw)
	first, err := vlq.Read[uint64](r)
	if err != nil {
		return nil, NewError(ErrInvalidValue, -1).WithTag(TagOID).WithErr(err)
	}
	var a, b uint64
	if first >= 80 {
		a, b = 2, first-80
	} else {
		a, b = first/40, first%40
	}
	arcs := []uint64{a, b}
	for r.Len() > 0 {
		v, err := vlq.Read[uint64](r)
		if err != nil {
			return nil, NewError(ErrInvalidValue, -1).WithTag(TagOID).WithErr(err)
		}
		arcs = append(arcs, v)
	}
	return arcs, nil
}

var errOIDTruncated = errString("object identifier content truncated mid-arc")

type errString string

func (e errString) Error() string { return string(e) }

// ParseOID builds an [ObjectIdentifier] from a dotted-decimal string such as
// "1.2.840.113549.1.1". The first two arcs must satisfy the X.690 packing
// rule (first arc in {0,1,2}; if first arc is 0 or 1, second arc <= 39).
func ParseOID(s string) (ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return ObjectIdentifier{}, NewError(ErrInvalidValue, -1).WithErr(errString("object identifier needs at least two arcs"))
	}
	arcs := make([]uint64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return ObjectIdentifier{}, NewError(ErrInvalidValue, -1).WithErr(err)
		}
		arcs = append(arcs, n)
	}
	return EncodeOID(arcs)
}

// EncodeOID packs arcs into an [ObjectIdentifier]. The first two arcs are
// combined per X.690: first must be in {0,1,2}, and if it is 0 or 1, the
// second arc must be <= 39.
func EncodeOID(arcs []uint64) (ObjectIdentifier, error) {
	if len(arcs) < 2 {
		return ObjectIdentifier{}, NewError(ErrInvalidValue, -1).WithErr(errString("object identifier needs at least two arcs"))
	}
	if arcs[0] > 2 || ((arcs[0] == 0 || arcs[0] == 1) && arcs[1] > 39) {
		return ObjectIdentifier{}, NewError(ErrInvalidValue, -1).WithErr(errString("invalid first two arcs for object identifier"))
	}
	first := arcs[0]*40 + arcs[1]
	var buf bytes.Buffer
	if _, err := vlq.Write(&buf, first); err != nil {
		return ObjectIdentifier{}, err
	}
	for _, a := range arcs[2:] {
		if _, err := vlq.Write(&buf, a); err != nil {
			return ObjectIdentifier{}, err
		}
	}
	return ObjectIdentifier{raw: buf.Bytes()}, nil
}

// String formats oid as dotted-decimal text, e.g. "1.2.840.113549.1.1". If oid
// cannot be decoded, String returns a placeholder rather than panicking.
func (oid ObjectIdentifier) String() string {
	arcs, err := oid.Arcs()
	if err != nil {
		return "<invalid oid>"
	}
	var b strings.Builder
	for i, a := range arcs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(a, 10))
	}
	return b.String()
}

// Equal reports whether oid and other encode to the same packed octets. Since
// the packed encoding is canonical for a given arc sequence, byte equality is
// sufficient and avoids decoding either operand.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return bytes.Equal(oid.raw, other.raw)
}

// Compare orders oid and other by their decoded arc sequences,
// lexicographically, shorter-is-less when one is a prefix of the other. It
// returns -1, 0, or 1. If either operand fails to decode, Compare falls back
// to a raw byte comparison.
func (oid ObjectIdentifier) Compare(other ObjectIdentifier) int {
	a, errA := oid.Arcs()
	b, errB := other.Arcs()
	if errA != nil || errB != nil {
		return bytes.Compare(oid.raw, other.raw)
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
