// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"

	"github.com/kberio/asn1"
)

// validateDER applies the DER canonicalization checks from Rec. ITU-T X.690,
// Section 11 that depend on a fully decoded Object (as opposed to the
// tag/length checks tlv already applies while framing). It is called once
// per Object, immediately after that Object's content or children are
// assembled, so a violation is reported at the narrowest possible element.
func validateDER(obj *Object) error {
	if obj.Header.Tag.Class != asn1.ClassUniversal {
		return nil
	}
	switch obj.Header.Tag.Number {
	case asn1.TagBoolean.Number:
		if len(obj.content) == 1 && obj.content[0] != 0x00 && obj.content[0] != 0xff {
			return derDerr(obj, asn1.DerBoolInvalid, "BOOLEAN must be 0x00 or 0xFF under DER")
		}
	case asn1.TagInteger.Number:
		if !isMinimalTwosComplement(obj.content) {
			return derDerr(obj, asn1.DerIntegerNotMinimal, "INTEGER is not minimally encoded")
		}
	case asn1.TagEnumerated.Number:
		if !isMinimalTwosComplement(obj.content) {
			return derDerr(obj, asn1.DerIntegerNotMinimal, "ENUMERATED is not minimally encoded")
		}
	case asn1.TagBitString.Number:
		if len(obj.content) >= 2 {
			unused := int(obj.content[0])
			last := obj.content[len(obj.content)-1]
			if unused > 0 && last&((1<<uint(unused))-1) != 0 {
				return derDerr(obj, asn1.DerTrailingZeroBitsInBitString, "BIT STRING has non-zero unused trailing bits")
			}
		}
	case asn1.TagUTCTime.Number, asn1.TagGeneralizedTime.Number:
		if !isCanonicalTime(obj.content) {
			return derDerr(obj, asn1.DerTimeNotCanonical, "time value is not in canonical DER form")
		}
	case asn1.TagSet.Number:
		if obj.Header.Constructed && !setChildrenOrdered(obj.Children) {
			return derDerr(obj, asn1.DerSetUnordered, "SET OF children are not in ascending encoding order")
		}
	}
	if cs, known := charsetFor(obj.Header.Tag); known && !validCharset(cs, obj.content) {
		return derDerr(obj, asn1.DerStringContainsInvalidChar, "character string contains a byte outside its charset")
	}
	return nil
}

func derDerr(obj *Object, sub asn1.DerSubKind, msg string) error {
	return asn1.NewError(asn1.ErrDerConstraint, 0).
		WithSub(sub).WithTag(obj.Header.Tag).WithErr(errString(msg))
}

// isMinimalTwosComplement reports whether b is the shortest possible
// two's-complement encoding of its value: not empty, and not starting with a
// redundant 0x00 or 0xFF byte whose following byte's sign bit already agrees.
func isMinimalTwosComplement(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if len(b) == 1 {
		return true
	}
	if b[0] == 0x00 && b[1]&0x80 == 0 {
		return false
	}
	if b[0] == 0xff && b[1]&0x80 != 0 {
		return false
	}
	return true
}

// setChildrenOrdered reports whether children are already in ascending
// byte-lexicographic order of their raw encodings.
func setChildrenOrdered(children []Object) bool {
	for i := 1; i < len(children); i++ {
		if bytes.Compare(children[i-1].Raw, children[i].Raw) > 0 {
			return false
		}
	}
	return true
}

// isCanonicalTime reports whether a UTCTime/GeneralizedTime content value
// meets DER's canonical-form requirements: a trailing 'Z' (never a numeric
// offset or an absent timezone), and, if fractional seconds are present, no
// trailing zero digit.
func isCanonicalTime(b []byte) bool {
	if len(b) == 0 || b[len(b)-1] != 'Z' {
		return false
	}
	body := b[:len(b)-1]
	if i := bytes.IndexAny(body, ".,"); i >= 0 {
		frac := body[i+1:]
		if len(frac) == 0 || frac[len(frac)-1] == '0' {
			return false
		}
	}
	return true
}
