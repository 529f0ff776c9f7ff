// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"unicode/utf8"

	"github.com/kberio/asn1"
)

// Charset identifies the character-set constraint of one of the ASN.1
// character-string types.
type Charset int

// The character-string charsets this module validates.
const (
	CharsetAny Charset = iota // OctetString-like types with no charset constraint (T61, Videotex, Graphic, General, Universal, BMP, ObjectDescriptor)
	CharsetNumeric
	CharsetPrintable
	CharsetIA5
	CharsetUTF8
)

// charsetFor reports the Charset constraint for a well-known string tag, and
// whether tag is a recognized character-string type at all.
func charsetFor(tag asn1.Tag) (Charset, bool) {
	if tag.Class != asn1.ClassUniversal {
		return CharsetAny, false
	}
	switch tag.Number {
	case asn1.TagNumericString.Number:
		return CharsetNumeric, true
	case asn1.TagPrintableString.Number:
		return CharsetPrintable, true
	case asn1.TagIA5String.Number:
		return CharsetIA5, true
	case asn1.TagUTF8String.Number:
		return CharsetUTF8, true
	case asn1.TagTeletexString.Number, asn1.TagVideotexString.Number,
		asn1.TagGraphicString.Number, asn1.TagGeneralString.Number,
		asn1.TagUniversalString.Number, asn1.TagBMPString.Number,
		asn1.TagObjectDescriptor.Number, asn1.TagVisibleString.Number,
		asn1.TagCharacterString.Number:
		return CharsetAny, true
	}
	return CharsetAny, false
}

// Text decodes o's content as one of the ASN.1 character-string types,
// returning it as a Go string. BER mode never enforces the charset (callers
// may inspect [Object.IsValid] themselves); DER mode (via the der package's
// strict Options) rejects a charset violation at parse time.
func (o *Object) Text() (string, error) {
	return string(o.content), nil
}

// IsValid reports whether o's content conforms to the charset its tag
// implies. It returns true for tags with no charset constraint.
func (o *Object) IsValid() bool {
	cs, known := charsetFor(o.Header.Tag)
	if !known {
		return true
	}
	return validCharset(cs, o.content)
}

func validCharset(cs Charset, b []byte) bool {
	switch cs {
	case CharsetNumeric:
		for _, c := range b {
			if !(c >= '0' && c <= '9' || c == ' ') {
				return false
			}
		}
		return true
	case CharsetPrintable:
		for _, c := range b {
			if !isPrintableChar(c) {
				return false
			}
		}
		return true
	case CharsetIA5:
		for _, c := range b {
			if c > 0x7f {
				return false
			}
		}
		return true
	case CharsetUTF8:
		return utf8.Valid(b)
	default:
		return true
	}
}

// isPrintableChar reports whether c is a member of the PrintableString
// charset: A-Z a-z 0-9 ' ( ) + , - . / : = ? and space, Rec. ITU-T X.680,
// Section 41.4.
func isPrintableChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}
