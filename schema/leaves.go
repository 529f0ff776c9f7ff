// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/kberio/asn1"
	"github.com/kberio/asn1/ber"
)

// Boolean decodes a BOOLEAN element.
func Boolean() Parser[bool] {
	return Container(func(o *ber.Object) (bool, error) {
		if err := expectTag(o.Header.Tag, asn1.TagBoolean); err != nil {
			return false, err
		}
		return o.Boolean()
	})
}

// Int64 decodes an INTEGER element as an int64.
func Int64() Parser[int64] {
	return Container(func(o *ber.Object) (int64, error) {
		if err := expectTag(o.Header.Tag, asn1.TagInteger); err != nil {
			return 0, err
		}
		return o.Int64()
	})
}

// Uint64 decodes an INTEGER element as a uint64.
func Uint64() Parser[uint64] {
	return Container(func(o *ber.Object) (uint64, error) {
		if err := expectTag(o.Header.Tag, asn1.TagInteger); err != nil {
			return 0, err
		}
		return o.Uint64()
	})
}

// OctetString decodes an OCTET STRING element.
func OctetString() Parser[[]byte] {
	return Container(func(o *ber.Object) ([]byte, error) {
		if err := expectTag(o.Header.Tag, asn1.TagOctetString); err != nil {
			return nil, err
		}
		return o.OctetString()
	})
}

// OID decodes an OBJECT IDENTIFIER element.
func OID() Parser[asn1.ObjectIdentifier] {
	return Container(func(o *ber.Object) (asn1.ObjectIdentifier, error) {
		if err := expectTag(o.Header.Tag, asn1.TagOID); err != nil {
			return asn1.ObjectIdentifier{}, err
		}
		return o.OID()
	})
}

// Null asserts a NULL element and discards it.
func Null() Parser[struct{}] {
	return Container(func(o *ber.Object) (struct{}, error) {
		if err := expectTag(o.Header.Tag, asn1.TagNull); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, o.Null()
	})
}

// StringOf decodes a character-string element of the given universal tag
// (e.g. [asn1.TagUTF8String], [asn1.TagPrintableString], [asn1.TagIA5String]).
func StringOf(tag asn1.Tag) Parser[string] {
	return Container(func(o *ber.Object) (string, error) {
		if err := expectTag(o.Header.Tag, tag); err != nil {
			return "", err
		}
		return o.Text()
	})
}
