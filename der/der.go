// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements the ASN.1 Distinguished Encoding Rules (Rec. ITU-T
// X.690, Section 11), the canonical subset of BER. It is a thin strict-mode
// wrapper over [github.com/kberio/asn1/ber]: the same recursive parser, the same
// [ber.Object] model, the same encoder, with the Strict option enabled so
// non-canonical BER constructs (indefinite length, non-minimal length
// encodings, out-of-range BOOLEAN, unordered SET-OF, invalid character-string
// content) are rejected with [asn1.ErrDerConstraint] instead of accepted. A
// non-minimal multi-byte tag number is rejected with [asn1.ErrInvalidTag]
// (sub-kind [asn1.DerTagNotMinimal]).
package der

import (
	"github.com/kberio/asn1"
	"github.com/kberio/asn1/ber"
)

// Parse decodes the single DER element at the start of input, rejecting any
// BER construct that DER forbids. See [ber.Parse] for the general contract.
func Parse(input []byte) (obj ber.Object, rest []byte, err error) {
	return ber.ParseOptions(input, ber.Options{Strict: true})
}

// ParseDepth works like [Parse] but lets the caller override the maximum
// recursion depth (see [asn1.MaxDepth]).
func ParseDepth(input []byte, maxDepth int) (obj ber.Object, rest []byte, err error) {
	return ber.ParseOptions(input, ber.Options{Strict: true, MaxDepth: maxDepth})
}

// Encode appends the DER-canonical encoding of obj to dst. It is identical to
// [ber.Encode]: the BER encoder always produces DER-canonical output, since
// BER's permissive alternatives exist only on the decoding side.
func Encode(dst []byte, obj ber.Object) []byte {
	return ber.Encode(dst, obj)
}

// ValidateDerStrings reports whether every character-string element in the
// tree rooted at obj conforms to its charset, returning the first offending
// tag's [asn1.ErrStringInvalidCharset] error if not. [Parse] already applies
// this check at parse time for strict input; this helper exists for object
// trees constructed programmatically.
func ValidateDerStrings(obj *ber.Object) error {
	if !obj.IsValid() {
		return asn1.NewError(asn1.ErrStringInvalidCharset, 0).WithTag(obj.Tag())
	}
	for i := range obj.Children {
		if err := ValidateDerStrings(&obj.Children[i]); err != nil {
			return err
		}
	}
	return nil
}
