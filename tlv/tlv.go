// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tlv implements the tag-length-value framing shared by the Basic
// Encoding Rules (BER) and the Distinguished Encoding Rules (DER), as
// specified in [Rec. ITU-T X.690]. This package deals with the syntactic
// layer of TLV-encoding; [github.com/kberio/asn1/ber] deals with the semantic
// layer of type-specific content.
//
// Every decoding function in this package works directly on a borrowed byte
// slice and never copies content octets: the [Header] and content slice
// returned by [ReadElement] alias the input. Callers that need a value to
// outlive the input buffer must copy it themselves.
//
// # Headers and Values
//
// In BER each value is encoded using a tag-length-value format. The tag and
// length (together a [Header]) precede the content octets. Constructed values
// use either a definite length (the header states the exact content length)
// or an indefinite length (the content ends at a two-byte end-of-contents
// marker, 0x00 0x00). [ReadElement] transparently locates the matching EOC
// for indefinite-length input and returns a content slice excluding it.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package tlv

import (
	"strconv"

	"github.com/kberio/asn1"
)

// LengthIndefinite, when used as the Length of a [Header], indicates that the
// data value uses the constructed indefinite-length encoding (BER only; DER
// always uses definite lengths).
const LengthIndefinite = -1

// Header represents a decoded TLV header.
type Header struct {
	Tag         asn1.Tag
	Constructed bool
	// Length is the number of content octets, or LengthIndefinite.
	Length int
	// Raw is the exact header octets this Header was decoded from. It aliases
	// the original input. Raw is nil for headers built programmatically
	// (e.g. by the ber package's New and Sequence builders).
	Raw []byte
}

// String returns a short human-readable form of h, e.g. "[UNIVERSAL 16]/c:10".
func (h Header) String() string {
	s := h.Tag.String()
	if h.Constructed {
		s += "/c"
	} else {
		s += "/p"
	}
	if h.Length == LengthIndefinite {
		return s + ":indefinite"
	}
	return s + ":" + strconv.Itoa(h.Length)
}
