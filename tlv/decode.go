// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlv

import (
	"github.com/kberio/asn1"
)

// ReadElement decodes one TLV element from the start of input. It returns the
// decoded Header, the content octets (excluding any end-of-contents marker for
// indefinite-length elements), and the remainder of input following this
// element. All three results alias input; no content is copied.
//
// ReadElement enforces [asn1.MaxDepth] while scanning an indefinite-length
// element's nested TLVs to locate the matching end-of-contents octets.
func ReadElement(input []byte) (hdr Header, content, rest []byte, err error) {
	return readElement(input, false, 0, asn1.MaxDepth)
}

// ReadElementStrict works like [ReadElement] but rejects BER-only constructs
// forbidden by DER: indefinite length, non-minimal length, and non-minimal
// multi-byte tag numbers.
func ReadElementStrict(input []byte) (hdr Header, content, rest []byte, err error) {
	return readElement(input, true, 0, asn1.MaxDepth)
}

// ReadElementDepth works like [ReadElement]/[ReadElementStrict] but lets the
// caller supply the current recursion depth and a maximum depth, for use by
// recursive parsers descending into constructed content.
func ReadElementDepth(input []byte, strict bool, depth, maxDepth int) (hdr Header, content, rest []byte, err error) {
	return readElement(input, strict, depth, maxDepth)
}

func readElement(input []byte, strict bool, depth, maxDepth int) (hdr Header, content, rest []byte, err error) {
	tag, constructed, tn, err := decodeTag(input, strict)
	if err != nil {
		return Header{}, nil, nil, err
	}
	if tag == asn1.TagReserved {
		// End-of-contents octets are only consumed by scanToEOC while closing
		// an indefinite-length element; anywhere else they are rejected.
		return Header{}, nil, nil, asn1.NewError(asn1.ErrInvalidTag, 0).
			WithErr(errString("end-of-contents octets outside an indefinite-length element"))
	}
	length, ln, err := decodeLength(input[tn:], strict)
	if err != nil {
		return Header{}, nil, nil, err
	}
	headerLen := tn + ln
	hdr = Header{Tag: tag, Constructed: constructed, Length: length, Raw: input[:headerLen:headerLen]}

	if length != LengthIndefinite {
		if length < 0 || len(input)-headerLen < length {
			need := length - (len(input) - headerLen)
			if need < 1 {
				need = 1
			}
			return Header{}, nil, nil, asn1.Incomplete(headerLen, need)
		}
		content = input[headerLen : headerLen+length : headerLen+length]
		rest = input[headerLen+length:]
		return hdr, content, rest, nil
	}

	// Indefinite length: only legal for constructed elements, and only in BER
	// (ReadElementStrict never reaches here: decodeLength already rejected
	// 0x80 under strict mode).
	if !constructed {
		return Header{}, nil, nil, asn1.NewError(asn1.ErrInvalidLength, 0).
			WithTag(tag).WithErr(errString("indefinite length on a primitive element"))
	}
	if depth >= maxDepth {
		return Header{}, nil, nil, asn1.NewError(asn1.ErrMaxDepth, headerLen)
	}
	body := input[headerLen:]
	n, eocLen, err := scanToEOC(body, strict, depth+1, maxDepth)
	if err != nil {
		return Header{}, nil, nil, err
	}
	content = body[:n:n]
	rest = body[n+eocLen:]
	return hdr, content, rest, nil
}

// scanToEOC scans data, which begins with the content of an indefinite-length
// constructed element, until it finds the matching end-of-contents octets
// (0x00 0x00) at the top level of that content. It returns the length of the
// content preceding the EOC and the length of the EOC marker itself (always
// 2), or an error if the content is truncated or malformed.
func scanToEOC(data []byte, strict bool, depth, maxDepth int) (contentLen, eocLen int, err error) {
	pos := 0
	for {
		if pos >= len(data) {
			return 0, 0, asn1.Incomplete(pos, 2)
		}
		if data[pos] == 0x00 {
			// Candidate EOC: tag octet 0 is UNIVERSAL 0, always primitive.
			if pos+1 >= len(data) {
				return 0, 0, asn1.Incomplete(pos, 2-(len(data)-pos))
			}
			if data[pos+1] == 0x00 {
				return pos, 2, nil
			}
			return 0, 0, asn1.NewError(asn1.ErrInvalidTag, pos).
				WithErr(errString("invalid end-of-contents octets"))
		}
		_, content, rest, err := readElement(data[pos:], strict, depth, maxDepth)
		if err != nil {
			return 0, 0, err
		}
		consumed := len(data[pos:]) - len(rest)
		_ = content
		pos += consumed
	}
}
