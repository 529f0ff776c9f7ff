// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"github.com/kberio/asn1"
	"github.com/kberio/asn1/tlv"
)

// Parse decodes the single element at the start of input and returns it along
// with the remaining, unconsumed bytes of input. Parse does not require input
// to be consumed in full; callers decoding a sequence of top-level elements
// (e.g. a stream of concatenated certificates) call Parse repeatedly on the
// returned rest.
//
// Parse recurses into constructed elements up to [asn1.MaxDepth] levels deep,
// returning an error wrapping [asn1.ErrMaxDepth] if the input nests further.
func Parse(input []byte) (obj Object, rest []byte, err error) {
	return ParseOptions(input, Options{})
}

// ParseOptions works like [Parse] but accepts [Options] controlling strict
// (DER) mode and the recursion depth cap.
func ParseOptions(input []byte, opts Options) (obj Object, rest []byte, err error) {
	return parse(input, opts, 0)
}

func parse(input []byte, opts Options, depth int) (obj Object, rest []byte, err error) {
	hdr, content, rest, err := tlv.ReadElementDepth(input, opts.Strict, depth, opts.maxDepth())
	if err != nil {
		return Object{}, nil, err
	}
	raw := input[:len(input)-len(rest)]
	obj = Object{Header: hdr, Raw: raw}

	if !hdr.Constructed {
		obj.content = content
		if opts.Strict {
			if err := validateDER(&obj); err != nil {
				return Object{}, nil, err
			}
		}
		return obj, rest, nil
	}

	// Constructed: recursively parse children out of content. This applies
	// equally to definite and indefinite length elements - tlv.ReadElement
	// already stripped the indefinite length's end-of-contents marker.
	if depth >= opts.maxDepth() {
		return Object{}, nil, asn1.NewError(asn1.ErrMaxDepth, len(raw)-len(content)).WithTag(hdr.Tag)
	}
	remaining := content
	for len(remaining) > 0 {
		var child Object
		child, remaining, err = parse(remaining, opts, depth+1)
		if err != nil {
			return Object{}, nil, err
		}
		obj.Children = append(obj.Children, child)
	}
	obj.content = content
	if opts.Strict {
		if err := validateDER(&obj); err != nil {
			return Object{}, nil, err
		}
	}
	return obj, rest, nil
}
