// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements the ASN.1 Basic Encoding Rules (BER), as specified
// in [Rec. ITU-T X.690]. It parses a borrowed byte slice into [Object], a
// discriminated value representing one parsed TLV element (and, for
// constructed elements, its parsed children), and provides the inverse
// DER-canonical encoder. [github.com/kberio/asn1/der] layers the DER
// canonicalization checks from Section 4.7 on top of the same parser via a
// strict-mode flag; this package always accepts the full permissive BER
// grammar.
//
// Parsing never copies content octets: an [Object] aliases the input slice it
// was parsed from. It also never panics, including on truncated, malformed,
// or adversarially nested input - see [Parse] for the recursion depth cap.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package ber

import (
	"github.com/kberio/asn1"
	"github.com/kberio/asn1/tlv"
)

// Options configures a call to [ParseOptions].
type Options struct {
	// Strict enables DER canonicalization checks (see package der).
	Strict bool
	// MaxDepth overrides asn1.MaxDepth if non-zero.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return asn1.MaxDepth
}

// Object is a parsed BER/DER element: a discriminated value carrying its
// header, raw bytes, and - for constructed elements - its parsed children in
// original order. The same representation is used for both BER and DER; DER
// is a parsing discipline (see package der), not a distinct type.
//
// An Object is immutable after construction and borrows its Content, Raw, and
// RawTag byte slices from the input it was parsed from: those slices, and any
// Object reachable from it, must not be used after the backing input is
// reused or modified. Use [Object.Clone] to obtain a copy that owns its
// memory.
type Object struct {
	Header tlv.Header
	// Raw is the complete encoding of this element (header and content,
	// excluding any end-of-contents octets of an indefinite-length parent).
	Raw []byte
	// Children holds the parsed children of a constructed element, in
	// encoding order. Children is nil for primitive elements.
	Children []Object

	content []byte // content octets; for a parsed constructed Object, its children's encodings; nil for Objects built by Sequence/Set/Container
}

// Tag reports the class and number of o's tag.
func (o *Object) Tag() asn1.Tag { return o.Header.Tag }

// Class reports the class of o's tag.
func (o *Object) Class() asn1.Class { return o.Header.Tag.Class }

// IsConstructed reports whether o uses the constructed encoding.
func (o *Object) IsConstructed() bool { return o.Header.Constructed }

// Content returns o's content octets. For a constructed element this is the
// concatenation of its children's raw encodings (it does not include any
// end-of-contents octets); for a primitive element it is the element's
// undecoded value octets. The returned slice aliases the input Object was
// parsed from and must not be modified.
func (o *Object) Content() []byte { return o.content }

// Clone returns a deep copy of o that owns its own memory, safe to retain
// after the buffer o was parsed from is reused or discarded.
func (o *Object) Clone() Object {
	clone := Object{Header: o.Header, content: append([]byte(nil), o.content...)}
	clone.Raw = append([]byte(nil), o.Raw...)
	if o.Header.Raw != nil {
		clone.Header.Raw = clone.Raw[:len(o.Header.Raw):len(o.Header.Raw)]
	}
	if o.Children != nil {
		clone.Children = make([]Object, len(o.Children))
		for i := range o.Children {
			clone.Children[i] = o.Children[i].Clone()
		}
	}
	return clone
}

// String returns a short debug representation of o.
func (o *Object) String() string {
	return o.Header.String()
}
