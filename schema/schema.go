// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema implements combinator-based parsing of known BER/DER
// structures on top of [github.com/kberio/asn1/ber]. A combinator is any value
// of type [Parser]: a function taking a [Cursor] and returning a decoded
// value, a [Cursor] advanced past what it consumed, and an error. Combinators
// compose: [SequenceDefined], [Choice], [Optional], and the rest all accept
// or return Parser values, so a schema is built by ordinary function
// composition rather than a macro or code-generation step.
package schema

import (
	"github.com/kberio/asn1"
	"github.com/kberio/asn1/ber"
	"github.com/kberio/asn1/der"
)

// Mode selects which encoding rules a [Cursor] decodes with.
type Mode int

// The two supported modes.
const (
	ModeBER Mode = iota
	ModeDER
)

// Cursor is the input to every combinator: the unconsumed byte slice, the
// encoding mode, and the current recursion depth (threaded through so nested
// combinators share one [asn1.MaxDepth] budget with the underlying parser).
//
// A Cursor pre-seeded with a pending Object (via [Cursor.withPending]) is used
// internally by [TaggedImplicit] to let an inner combinator consume an
// element whose tag was already stripped and replaced by the wrapper.
type Cursor struct {
	data    []byte
	mode    Mode
	depth   int
	pending *ber.Object
}

// NewCursor returns a Cursor over data in the given mode, at recursion depth
// zero.
func NewCursor(data []byte, mode Mode) Cursor {
	return Cursor{data: data, mode: mode}
}

// Rest returns the Cursor's unconsumed input.
func (c Cursor) Rest() []byte { return c.data }

// ReadElement decodes the next complete element from c, honoring a pending
// synthesized Object if one was installed by [TaggedImplicit], and returns it
// along with a Cursor advanced past it.
func (c Cursor) ReadElement() (ber.Object, Cursor, error) {
	if c.pending != nil {
		obj := *c.pending
		next := c
		next.pending = nil
		return obj, next, nil
	}
	if c.depth >= asn1.MaxDepth {
		return ber.Object{}, c, asn1.NewError(asn1.ErrMaxDepth, 0)
	}
	var (
		obj  ber.Object
		rest []byte
		err  error
	)
	switch c.mode {
	case ModeDER:
		obj, rest, err = der.ParseDepth(c.data, asn1.MaxDepth-c.depth)
	default:
		obj, rest, err = ber.ParseOptions(c.data, ber.Options{MaxDepth: asn1.MaxDepth - c.depth})
	}
	if err != nil {
		return ber.Object{}, c, err
	}
	next := Cursor{data: rest, mode: c.mode, depth: c.depth}
	return obj, next, nil
}

// withChildren returns a Cursor over content (the children of a constructed
// element already decoded by the caller), one depth level deeper.
func (c Cursor) withChildren(content []byte) Cursor {
	return Cursor{data: content, mode: c.mode, depth: c.depth + 1}
}

// withPending returns a Cursor whose next [Cursor.ReadElement] call yields obj
// directly instead of decoding from data.
func (c Cursor) withPending(obj ber.Object, data []byte) Cursor {
	return Cursor{data: data, mode: c.mode, depth: c.depth, pending: &obj}
}

// Parser decodes a value of type T from the front of a Cursor, returning the
// value and a Cursor advanced past the bytes it consumed.
type Parser[T any] func(c Cursor) (T, Cursor, error)

func expectTag(got asn1.Tag, want asn1.Tag) error {
	if got.Class != want.Class {
		return asn1.NewError(asn1.ErrUnexpectedClass, 0).WithTag(got)
	}
	if got.Number != want.Number {
		return asn1.NewError(asn1.ErrUnexpectedTag, 0).WithTag(got)
	}
	return nil
}
