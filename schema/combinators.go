// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/kberio/asn1"
	"github.com/kberio/asn1/ber"
)

// Container is the lowest-level combinator: it reads one complete element
// and hands its decoded [ber.Object] to inner, which extracts whatever value
// it needs from the header and content.
func Container[T any](inner func(obj *ber.Object) (T, error)) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		obj, next, err := c.ReadElement()
		if err != nil {
			return zero, c, err
		}
		v, err := inner(&obj)
		if err != nil {
			return zero, c, err
		}
		return v, next, nil
	}
}

// SequenceDefined asserts a SEQUENCE tag, runs inner over its content, and
// requires inner to consume the content exactly.
func SequenceDefined[T any](inner Parser[T]) Parser[T] {
	return definedContainer(asn1.TagSequence, inner)
}

// SetDefined asserts a SET tag, runs inner over its content, and requires
// inner to consume the content exactly.
func SetDefined[T any](inner Parser[T]) Parser[T] {
	return definedContainer(asn1.TagSet, inner)
}

func definedContainer[T any](want asn1.Tag, inner Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		obj, next, err := c.ReadElement()
		if err != nil {
			return zero, c, err
		}
		if err := expectTag(obj.Header.Tag, want); err != nil {
			return zero, c, err
		}
		if !obj.Header.Constructed {
			return zero, c, asn1.NewError(asn1.ErrInvalidValue, 0).WithTag(obj.Header.Tag)
		}
		v, childRest, err := inner(next.withChildren(obj.Content()))
		if err != nil {
			return zero, c, err
		}
		if len(childRest.Rest()) != 0 {
			return zero, c, asn1.NewError(asn1.ErrInvalidValue, 0).
				WithTag(obj.Header.Tag).WithErr(errTrailing)
		}
		return v, next, nil
	}
}

var errTrailing = schemaErr("trailing bytes after inner parser")

type schemaErr string

func (e schemaErr) Error() string { return string(e) }

// SequenceOf asserts a SEQUENCE tag and decodes item repeatedly over its
// content until exhausted, collecting the results in encoding order.
func SequenceOf[T any](item Parser[T]) Parser[[]T] {
	return repeatedContainer(asn1.TagSequence, item)
}

// SetOf asserts a SET tag and decodes item repeatedly over its content until
// exhausted. Under [ModeDER], ordering of the underlying elements was already
// verified while decoding the outer SET (see the der package's strict-mode
// checks); SetOf does not re-verify it.
func SetOf[T any](item Parser[T]) Parser[[]T] {
	return repeatedContainer(asn1.TagSet, item)
}

func repeatedContainer[T any](want asn1.Tag, item Parser[T]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, error) {
		obj, next, err := c.ReadElement()
		if err != nil {
			return nil, c, err
		}
		if err := expectTag(obj.Header.Tag, want); err != nil {
			return nil, c, err
		}
		if !obj.Header.Constructed {
			return nil, c, asn1.NewError(asn1.ErrInvalidValue, 0).WithTag(obj.Header.Tag)
		}
		cur := next.withChildren(obj.Content())
		var out []T
		for len(cur.Rest()) != 0 {
			var v T
			v, cur, err = item(cur)
			if err != nil {
				return nil, c, err
			}
			out = append(out, v)
		}
		return out, next, nil
	}
}

// TaggedExplicit asserts an outer constructed tag (class, number) whose
// content is one complete element decoded by inner.
func TaggedExplicit[T any](class asn1.Class, number uint64, inner Parser[T]) Parser[T] {
	want := asn1.Tag{Class: class, Number: number}
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		obj, next, err := c.ReadElement()
		if err != nil {
			return zero, c, err
		}
		if err := expectTag(obj.Header.Tag, want); err != nil {
			return zero, c, err
		}
		if !obj.Header.Constructed {
			return zero, c, asn1.NewError(asn1.ErrInvalidValue, 0).WithTag(obj.Header.Tag)
		}
		v, childRest, err := inner(next.withChildren(obj.Content()))
		if err != nil {
			return zero, c, err
		}
		if len(childRest.Rest()) != 0 {
			return zero, c, asn1.NewError(asn1.ErrInvalidValue, 0).
				WithTag(obj.Header.Tag).WithErr(errTrailing)
		}
		return v, next, nil
	}
}

// TaggedImplicit asserts an outer tag (class, number) whose content is
// parsed as if its tag were universalTag: the combinator synthesizes a
// header carrying universalTag and the outer element's constructed flag,
// content, and children, and lets inner consume it as a fresh element.
func TaggedImplicit[T any](class asn1.Class, number uint64, universalTag asn1.Tag, inner Parser[T]) Parser[T] {
	want := asn1.Tag{Class: class, Number: number}
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		obj, next, err := c.ReadElement()
		if err != nil {
			return zero, c, err
		}
		if err := expectTag(obj.Header.Tag, want); err != nil {
			return zero, c, err
		}
		synthetic := obj
		synthetic.Header.Tag = universalTag
		v, _, err := inner(next.withPending(synthetic, next.data))
		if err != nil {
			return zero, c, err
		}
		return v, next, nil
	}
}

// Optional tries inner; if it fails with [asn1.ErrUnexpectedTag] or
// [asn1.ErrUnexpectedClass] - a schema mismatch rather than malformed input -
// Optional succeeds with a nil pointer and consumes no input. Any other error
// propagates unchanged.
func Optional[T any](inner Parser[T]) Parser[*T] {
	return func(c Cursor) (*T, Cursor, error) {
		v, next, err := inner(c)
		if err == nil {
			return &v, next, nil
		}
		if kind, ok := asn1.Kind(err); ok && (kind == asn1.ErrUnexpectedTag || kind == asn1.ErrUnexpectedClass) {
			return nil, c, nil
		}
		return nil, c, err
	}
}

// Choice decodes the next element's tag and dispatches to the matching entry
// of table. An incoming tag absent from table fails with
// [asn1.ErrUnexpectedTag].
func Choice[T any](table map[asn1.Tag]Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		obj, next, err := c.ReadElement()
		if err != nil {
			return zero, c, err
		}
		p, ok := table[obj.Header.Tag]
		if !ok {
			return zero, c, asn1.NewError(asn1.ErrUnexpectedTag, 0).WithTag(obj.Header.Tag)
		}
		return p(next.withPending(obj, next.data))
	}
}

// DefinedBy first runs selector to decode a discriminant value and advance
// the cursor, then looks up and runs the parser registered under that value
// in table. It implements the ASN.1 "DEFINED BY" / open-type pattern, where
// one field's type depends on a sibling field already parsed.
func DefinedBy[K comparable, T any](selector Parser[K], table map[K]Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		key, next, err := selector(c)
		if err != nil {
			return zero, c, err
		}
		p, ok := table[key]
		if !ok {
			return zero, next, asn1.NewError(asn1.ErrUnexpectedTag, 0)
		}
		return p(next)
	}
}
