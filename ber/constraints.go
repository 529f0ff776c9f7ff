// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"golang.org/x/exp/constraints"

	"github.com/kberio/asn1"
)

// As decodes o's content as an INTEGER or ENUMERATED value and converts it to
// T, failing with [asn1.ErrIntegerTooLarge] if the value does not fit T's
// range. This generalizes [Object.Int64]/[Object.Uint64]/[Object.Uint32] to
// any sized integer type, e.g. As[int8] or As[uint16].
func As[T constraints.Integer](o *Object) (T, error) {
	v, err := o.Int64()
	if err != nil {
		return 0, err
	}
	t := T(v)
	if int64(t) != v || (v < 0) != (t < 0) {
		return 0, derr(asn1.ErrIntegerTooLarge, o, "value does not fit requested integer type")
	}
	return t, nil
}
