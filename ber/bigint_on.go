// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build bigint

package ber

import "math/big"

// BigInt decodes o's content as a two's-complement INTEGER of arbitrary
// magnitude. It is only available when this module is built with the
// "bigint" build tag, which pulls in math/big.
func (o *Object) BigInt() (*big.Int, error) {
	b, err := o.Integer()
	if err != nil {
		return nil, err
	}
	v := new(big.Int)
	if b[0]&0x80 == 0 {
		v.SetBytes(b)
		return v, nil
	}
	// Negative: invert and add one over the two's-complement magnitude.
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	v.SetBytes(inv)
	v.Add(v, big.NewInt(1))
	v.Neg(v)
	return v, nil
}
