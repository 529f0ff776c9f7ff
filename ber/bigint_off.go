// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !bigint

package ber

import "github.com/kberio/asn1"

// BigInt is unavailable in this build: compile with the "bigint" build tag
// to enable math/big-backed arbitrary-precision INTEGER decoding.
func (o *Object) BigInt() (any, error) {
	return nil, derr(asn1.ErrCustom, o, "BigInt requires building with -tags bigint")
}
