// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math"
	"strconv"

	"github.com/kberio/asn1"
)

// The REAL special values, Rec. ITU-T X.690, Section 8.5.9.
const (
	realPlusInfinity  = 0x40
	realMinusInfinity = 0x41
	realNaN           = 0x42
	realMinusZero     = 0x43
)

// Real decodes o's content as a REAL value. It handles the special values
// (plus/minus infinity, NaN, minus zero) and the binary form in full; the
// decimal form (ISO 6093 NR1/NR2/NR3) is decoded with [strconv.ParseFloat]
// after normalizing the textual representation, which covers the common NR3
// case exactly and NR1/NR2 for any value representable as a float64.
func (o *Object) Real() (float64, error) {
	if len(o.content) == 0 {
		return 0, nil // REAL zero is the empty content octets, X.690 8.5.2
	}
	first := o.content[0]
	if first&0x80 != 0 {
		return o.decodeBinaryReal()
	}
	if first&0xc0 == 0x40 {
		switch first {
		case realPlusInfinity:
			return math.Inf(1), nil
		case realMinusInfinity:
			return math.Inf(-1), nil
		case realNaN:
			return math.NaN(), nil
		case realMinusZero:
			return math.Copysign(0, -1), nil
		}
		return 0, derr(asn1.ErrInvalidValue, o, "unrecognized REAL special value")
	}
	return o.decodeDecimalReal()
}

func (o *Object) decodeBinaryReal() (float64, error) {
	c := o.content
	first := c[0]
	negative := first&0x40 != 0
	base := 2
	switch (first >> 4) & 0x03 {
	case 0:
		base = 2
	case 1:
		base = 8
	case 2:
		base = 16
	default:
		return 0, derr(asn1.ErrInvalidValue, o, "REAL base value 3 is reserved")
	}
	scale := uint((first >> 2) & 0x03)

	var expLen int
	var rest []byte
	switch first & 0x03 {
	case 0:
		expLen = 1
		rest = c[1:]
	case 1:
		expLen = 2
		rest = c[1:]
	case 2:
		expLen = 3
		rest = c[1:]
	default: // 3: length of the exponent is given by the next octet
		if len(c) < 2 {
			return 0, derr(asn1.ErrObjectTooShort, o, "REAL exponent-length octet missing")
		}
		expLen = int(c[1])
		rest = c[2:]
	}
	if len(rest) < expLen {
		return 0, derr(asn1.ErrObjectTooShort, o, "REAL exponent truncated")
	}
	expBytes := rest[:expLen]
	mantissaBytes := rest[expLen:]
	if len(mantissaBytes) == 0 {
		return 0, derr(asn1.ErrObjectTooShort, o, "REAL mantissa missing")
	}

	exp := int64(0)
	if expBytes[0]&0x80 != 0 {
		exp = -1
	}
	for _, b := range expBytes {
		exp = exp<<8 | int64(b)
	}

	mantissa := uint64(0)
	for _, b := range mantissaBytes {
		mantissa = mantissa<<8 | uint64(b)
	}
	mantissa <<= scale

	val := float64(mantissa) * math.Pow(float64(base), float64(exp))
	if negative {
		val = -val
	}
	return val, nil
}

func (o *Object) decodeDecimalReal() (float64, error) {
	// NR form is identified by the low two bits of the first octet; the
	// textual body follows and is directly acceptable to ParseFloat once an
	// ISO 6093 comma decimal separator is normalized to a period. (This
	// module's encoder, EncodeReal, only emits the binary form.)
	body := o.content[1:]
	s := make([]byte, len(body))
	for i, b := range body {
		if b == ',' {
			s[i] = '.'
		} else {
			s[i] = b
		}
	}
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, derr(asn1.ErrInvalidValue, o, "malformed decimal REAL")
	}
	return f, nil
}

// EncodeReal returns the minimal binary-form DER encoding of f as a REAL
// content octet string (base 2, as recommended for DER by Rec. ITU-T X.690,
// Section 11.3.1), or the corresponding special-value octet for an infinite
// or NaN f.
func EncodeReal(f float64) []byte {
	switch {
	case math.IsNaN(f):
		return []byte{realNaN}
	case math.IsInf(f, 1):
		return []byte{realPlusInfinity}
	case math.IsInf(f, -1):
		return []byte{realMinusInfinity}
	case f == 0:
		if math.Signbit(f) {
			return []byte{realMinusZero}
		}
		return nil
	}
	negative := f < 0
	if negative {
		f = -f
	}
	mantissa, exp := math.Frexp(f)
	// Normalize to an integer mantissa: frexp gives mantissa in [0.5, 1).
	const mantissaBits = 53
	m := uint64(mantissa * (1 << mantissaBits))
	e := exp - mantissaBits
	for m != 0 && m&1 == 0 {
		m >>= 1
		e++
	}

	expBytes := minimalSignedBytes(int64(e))
	var first byte = 0x80
	if negative {
		first |= 0x40
	}
	switch len(expBytes) {
	case 1:
		first |= 0x00
	case 2:
		first |= 0x01
	case 3:
		first |= 0x02
	default:
		first |= 0x03
	}
	out := []byte{first}
	if len(expBytes) > 3 {
		out = append(out, byte(len(expBytes)))
	}
	out = append(out, expBytes...)
	out = append(out, minimalUnsignedBytes(m)...)
	return out
}

func minimalSignedBytes(v int64) []byte {
	b := []byte{byte(v)}
	v >>= 8
	for (v != 0 || b[0]&0x80 != 0) && (v != -1 || b[0]&0x80 == 0) {
		b = append([]byte{byte(v)}, b...)
		v >>= 8
	}
	return b
}

func minimalUnsignedBytes(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var b []byte
	for v > 0 {
		b = append([]byte{byte(v)}, b...)
		v >>= 8
	}
	return b
}
