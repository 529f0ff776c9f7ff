// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math"
	"testing"

	"github.com/kberio/asn1"
)

func TestObject_Real_SpecialValues(t *testing.T) {
	o := New(asn1.TagReal, []byte{realPlusInfinity})
	f, err := o.Real()
	if err != nil || !math.IsInf(f, 1) {
		t.Errorf("Real() = %v, %v, want +Inf", f, err)
	}

	o = New(asn1.TagReal, []byte{realMinusInfinity})
	f, err = o.Real()
	if err != nil || !math.IsInf(f, -1) {
		t.Errorf("Real() = %v, %v, want -Inf", f, err)
	}

	o = New(asn1.TagReal, []byte{realNaN})
	f, err = o.Real()
	if err != nil || !math.IsNaN(f) {
		t.Errorf("Real() = %v, %v, want NaN", f, err)
	}

	o = New(asn1.TagReal, nil)
	f, err = o.Real()
	if err != nil || f != 0 {
		t.Errorf("Real() = %v, %v, want 0", f, err)
	}
}

func TestEncodeReal_BinaryRoundTrip(t *testing.T) {
	for _, v := range []float64{0.5, 1, 2, 3.25, 100, -7.5, 1e10, -1e-10} {
		content := EncodeReal(v)
		o := New(asn1.TagReal, content)
		got, err := o.Real()
		if err != nil {
			t.Fatalf("Real() error = %v for input %v", err, v)
		}
		if got != v {
			t.Errorf("round trip Real(EncodeReal(%v)) = %v", v, got)
		}
	}
}
