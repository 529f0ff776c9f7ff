// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"strconv"
	"time"

	"github.com/kberio/asn1"
)

// Time is the broken-down representation of a decoded UTCTime or
// GeneralizedTime value. Fractional holds the fractional-second digits
// exactly as encoded (without a leading separator), and is empty if the
// value carried none. UTC reports whether the timezone was UTC ('Z', or no
// timezone suffix at all, which is treated as UTC); when false,
// OffsetMinutes holds the signed offset from UTC in minutes.
type Time struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Fractional           string
	UTC                  bool
	OffsetMinutes        int
}

// ToStd converts t to a [time.Time] in UTC.
func (t Time) ToStd() time.Time {
	loc := time.UTC
	tm := time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, 0, loc)
	if !t.UTC {
		tm = tm.Add(-time.Duration(t.OffsetMinutes) * time.Minute)
	}
	if t.Fractional != "" {
		var num, den int64 = 0, 1
		for _, c := range t.Fractional {
			num = num*10 + int64(c-'0')
			den *= 10
		}
		tm = tm.Add(time.Duration(num) * time.Second / time.Duration(den))
	}
	return tm
}

// UTCTime decodes o's content as a UTCTIME value (Rec. ITU-T X.690, Section
// 11.8). The two-digit year is mapped per Rec. ITU-T X.680, Section 46.3:
// 00-49 maps to 2000-2049, 50-99 maps to 1950-1999.
func (o *Object) UTCTime() (Time, error) {
	s := string(o.content)
	if len(s) < 11 {
		return Time{}, derr(asn1.ErrInvalidValue, o, "UTCTime too short")
	}
	yy, err := atoi2(s[0:2])
	if err != nil {
		return Time{}, derr(asn1.ErrInvalidValue, o, "UTCTime malformed year")
	}
	year := 1900 + yy
	if yy < 50 {
		year = 2000 + yy
	}
	t, rest, err := parseYMDHMS(s[2:], year)
	if err != nil {
		return Time{}, derr(asn1.ErrInvalidValue, o, "UTCTime malformed")
	}
	if err := parseZone(&t, rest); err != nil {
		return Time{}, derr(asn1.ErrInvalidValue, o, "UTCTime malformed timezone")
	}
	return t, nil
}

// GeneralizedTime decodes o's content as a GENERALIZEDTIME value (Rec.
// ITU-T X.690, Section 11.7), with a four-digit year and optional fractional
// seconds.
func (o *Object) GeneralizedTime() (Time, error) {
	s := string(o.content)
	if len(s) < 10 {
		return Time{}, derr(asn1.ErrInvalidValue, o, "GeneralizedTime too short")
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return Time{}, derr(asn1.ErrInvalidValue, o, "GeneralizedTime malformed year")
	}
	t, rest, err := parseYMDHMS(s[4:], year)
	if err != nil {
		return Time{}, derr(asn1.ErrInvalidValue, o, "GeneralizedTime malformed")
	}
	if len(rest) > 0 && (rest[0] == '.' || rest[0] == ',') {
		i := 1
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		t.Fractional = rest[1:i]
		rest = rest[i:]
	}
	if err := parseZone(&t, rest); err != nil {
		return Time{}, derr(asn1.ErrInvalidValue, o, "GeneralizedTime malformed timezone")
	}
	return t, nil
}

// parseYMDHMS parses "MMDDhhmm[ss]" (UTCTime's tail) or "MMDDhhmm[ss]"
// (GeneralizedTime's tail after the year), tolerating an absent seconds
// field, and returns the partially-built Time plus the unconsumed suffix.
func parseYMDHMS(s string, year int) (Time, string, error) {
	if len(s) < 8 {
		return Time{}, "", errString("too short")
	}
	month, err := atoi2(s[0:2])
	if err != nil {
		return Time{}, "", err
	}
	day, err := atoi2(s[2:4])
	if err != nil {
		return Time{}, "", err
	}
	hour, err := atoi2(s[4:6])
	if err != nil {
		return Time{}, "", err
	}
	minute, err := atoi2(s[6:8])
	if err != nil {
		return Time{}, "", err
	}
	rest := s[8:]
	second := 0
	if len(rest) >= 2 && rest[0] >= '0' && rest[0] <= '9' && rest[1] >= '0' && rest[1] <= '9' {
		second, err = atoi2(rest[0:2])
		if err != nil {
			return Time{}, "", err
		}
		rest = rest[2:]
	}
	return Time{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}, rest, nil
}

func parseZone(t *Time, rest string) error {
	switch {
	case rest == "Z":
		t.UTC = true
		return nil
	case rest == "":
		t.UTC = true // BER permits a local-time form with no suffix; treat as UTC
		return nil
	case len(rest) == 5 && (rest[0] == '+' || rest[0] == '-'):
		hh, err := atoi2(rest[1:3])
		if err != nil {
			return err
		}
		mm, err := atoi2(rest[3:5])
		if err != nil {
			return err
		}
		off := hh*60 + mm
		if rest[0] == '-' {
			off = -off
		}
		t.OffsetMinutes = off
		return nil
	}
	return errString("unrecognized timezone suffix")
}

func atoi2(s string) (int, error) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, errString("expected two digits")
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}
