// Package iso8601 parses and formats the ISO-8601 date/time text used in
// <date> elements.
//
// The grammar is fixed: YYYY(-MM(-DDThh:mm(:ss(.frac)?)?(Z|±hh:mm)?)?)?.
// Year is mandatory; each later component is only meaningful when every
// earlier one is present. Missing month and day default to 1, missing
// time components to zero, so the result always has the shape of a full
// timestamp. A missing or "Z" zone designator resolves to the default
// zone (UTC unless overridden); an explicit ±hh:mm becomes a fixed zone
// of that offset, never re-normalized to UTC.
package iso8601

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Adapted from http://delete.me.uk/2005/03/iso8601.html
var iso8601Re = regexp.MustCompile(
	`^(\d{4})(?:-(\d{1,2})(?:-(\d{1,2})` +
		`(?:.(\d{2}):(\d{2})(?::(\d{2})(?:\.(\d+))?)?` +
		`(Z|[-+]\d{2}:\d{2})?)?)?)?`)

type ParseOption func(*parseOpts)

type parseOpts struct {
	defaultZone *time.Location
}

// DefaultZone sets the zone used when the input carries no designator.
func DefaultZone(loc *time.Location) ParseOption {
	return func(po *parseOpts) { po.defaultZone = loc }
}

// Parse parses ISO-8601 date text into a zone-carrying timestamp.
// Text not matching the grammar yields ErrInvalidDate.
func Parse(s string, opts ...ParseOption) (time.Time, error) {
	po := &parseOpts{defaultZone: time.UTC}
	for _, opt := range opts {
		opt(po)
	}
	m := iso8601Re.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: unable to parse %q", ErrInvalidDate, s)
	}
	year := atoiGroup(m[1], 0)
	month := atoiGroup(m[2], 1)
	day := atoiGroup(m[3], 1)
	hour := atoiGroup(m[4], 0)
	minute := atoiGroup(m[5], 0)
	second := atoiGroup(m[6], 0)
	micro := fraction(m[7])
	loc, err := parseZone(m[8], po.defaultZone)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day,
		hour, minute, second, micro*1000, loc), nil
}

func atoiGroup(g string, def int) int {
	if g == "" {
		return def
	}
	v, _ := strconv.Atoi(g)
	return v
}

// fraction converts fractional-second digits to integer microseconds.
// Digits beyond the sixth are dropped, never rounded.
func fraction(digits string) int {
	if digits == "" {
		return 0
	}
	if len(digits) > 6 {
		digits = digits[:6]
	}
	v, _ := strconv.Atoi(digits)
	for i := len(digits); i < 6; i++ {
		v *= 10
	}
	return v
}

// parseZone resolves a zone designator into a location. An empty or "Z"
// designator yields the default; ±hh:mm yields a fixed zone named by the
// designator text.
func parseZone(tz string, def *time.Location) (*time.Location, error) {
	if tz == "" || tz == "Z" {
		return def, nil
	}
	hours, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil, fmt.Errorf("%w: zone %q", ErrInvalidDate, tz)
	}
	minutes, err := strconv.Atoi(tz[4:6])
	if err != nil {
		return nil, fmt.Errorf("%w: zone %q", ErrInvalidDate, tz)
	}
	offset := hours*3600 + minutes*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset), nil
}

// Format emits ISO-8601 extended text with the timestamp's stored offset
// verbatim: "Z" for a zero offset, ±hh:mm otherwise. A nonzero
// microsecond fraction is emitted with trailing zeros trimmed.
func Format(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if micro := t.Nanosecond() / 1000; micro != 0 {
		frac := fmt.Sprintf("%06d", micro)
		for len(frac) > 1 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		s += "." + frac
	}
	_, offset := t.Zone()
	if offset == 0 {
		return s + "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return s + fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}
