package types

import (
	"fmt"
	"time"
)

// Duration grammar for the duration kind: one or more number+unit
// components in strictly descending unit order, each unit at most once,
// e.g. 1h30m45s. Units beyond the stdlib set are supported:
//
//	y = 365 days, w = 7 days, d = 24 hours, then h m s ms us ns
//
// Numbers are non-negative integers; fractions and signs are rejected.

const maxNanos = int64(^uint64(0) >> 1)

var durationUnits = []struct {
	name  string
	nanos int64
}{
	{"y", 365 * 24 * int64(time.Hour)},
	{"w", 7 * 24 * int64(time.Hour)},
	{"d", 24 * int64(time.Hour)},
	{"h", int64(time.Hour)},
	{"m", int64(time.Minute)},
	{"s", int64(time.Second)},
	{"ms", int64(time.Millisecond)},
	{"us", int64(time.Microsecond)},
	{"ns", 1},
}

// ParseDuration parses s against the duration grammar above.
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("duration cannot be empty")
	}

	var total int64
	var num int64
	hasDigit := false
	lastUnit := -1

	i := 0
	for i < len(s) {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			digit := int64(ch - '0')
			if num > maxNanos/10 || num*10 > maxNanos-digit {
				return 0, fmt.Errorf("invalid duration %q: number too large", s)
			}
			num = num*10 + digit
			hasDigit = true
			i++
			continue
		}

		if !hasDigit {
			return 0, fmt.Errorf("invalid duration %q: missing number before unit at position %d", s, i)
		}

		// Longest unit name first, so "ms" wins over "m".
		matched := -1
		matchedLen := 0
		for idx, unit := range durationUnits {
			if len(unit.name) > matchedLen && i+len(unit.name) <= len(s) && s[i:i+len(unit.name)] == unit.name {
				matched = idx
				matchedLen = len(unit.name)
			}
		}
		if matched < 0 {
			return 0, fmt.Errorf("invalid duration %q: unknown unit at position %d", s, i)
		}
		if matched <= lastUnit {
			return 0, fmt.Errorf("invalid duration %q: units must appear once, in descending order", s)
		}
		lastUnit = matched

		unit := durationUnits[matched]
		if num > maxNanos/unit.nanos {
			return 0, fmt.Errorf("invalid duration %q: overflow", s)
		}
		product := num * unit.nanos
		if total > maxNanos-product {
			return 0, fmt.Errorf("invalid duration %q: overflow", s)
		}
		total += product

		num = 0
		hasDigit = false
		i += matchedLen
	}

	if hasDigit {
		return 0, fmt.Errorf("invalid duration %q: missing unit after number", s)
	}

	return time.Duration(total), nil
}
