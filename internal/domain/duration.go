package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Units accepted by ParseFlexibleDuration. Weeks and above are rejected:
// they are ambiguous spans and never appear in media runtimes.
var durationUnits = map[string]time.Duration{
	"ms":      time.Millisecond,
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"d":       24 * time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
}

// ParseFlexibleDuration parses a compact human duration string such as
// "1h2m3s", "90s" or "1d 4h". Magnitudes are non-negative integers and each
// must be followed by a unit; pairs may be separated by whitespace.
func ParseFlexibleDuration(s string) (time.Duration, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	var total time.Duration
	rest := input
	for rest != "" {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			break
		}

		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("invalid duration %q: expected digit at %q", s, rest)
		}
		var value int64
		for _, c := range rest[:i] {
			if value > (math.MaxInt64-int64(c-'0'))/10 {
				return 0, fmt.Errorf("invalid duration %q: magnitude overflows", s)
			}
			value = value*10 + int64(c-'0')
		}

		rest = strings.TrimLeft(rest[i:], " \t")
		j := 0
		for j < len(rest) && isUnitLetter(rest[j]) {
			j++
		}
		if j == 0 {
			return 0, fmt.Errorf("invalid duration %q: missing unit after %d", s, value)
		}
		unit, ok := durationUnits[strings.ToLower(rest[:j])]
		if !ok {
			return 0, fmt.Errorf("invalid duration %q: unknown unit %q", s, rest[:j])
		}
		if value > int64(math.MaxInt64)/int64(unit) {
			return 0, fmt.Errorf("invalid duration %q: value overflows", s)
		}
		span := time.Duration(value) * unit
		if total > math.MaxInt64-span {
			return 0, fmt.Errorf("invalid duration %q: value overflows", s)
		}
		total += span
		rest = rest[j:]
	}

	return total, nil
}

func isUnitLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// DurationFromSeconds converts a fractional seconds count to a Duration with
// full floating-point precision.
func DurationFromSeconds(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

// FormatCompactDuration renders d in the canonical XhYmZs form, whole
// seconds only, omitting leading zero components: 0 -> "0s", 90s -> "1m30s",
// 3661s -> "1h1m1s". Sub-second precision is truncated.
func FormatCompactDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}

	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
