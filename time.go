package jwtdecode

import (
	"encoding/json"
	"math"
	"time"
)

// maxDurationSeconds is the largest seconds value representable as a
// time.Duration.
const maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)

// numericDate interprets a raw claim value as an RFC 7519 NumericDate
// (seconds since epoch). NaN and non-numeric values are treated as absent;
// infinities pass through for the remaining-time path to clamp.
func numericDate(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func dateFromSeconds(sec float64) (time.Time, bool) {
	if math.IsInf(sec, 0) {
		return time.Time{}, false
	}
	s := int64(sec)
	ns := int64((sec - float64(s)) * float64(time.Second))
	return time.Unix(s, ns), true
}

// durationFromSeconds converts remaining seconds to a Duration, clamping
// negative values to zero and values beyond the representable range
// (including +Inf) to the maximum Duration.
func durationFromSeconds(sec float64) time.Duration {
	if sec <= 0 {
		return 0
	}
	if sec >= maxDurationSeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(sec * float64(time.Second))
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}
