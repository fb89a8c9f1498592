// Package particle parses the value notation used by particle field
// configuration files.
//
// Values are written as strings so a single YAML field can hold any of:
//   - Fixed value: "1.5"
//   - Range: "[0.4 1.4]" (sampled uniformly per particle)
//   - Keyframes: "0,1 0.5,0.3 1,1" (time,value pairs over a normalized cycle)
//   - Keyframes with interpolation: "0,0 EaseOut 1,1"
package particle

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Keyframe represents a single keyframe in an animation curve.
type Keyframe struct {
	Time  float64 // Normalized time (0-1)
	Value float64 // Value at this keyframe
}

// Range is an inclusive [Min, Max] sampling window.
type Range struct {
	Min float64
	Max float64
}

// Curve is a keyframe curve with its interpolation mode.
type Curve struct {
	Keyframes     []Keyframe
	Interpolation string
}

// interpolationKeywords lists the modes understood by EvaluateKeyframes.
var interpolationKeywords = []string{"Linear", "EaseIn", "EaseOut", "EaseInOut"}

// ParseValue parses a value string from particle configuration.
//
// Returns:
//   - min, max: Range values (equal for fixed values)
//   - keyframes: Parsed keyframe array (nil unless keyframe format)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", etc.)
//
// Unparseable input yields zero values; callers decide the fallback.
func ParseValue(s string) (min, max float64, keyframes []Keyframe, interpolation string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil, ""
	}

	// Range format: "[min max]" or "[value]"
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return 0, 0, nil, ""
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 2:
			lo, err1 := strconv.ParseFloat(parts[0], 64)
			hi, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil {
				return 0, 0, nil, ""
			}
			return lo, hi, nil, ""
		case 1:
			val, err := strconv.ParseFloat(parts[0], 64)
			if err == nil {
				return val, val, nil, ""
			}
		}
		return 0, 0, nil, ""
	}

	for _, keyword := range interpolationKeywords {
		if containsWord(s, keyword) {
			interpolation = keyword
			s = strings.TrimSpace(strings.ReplaceAll(s, keyword, ""))
			break
		}
	}

	// Keyframes: "t,v t,v" with an optional leading bare value treated as t=0
	if strings.Contains(s, ",") || interpolation != "" {
		parts := strings.Fields(s)
		keyframes = make([]Keyframe, 0, len(parts))
		for i, part := range parts {
			if !strings.Contains(part, ",") {
				if i == 0 {
					if val, err := strconv.ParseFloat(part, 64); err == nil {
						keyframes = append(keyframes, Keyframe{Time: 0, Value: val})
					}
				}
				continue
			}
			pair := strings.Split(part, ",")
			if len(pair) != 2 {
				continue
			}
			tm, err1 := strconv.ParseFloat(pair[0], 64)
			val, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 != nil || err2 != nil || !isFinite(tm) || !isFinite(val) {
				continue
			}
			keyframes = append(keyframes, Keyframe{Time: tm, Value: val})
		}
		if len(keyframes) > 0 {
			return 0, 0, keyframes, interpolation
		}
		return 0, 0, nil, ""
	}

	value, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return value, value, nil, ""
	}
	return 0, 0, nil, ""
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// containsWord reports whether keyword appears in s as a whole token.
func containsWord(s, keyword string) bool {
	for _, f := range strings.Fields(s) {
		if f == keyword {
			return true
		}
	}
	return false
}

// ParseRange parses a fixed value or "[min max]" string into a Range.
// Empty or unparseable input returns fallback. Inverted bounds are swapped.
func ParseRange(s string, fallback Range) Range {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	lo, hi, keyframes, _ := ParseValue(s)
	if keyframes != nil {
		return fallback
	}
	if lo == 0 && hi == 0 && !isZeroLiteral(s) {
		return fallback
	}
	if !isFinite(lo) || !isFinite(hi) {
		return fallback
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Min: lo, Max: hi}
}

// isZeroLiteral distinguishes an explicit "0" / "[0 0]" from a parse failure.
func isZeroLiteral(s string) bool {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	for _, f := range strings.Fields(s) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v != 0 {
			return false
		}
	}
	return s != ""
}

// ParseCurve parses a keyframe string. ok is false when s holds no keyframes.
func ParseCurve(s string) (Curve, bool) {
	_, _, keyframes, interp := ParseValue(s)
	if len(keyframes) == 0 {
		return Curve{}, false
	}
	return Curve{Keyframes: keyframes, Interpolation: interp}, true
}

// At evaluates the curve at normalized time t.
func (c Curve) At(t float64) float64 {
	return EvaluateKeyframes(c.Keyframes, t, c.Interpolation)
}

// Sample draws a value from the range using rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// EvaluateKeyframes calculates the interpolated value at time t (0-1)
// using the provided keyframes and interpolation mode.
//
// Parameters:
//   - keyframes: Array of keyframes (must be sorted by Time)
//   - t: Normalized time (0-1)
//   - interpolation: Interpolation mode ("Linear", "EaseIn", etc.)
//
// Returns the interpolated value at time t.
func EvaluateKeyframes(keyframes []Keyframe, t float64, interpolation string) float64 {
	if len(keyframes) == 0 {
		return 0
	}
	if len(keyframes) == 1 {
		return keyframes[0].Value
	}

	t = math.Max(0, math.Min(1, t))

	if t < keyframes[0].Time {
		return keyframes[0].Value
	}

	for i := 0; i < len(keyframes)-1; i++ {
		k0 := keyframes[i]
		k1 := keyframes[i+1]

		if t >= k0.Time && t <= k1.Time {
			duration := k1.Time - k0.Time
			if duration <= 0 {
				return k0.Value
			}
			ratio := (t - k0.Time) / duration

			switch interpolation {
			case "EaseIn":
				ratio = ratio * ratio
			case "EaseOut":
				ratio = 1 - (1-ratio)*(1-ratio)
			case "EaseInOut":
				ratio = ratio * ratio * (3 - 2*ratio)
			}
			return k0.Value + ratio*(k1.Value-k0.Value)
		}
	}

	// If t is beyond the last keyframe, return the last value
	return keyframes[len(keyframes)-1].Value
}

// RandomInRange returns a random float64 in the range [min, max] drawn from rng.
// A nil rng uses the package-level source.
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	if rng == nil {
		return min + rand.Float64()*(max-min)
	}
	return min + rng.Float64()*(max-min)
}
