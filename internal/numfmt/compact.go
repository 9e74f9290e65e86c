// Package numfmt implements the compact "123k" display convention used
// across the report: large values collapse to thousands, and the parser
// is the (deliberately lossy) inverse.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds half toward positive infinity, the convention every
// derived field in the report uses. math.Round would send -1.5 to -2
// instead of -1.
func Round(n float64) float64 {
	return math.Floor(n + 0.5)
}

// Format renders n in compact notation. Zero and anything at or beyond a
// thousand take the "k" branch: divide by 1000, round to a whole number,
// suffix "k". The result never carries a decimal point in that branch,
// so 120500 becomes "121k" (rounded, not truncated) and 0 becomes "0k".
// Smaller values render as plain decimal text.
func Format(n float64) string {
	if n == 0 || math.Abs(n) >= 1000 {
		return strconv.FormatFloat(Round(n/1000), 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Normalize re-formats a hand-typed metric value. Comma separators are
// dropped before parsing; input that does not start with a number is
// returned untouched rather than erased, so a stray "abc" edit survives
// round trips instead of raising.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	n, ok := prefixFloat(strings.ReplaceAll(s, ",", ""))
	if !ok {
		return s
	}
	return Format(n)
}

// Parse is the inverse of Format, tolerantly: it lowercases, trims,
// strips comma separators, reads the first contiguous run of digits and
// decimal points, then applies the "k" (x1000) or "m" (x1e6) multiplier
// if the suffix letter appears anywhere in the value. "k" is checked
// first; only one multiplier ever applies. No numeric run means 0.
func Parse(s string) float64 {
	if s == "" {
		return 0
	}
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), ",", "")

	start := -1
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		if (c >= '0' && c <= '9') || c == '.' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(normalized) {
		c := normalized[end]
		if (c >= '0' && c <= '9') || c == '.' {
			end++
			continue
		}
		break
	}

	num := floatRun(normalized[start:end])
	if strings.Contains(normalized, "k") {
		num *= 1000
	} else if strings.Contains(normalized, "m") {
		num *= 1000000
	}
	return num
}

// Float coerces raw field text to a number by parsing its leading
// numeric prefix. Text with no numeric prefix coerces to 0; coercion is
// the only numeric validation the tool performs.
func Float(s string) float64 {
	v, ok := prefixFloat(s)
	if !ok {
		return 0
	}
	return v
}

// prefixFloat parses the longest numeric prefix of s (optional sign,
// digits, one decimal point). ok is false when no prefix parses.
func prefixFloat(s string) (float64, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	seenDot := false
	digits := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = true
			i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		break
	}
	if !digits {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[start:i], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// floatRun parses a run already known to contain only digits and dots,
// degrading to 0 when even its prefix is unparseable (e.g. "..5").
func floatRun(run string) float64 {
	end := 0
	seenDot := false
	for end < len(run) {
		c := run[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	for end > 0 {
		if v, err := strconv.ParseFloat(run[:end], 64); err == nil {
			return v
		}
		end--
	}
	return 0
}
