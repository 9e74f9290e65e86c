// Package expr evaluates the restricted arithmetic expressions accepted by
// the campaign cost field. Only addition and subtraction of decimal
// literals are supported; anything else evaluates to zero.
package expr

import (
	"strconv"
	"strings"
)

// Evaluate computes the value of a "+"/"-" chain such as "439000 + 50000".
// Empty input yields 0. Any character outside [0-9.+-] (after stripping
// whitespace) rejects the whole expression as 0; arbitrary input must
// never reach a real parser. Evaluation is strictly left to right with an
// implicit leading "+", so "-5" works via the empty token before the
// first operator.
func Evaluate(expression string) float64 {
	if expression == "" {
		return 0
	}

	clean := stripWhitespace(expression)
	if clean == "" {
		return 0
	}
	for _, r := range clean {
		if !isExprRune(r) {
			return 0
		}
	}

	var total float64
	op := '+'
	for _, token := range splitKeepOps(clean) {
		if token == "" {
			continue
		}
		if token == "+" || token == "-" {
			op = rune(token[0])
			continue
		}
		val := leadingFloat(token)
		if op == '+' {
			total += val
		} else {
			total -= val
		}
	}
	return total
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isExprRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '+' || r == '-'
}

// splitKeepOps splits on "+" and "-" while keeping the operators as
// their own tokens, mirroring a split-with-capture-group.
func splitKeepOps(s string) []string {
	tokens := make([]string, 0, 8)
	start := 0
	for i, r := range s {
		if r == '+' || r == '-' {
			tokens = append(tokens, s[start:i], string(r))
			start = i + 1
		}
	}
	return append(tokens, s[start:])
}

// leadingFloat parses the longest valid decimal prefix of token and
// returns 0 when no prefix parses. A second "." ends the literal, so
// "1.2.3" contributes 1.2.
func leadingFloat(token string) float64 {
	end := 0
	seenDot := false
	for end < len(token) {
		c := token[end]
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
		if v, err := strconv.ParseFloat(token[:end], 64); err == nil {
			return v
		}
		end--
	}
	return 0
}
