package script

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	digitsOnly     = regexp.MustCompile(`^[0-9]+$`)
)

// parseNumber coerces s the way a script runtime's Number() does: blank
// means zero, surrounding whitespace is ignored, and 0x/0o/0b integers and
// Infinity are accepted.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if base := radixPrefix(s); base != 0 {
		digits := s[2:]
		if digits == "" || digits[0] == '+' || digits[0] == '-' {
			return 0, false
		}
		n, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	}

	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow saturates to ±Inf, same as the runtime.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func radixPrefix(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}
	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func isNumber(s string) bool {
	_, ok := parseNumber(s)
	return ok
}

// isDigits reports whether s is a plain unsigned integer literal.
func isDigits(s string) bool {
	return digitsOnly.MatchString(s)
}
