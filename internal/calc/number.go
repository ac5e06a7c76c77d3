package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	exponentUpper = 1e21
	exponentLower = 1e-6
)

// FormatNumber renders v the way the display shows it: the shortest decimal
// that round-trips, switching to exponent form outside [1e-6, 1e21).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= exponentUpper || abs < exponentLower {
		formatted := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exponent, _ := strings.Cut(formatted, "e")
		sign := exponent[:1]
		digits := strings.TrimLeft(exponent[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseNumber reads a display string. Text that is not a complete number
// yields the value of its longest numeric prefix, and NaN when there is none.
func ParseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	for end := len(text); end > 0; end-- {
		v, err := strconv.ParseFloat(text[:end], 64)
		if err == nil {
			return v
		}
		// Out-of-range input still carries a usable ±Inf or 0.
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
	}
	return math.NaN()
}

func isFinite(text string) bool {
	v := ParseNumber(text)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
