package explain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

// Fixed renders v with exactly places fraction digits.
func Fixed(v float64, places int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Exponential renders v in scientific notation with digits fraction digits
// and an unpadded exponent, e.g. 1.2340e-5.
func Exponential(v float64, digits int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	s := strconv.FormatFloat(v, 'e', digits, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, exp := exp[:1], strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

// Plain renders v with the fewest digits that round-trip.
func Plain(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Percent renders a ratio as a percentage with one decimal.
func Percent(ratio float64) string {
	return Fixed(ratio*100, 1) + "%"
}
