// Package numfmt renders calculator results for a fixed-width display.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// ErrorToken replaces any result that is not a finite number.
const ErrorToken = "Ошибка"

const (
	// Magnitudes outside [sciMin, sciMax) are always shown in exponent form.
	sciMax = 1e12
	sciMin = 1e-9

	sciFractionDigits = 9
	significantDigits = 12

	// Exponents that make a precision rendering switch to exponent form.
	minFixedExponent = -6
)

// Format renders v the way the calculator display shows it.
//
// Non-finite values become ErrorToken. Very large and very small magnitudes use
// exponent notation with a trimmed mantissa ("1.5e+12", "2e-10"); everything
// else is rounded to twelve significant digits with trailing zeros removed.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorToken
	}

	abs := math.Abs(v)
	if abs >= sciMax || (abs != 0 && abs < sciMin) {
		mantissa, exp := exponential(v, sciFractionDigits)
		return trimFraction(mantissa) + exponentSuffix(exp)
	}

	return precision(v, significantDigits)
}

// IsError reports whether s is the display form of a failed computation.
func IsError(s string) bool {
	return s == ErrorToken
}

// precision rounds v to digits significant digits, falling back to exponent
// form when the rounded exponent is out of the fixed-point range.
func precision(v float64, digits int) string {
	mantissa, exp := exponential(v, digits-1)
	if exp < minFixedExponent || exp >= digits {
		return trimFraction(mantissa) + exponentSuffix(exp)
	}
	return trimFraction(strconv.FormatFloat(v, 'f', digits-1-exp, 64))
}

// exponential splits strconv's exponent rendering into mantissa and exponent.
func exponential(v float64, fractionDigits int) (string, int) {
	s := strconv.FormatFloat(v, 'e', fractionDigits, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s, 0
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s[:i], 0
	}
	return s[:i], exp
}

// exponentSuffix renders exp without zero padding: e+12, e-7.
func exponentSuffix(exp int) string {
	if exp < 0 {
		return "e-" + strconv.Itoa(-exp)
	}
	return "e+" + strconv.Itoa(exp)
}

// trimFraction drops trailing zeros after the decimal point, then a dangling
// point. "-0" collapses to "0".
func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
