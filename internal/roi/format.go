package roi

import (
	"math"
	"strconv"
	"strings"
)

const currencySymbol = "$"

// FormatCurrency renders v with two decimals and thousands separators, prefixed
// with the dollar sign. The sign follows the symbol: "$-1,234.50".
func FormatCurrency(v float64) string {
	return currencySymbol + groupFixed2(v)
}

// FormatPercent renders v with two decimals, thousands separators and a trailing
// percent sign.
func FormatPercent(v float64) string {
	return groupFixed2(v) + "%"
}

// groupFixed2 rounds the exact binary value to two decimals (round half to even on
// the decimal expansion) and groups the integer digits by three.
func groupFixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(sign) + len(intPart) + len(intPart)/3 + 1 + len(frac))
	b.WriteString(sign)
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
