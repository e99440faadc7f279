package grading

import (
	"math"
	"strconv"
	"strings"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1100

// toFixed renders x with digits fractional digits, rounding half away from zero
// on the exact binary value. strconv rounds ties to even, which would print
// 0.25 as "0.2" instead of "0.3".
func toFixed(x float64, digits int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	exact := strconv.FormatFloat(x, 'f', exactDigits, 64)
	point := strings.IndexByte(exact, '.')
	kept := []byte(exact[:point] + exact[point+1:point+1+digits])
	if exact[point+1+digits] >= '5' {
		kept = incrementDecimal(kept)
	}

	intLen := len(kept) - digits
	out := string(kept[:intLen])
	if digits > 0 {
		out += "." + string(kept[intLen:])
	}
	return sign + out
}

func incrementDecimal(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++
			return d
		}
		d[i] = '0'
	}
	return append([]byte{'1'}, d...)
}

func formatPercent(v float64) string {
	return toFixed(v, 1) + "%"
}

func formatMPH(v float64) string {
	return toFixed(v, 1) + " mph"
}

// formatAverage renders a batting average the scoreboard way, e.g. ".275".
func formatAverage(v float64) string {
	thousandths := toFixed(v*1000, 0)
	if n := 3 - len(thousandths); n > 0 {
		thousandths = strings.Repeat("0", n) + thousandths
	}
	return "." + thousandths
}
