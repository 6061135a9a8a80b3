package pylit

import (
	"math"
	"strconv"
)

// floatExponent extracts the unbiased base-2 exponent from an IEEE-754
// bit pattern: the x such that the value is 1.__ * 2**x for normal
// numbers. expBits/fracBits are the field widths (11/52 for float64,
// 8/23 for float32).
func floatExponent(bits uint64, expBits, fracBits uint) int {
	raw := int((bits >> fracBits) & (1<<expBits - 1))
	return raw + 1 - 1<<(expBits-1)
}

// useScientific reports whether exponential notation reads better: the
// magnitude of the binary exponent exceeds the mantissa's bit width, so
// a fixed rendering would be mostly padding zeros.
func useScientific(bits uint64, expBits, fracBits uint) bool {
	e := floatExponent(bits, expBits, fracBits)
	if e < 0 {
		e = -e
	}
	return e > int(fracBits)
}

// FormatFloat64 renders f for human reading: fixed notation while the
// binary exponent fits in the mantissa, exponential beyond that. A
// result that would otherwise look like an integer gains a trailing '.'
// so it re-reads as a float.
func FormatFloat64(f float64) string {
	return formatFloat(math.Float64bits(f), 11, 52, func(verb byte) string {
		return strconv.FormatFloat(f, verb, -1, 64)
	})
}

// FormatFloat32 is FormatFloat64 for the 32-bit width.
func FormatFloat32(f float32) string {
	return formatFloat(uint64(math.Float32bits(f)), 8, 23, func(verb byte) string {
		return strconv.FormatFloat(float64(f), verb, -1, 32)
	})
}

func formatFloat(bits uint64, expBits, fracBits uint, format func(verb byte) string) string {
	var s string
	if useScientific(bits, expBits, fracBits) {
		s = format('e')
	} else {
		s = format('f')
	}
	if allDigits(s) {
		s += "."
	}
	return s
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
