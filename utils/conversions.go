package utils

import (
	"math"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// CelsiusToFahrenheit converts a temperature.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// ConvertBytes scales b to the largest unit that keeps it at or above 1.
func ConvertBytes(b uint64) (float64, string) {
	v := float64(b)
	i := 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}
	return v, byteUnits[i]
}

// NextPow2 returns the smallest power of two that is >= v, and 1 for v <= 1.
func NextPow2(v float64) float64 {
	if v <= 1 {
		return 1
	}
	return math.Pow(2, math.Ceil(math.Log2(v)))
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
