package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.Equal(t, 32.0, CelsiusToFahrenheit(0))
	assert.Equal(t, 212.0, CelsiusToFahrenheit(100))
	assert.Equal(t, -40.0, CelsiusToFahrenheit(-40))
}

func TestConvertBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		v    float64
		unit string
	}{
		{0, 0, "B"},
		{1023, 1023, "B"},
		{1024, 1, "KB"},
		{1536, 1.5, "KB"},
		{5 << 30, 5, "GB"},
	}
	for _, tc := range tests {
		v, u := ConvertBytes(tc.in)
		assert.Equal(t, tc.v, v, "%d", tc.in)
		assert.Equal(t, tc.unit, u, "%d", tc.in)
	}
}

func TestNextPow2(t *testing.T) {
	assert.Equal(t, 1.0, NextPow2(-3))
	assert.Equal(t, 1.0, NextPow2(1))
	assert.Equal(t, 2.0, NextPow2(1.01))
	assert.Equal(t, 1024.0, NextPow2(1024))
	assert.Equal(t, 2048.0, NextPow2(1025))
}

func TestMinMaxInt(t *testing.T) {
	assert.Equal(t, 4, MaxInt(4, -1))
	assert.Equal(t, -1, MinInt(4, -1))
}
