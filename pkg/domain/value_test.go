package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42"},
		{-7, "-7"},
		{0.5, "0.5"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1e+21"},
		{1.5e22, "1.5e+22"},
		{123456789012345680000, "123456789012345680000"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"Same String", "a", "a", true},
		{"Int And Float", 1, 1.0, true},
		{"Uint And Int", uint8(3), int64(3), true},
		{"String And Number", "1", 1, false},
		{"Bool And String", true, "true", false},
		{"Both Nil", nil, nil, true},
		{"Nil And Value", nil, "", false},
		{"Uncomparable", []any{1}, []any{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "3", FormatValue(3))
	assert.Equal(t, "a,2", FormatValue([]any{"a", 2}))
	assert.Equal(t, "red, 2, false", JoinValues([]any{"red", 2, false}))
}

func TestContains(t *testing.T) {
	opts := []any{"a", float64(2)}
	assert.True(t, Contains(opts, 2))
	assert.True(t, Contains(opts, "a"))
	assert.False(t, Contains(opts, "2"))
	assert.False(t, Contains(nil, "a"))
}
