package runtime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  any
	}{
		{"Empty", "", nil},
		{"Blank", "   ", nil},
		{"Yes", "yes", true},
		{"Y", "y", true},
		{"True", "true", true},
		{"No", "no", false},
		{"N", "n", false},
		{"False", "false", false},
		{"Case Sensitive Yes", "Yes", "Yes"},
		{"Padded Yes", "yes ", "yes "},
		{"Integer", "42", float64(42)},
		{"Negative", "-3", float64(-3)},
		{"Decimal", "3.5", 3.5},
		{"Leading Zeros", "007", "007"},
		{"Trailing Zero", "7.0", "7.0"},
		{"Padded Number", " 7", " 7"},
		{"Exponent Shorthand", "1e3", "1e3"},
		{"Large Exponent", "1e+21", 1e21},
		{"Small Exponent", "1e-7", 1e-7},
		{"Negative Zero", "-0", "-0"},
		{"Infinity", "Infinity", math.Inf(1)},
		{"Lowercase Inf", "inf", "inf"},
		{"Text", "blue", "blue"},
		{"Text Untrimmed", " blue ", " blue "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.reply))
		})
	}
}

func TestCoerce_NaN(t *testing.T) {
	got, ok := Coerce("NaN").(float64)
	assert.True(t, ok)
	assert.True(t, math.IsNaN(got))
}
