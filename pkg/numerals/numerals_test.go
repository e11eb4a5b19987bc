package numerals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"0123456789", "₀₁₂₃₄₅₆₇₈₉"},
		{"ℤ_12", "ℤ_₁₂"},
		{"no digits", "no digits"},
		{"-5", "-₅"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Subscript(tt.in))
		})
	}
}

func TestSuperscript(t *testing.T) {
	assert.Equal(t, "⁰¹²³⁴⁵⁶⁷⁸⁹", Superscript("0123456789"))
	assert.Equal(t, "e^(²πi·³/⁵)", Superscript("e^(2πi·3/5)"))
	assert.Equal(t, "sᶻ", Superscript("sᶻ"))
}

func TestRoundTripLeavesNonDigitsAlone(t *testing.T) {
	in := "ℤ₅ élément ☆"
	assert.Equal(t, in, Subscript(in))
	assert.Equal(t, in, Superscript(in))
}
