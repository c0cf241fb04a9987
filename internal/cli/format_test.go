package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"150", "$150.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-3", "-$3.00"},
		{"0.005", "$0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatMoney_CustomCurrency(t *testing.T) {
	defer SetCurrency("$")

	SetCurrency("€")
	assert.Equal(t, "€42.00", FormatMoney(decimal.NewFromInt(42)))

	SetCurrency("")
	assert.Equal(t, "€", Currency(), "empty symbol keeps the current one")
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"45000", "45,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in), "groupDigits(%s)", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "75.00%", FormatPercent(decimal.NewFromInt(75)))
	assert.Equal(t, "33.33%", FormatPercent(decimal.RequireFromString("33.3333")))
	assert.Equal(t, "12.5%", FormatRate(decimal.RequireFromString("12.5")))
}
