package amountutils

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/swift-compose/internal/msgerror"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{
			name:     "pads to two fractional digits",
			amount:   "1234.5",
			expected: "1234.50",
		},
		{
			name:     "rounds half-up at the half boundary",
			amount:   "1234.005",
			expected: "1234.01",
		},
		{
			name:     "rounds up above the half boundary",
			amount:   "1234.565",
			expected: "1234.57",
		},
		{
			name:     "integer amount",
			amount:   "1000000",
			expected: "1000000.00",
		},
		{
			name:     "truncates extra precision with rounding",
			amount:   "0.994",
			expected: "0.99",
		},
		{
			name:     "zero",
			amount:   "0",
			expected: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatAmount(amount))
		})
	}
}

func TestFormatAmount_CanonicalShape(t *testing.T) {
	// Every formatted amount has exactly one decimal point, exactly two
	// digits after it and no grouping separators.
	samples := []string{"0.001", "1.5", "99999999.999", "1234567.89", "42"}

	for _, s := range samples {
		amount, err := decimal.NewFromString(s)
		require.NoError(t, err)

		formatted := FormatAmount(amount)
		parts := strings.Split(formatted, ".")
		require.Len(t, parts, 2, "amount %s formatted as %s", s, formatted)
		assert.Len(t, parts[1], 2)
		assert.NotContains(t, formatted, ",")
		assert.NotContains(t, formatted, "'")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{
			name:     "plain decimal",
			input:    "1234.56",
			expected: "1234.56",
		},
		{
			name:     "US thousands separator",
			input:    "1,234.56",
			expected: "1234.56",
		},
		{
			name:     "European format",
			input:    "1.234,56",
			expected: "1234.56",
		},
		{
			name:     "Swiss apostrophe separator",
			input:    "1'234.56",
			expected: "1234.56",
		},
		{
			name:     "currency prefix",
			input:    "CHF 1234.56",
			expected: "1234.56",
		},
		{
			name:     "comma decimal separator",
			input:    "1234,56",
			expected: "1234.56",
		},
		{
			name:        "not a number",
			input:       "abc",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "multiple decimal points",
			input:       "12.34.56",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)

			if tt.expectError {
				require.Error(t, err)
				var invalidAmount *msgerror.InvalidAmountError
				assert.True(t, errors.As(err, &invalidAmount))
				assert.Equal(t, tt.input, invalidAmount.Value)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.StringFixed(2))
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("$1,234.56"))
	assert.Equal(t, "1234.56", StandardizeAmount("€1.234,56"))
	assert.Equal(t, "1234", StandardizeAmount("1,234"))
	assert.Equal(t, "1234.56", StandardizeAmount("1'234.56"))
}

func BenchmarkFormatAmount(b *testing.B) {
	amount, _ := decimal.NewFromString("123456.789")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FormatAmount(amount)
	}
}
