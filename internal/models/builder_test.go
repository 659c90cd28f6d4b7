package models

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/swift-compose/internal/msgerror"
)

var fixedClock = func() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	record, err := NewPaymentRecordBuilder().
		WithClock(fixedClock).
		WithOrderingParty("ANDRO AG", "CH970020620625170160K").
		WithBeneficiary("ACME CORP", "DE89370400440532013000").
		WithAmountFromString("1500.5", "USD").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", record.ValueDate, "value date defaults to the generation date")
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9-]{12}$`), record.Reference)
	assert.Equal(t, "", record.RemittanceInfo, "remittance defaults to empty, never null")
	assert.Equal(t, "USD", record.Currency)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(record.Amount))
}

func TestBuild_ValueDateDefaulting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "valid date kept", input: "2025-12-31", expected: "2025-12-31"},
		{name: "empty falls back to today", input: "", expected: "2026-03-15"},
		{name: "unparsable falls back to today", input: "31/12/2025", expected: "2026-03-15"},
		{name: "impossible date falls back to today", input: "2025-02-30", expected: "2026-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := NewPaymentRecordBuilder().
				WithClock(fixedClock).
				WithAmount(decimal.NewFromInt(100), "EUR").
				WithValueDate(tt.input).
				Build()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, record.ValueDate)
		})
	}
}

func TestBuild_KeepsSuppliedReference(t *testing.T) {
	record, err := NewPaymentRecordBuilder().
		WithAmount(decimal.NewFromInt(1), "USD").
		WithReference("REF001").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "REF001", record.Reference)
}

func TestBuild_InvalidAmountPoisonsBuilder(t *testing.T) {
	_, err := NewPaymentRecordBuilder().
		WithAmountFromString("abc", "USD").
		WithReference("REF001").
		WithRemittanceInfo("should not matter").
		Build()

	require.Error(t, err)
	var invalidAmount *msgerror.InvalidAmountError
	assert.True(t, errors.As(err, &invalidAmount))
	assert.Equal(t, "abc", invalidAmount.Value)
}

func TestBuild_GeneratedReferencesDiffer(t *testing.T) {
	build := func() PaymentRecord {
		record, err := NewPaymentRecordBuilder().
			WithAmount(decimal.NewFromInt(1), "USD").
			Build()
		require.NoError(t, err)
		return record
	}

	first := build()
	second := build()
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestNewReference(t *testing.T) {
	for i := 0; i < 20; i++ {
		ref := NewReference()
		assert.Len(t, ref, 12)
		assert.Equal(t, ref, regexp.MustCompile(`[a-z]`).ReplaceAllString(ref, ""), "reference must be uppercase")
	}
}
