package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fjacquet/swift-compose/internal/amountutils"
	"fjacquet/swift-compose/internal/dateutils"
)

// PaymentRecordBuilder provides a fluent API for constructing payment
// records from raw field sets. Party fields accept arbitrary strings
// without validation; only the amount can fail.
type PaymentRecordBuilder struct {
	record PaymentRecord
	now    func() time.Time
	err    error
}

// NewPaymentRecordBuilder creates a new PaymentRecordBuilder with default values
func NewPaymentRecordBuilder() *PaymentRecordBuilder {
	return &PaymentRecordBuilder{
		record: PaymentRecord{
			Currency: "USD",
			Amount:   decimal.Zero,
		},
		now: time.Now,
	}
}

// WithClock overrides the time source used for value-date defaulting.
// Injecting a fixed clock makes record construction fully deterministic.
func (b *PaymentRecordBuilder) WithClock(now func() time.Time) *PaymentRecordBuilder {
	if now != nil {
		b.now = now
	}
	return b
}

// WithOrderingParty sets the debtor-side name and account
func (b *PaymentRecordBuilder) WithOrderingParty(name, account string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	b.record.OrderingName = name
	b.record.OrderingAccount = account
	return b
}

// WithBeneficiary sets the creditor-side name and account
func (b *PaymentRecordBuilder) WithBeneficiary(name, account string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	b.record.BeneficiaryName = name
	b.record.BeneficiaryAccount = account
	return b
}

// WithBeneficiaryBIC sets the optional creditor agent BIC
func (b *PaymentRecordBuilder) WithBeneficiaryBIC(bic string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	b.record.BeneficiaryBIC = bic
	return b
}

// WithAmount sets the amount and currency from an exact decimal
func (b *PaymentRecordBuilder) WithAmount(amount decimal.Decimal, currency string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	b.record.Amount = amount
	if currency != "" {
		b.record.Currency = currency
	}
	return b
}

// WithAmountFromString sets the amount from its string representation.
// An unparsable amount poisons the builder with an InvalidAmountError.
func (b *PaymentRecordBuilder) WithAmountFromString(amountStr, currency string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	amount, err := amountutils.ParseAmount(amountStr)
	if err != nil {
		b.err = err
		return b
	}
	b.record.Amount = amount
	if currency != "" {
		b.record.Currency = currency
	}
	return b
}

// WithValueDate sets the requested value date (YYYY-MM-DD)
func (b *PaymentRecordBuilder) WithValueDate(dateStr string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	b.record.ValueDate = dateStr
	return b
}

// WithRemittanceInfo sets the free-text narrative
func (b *PaymentRecordBuilder) WithRemittanceInfo(info string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	b.record.RemittanceInfo = info
	return b
}

// WithReference sets the end-to-end reference
func (b *PaymentRecordBuilder) WithReference(reference string) *PaymentRecordBuilder {
	if b.err != nil {
		return b
	}
	b.record.Reference = reference
	return b
}

// Build applies the defaulting rules and returns the final PaymentRecord:
//
//  1. value date: supplied value if it parses as YYYY-MM-DD, else today (UTC)
//  2. reference: supplied value if non-empty, else a fresh 12-character
//     uppercase random token
//  3. remittance info: supplied value or empty string
func (b *PaymentRecordBuilder) Build() (PaymentRecord, error) {
	if b.err != nil {
		return PaymentRecord{}, b.err
	}

	record := b.record

	if parsed, ok := dateutils.ParseValueDate(record.ValueDate); ok {
		record.ValueDate = dateutils.ToISODate(parsed)
	} else {
		record.ValueDate = dateutils.ToISODate(b.now().UTC())
	}

	if record.Reference == "" {
		record.Reference = NewReference()
	}

	return record, nil
}

// NewReference generates a 12-character uppercase end-to-end reference from
// a random unique token. Uniqueness is collision-resistant randomness only,
// not a process-wide guarantee.
func NewReference() string {
	return strings.ToUpper(uuid.New().String())[:12]
}
