// Package amountutils provides the shared decimal amount parsing and
// formatting used by both message encoders. Keeping a single formatting
// routine guarantees the MT and pain.001 representations of the same
// payment never disagree on amount text.
package amountutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fjacquet/swift-compose/internal/msgerror"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var currencyNoise = regexp.MustCompile(`[€$£¥₣₹₽₩฿CHF\s]`)

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles formats like "1,234.56", "1.234,56", "1'234.56" and
// plain "1234.56". An empty or unparsable string yields an
// *msgerror.InvalidAmountError.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		log.WithField("amount", amountStr).Debug("Amount failed to parse as decimal")
		return decimal.Zero, &msgerror.InvalidAmountError{Value: amountStr, Err: err}
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a form
// accepted by decimal.NewFromString. Handles "CHF 1'234.56", "€1.234,56",
// "$1,234.56" and similar patterns.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyNoise.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount renders an amount in the canonical wire form shared by both
// encoders: exactly two fractional digits, half-up rounding, a plain decimal
// point and no grouping separators.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
