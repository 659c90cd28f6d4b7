// Package models provides the data structures shared by the message
// encoders: the canonical payment record, sender static data, MT message
// templates and ordered tag overrides.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentRecord is the canonical unit processed by both encoders.
// It is constructed fresh per generation request and immutable once built.
// Empty party fields are rendered as-is; correctness judgments belong to an
// external validator, not to the encoders.
type PaymentRecord struct {
	OrderingAccount    string          `json:"ordering_account" yaml:"ordering_account"`
	OrderingName       string          `json:"ordering_name" yaml:"ordering_name"`
	BeneficiaryAccount string          `json:"beneficiary_account" yaml:"beneficiary_account"`
	BeneficiaryName    string          `json:"beneficiary_name" yaml:"beneficiary_name"`
	BeneficiaryBIC     string          `json:"beneficiary_bic,omitempty" yaml:"beneficiary_bic,omitempty"`
	Amount             decimal.Decimal `json:"amount" yaml:"amount"`
	Currency           string          `json:"currency" yaml:"currency"`
	ValueDate          string          `json:"value_date" yaml:"value_date"`
	RemittanceInfo     string          `json:"remittance_info" yaml:"remittance_info"`
	Reference          string          `json:"reference" yaml:"reference"`
}

// TagValue is an ordered MT tag/value pair. Overrides are carried as an
// explicit ordered slice, never a map: tag lines are emitted in insertion
// order and callers relying on a regulatory order supply overrides in that
// order.
type TagValue struct {
	Tag   string
	Value string
}

// ParseTagLines parses free text of the form ":59:ACME CORP /DE..." (one
// tag line per input line) into ordered tag/value pairs. Lines that do not
// start with a tag marker are skipped.
func ParseTagLines(raw string) []TagValue {
	var pairs []TagValue
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, ":") {
			continue
		}
		rest := line[1:]
		idx := strings.Index(rest, ":")
		if idx < 0 {
			continue
		}
		pairs = append(pairs, TagValue{
			Tag:   ":" + rest[:idx] + ":",
			Value: strings.TrimSpace(rest[idx+1:]),
		})
	}
	return pairs
}
