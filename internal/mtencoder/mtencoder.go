// Package mtencoder renders payment records into SWIFT-style MT
// block-structured text for the supported message types (MT103, MT199,
// MT700, MT760, MT799).
package mtencoder

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"fjacquet/swift-compose/internal/amountutils"
	"fjacquet/swift-compose/internal/dateutils"
	"fjacquet/swift-compose/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// placeholderBIC substitutes for an absent sender BIC in envelope headers.
const placeholderBIC = "UNKNOWN"

// Encoder renders MT message text. The zero value is not usable; create
// instances with New. Encoding keeps no state between calls, so a single
// Encoder may be shared freely.
type Encoder struct {
	// Now supplies the generation instant used when the record's value
	// date is absent or unparsable. Defaults to time.Now.
	Now func() time.Time
}

// New creates an Encoder with the real clock.
func New() *Encoder {
	return &Encoder{Now: time.Now}
}

// Encode produces the full MT text for a payment record.
//
// Override precedence is deliberately asymmetric and mirrors the behavior
// this encoder replaces: for MT103 the caller's overrides are merged into
// the synthesized default tags (caller wins per tag, first-appearance order
// is kept); for every other type a non-empty override set fully replaces
// the type's default free-text tag. Tag content is not validated here.
//
// An unknown message type fails with UnsupportedMessageTypeError unless the
// caller supplies an explicit override set, which then forms the entire
// message body.
func (e *Encoder) Encode(record models.PaymentRecord, msgType string, sender models.SenderInfo, overrides []models.TagValue) (string, error) {
	tmpl, err := models.LookupTemplate(msgType)
	if err != nil {
		if len(overrides) == 0 {
			return "", err
		}
		log.WithField("message_type", msgType).
			Warn("Unknown message type resolved by caller-supplied tag overrides")
	}

	var body []models.TagValue
	switch {
	case msgType == models.MT103:
		body = mergeOverrides(e.mt103Defaults(record), overrides)
	case len(overrides) > 0:
		body = overrides
	default:
		body = []models.TagValue{{Tag: tmpl.DefaultTextTag, Value: normalizeNarrative(record.RemittanceInfo)}}
	}

	bic := sender.BIC
	if bic == "" {
		bic = placeholderBIC
	}
	numericType := strings.TrimPrefix(msgType, "MT")

	lines := make([]string, 0, len(body)+10)
	lines = append(lines,
		fmt.Sprintf("{1:F01%sXXXX0000000000}", bic),
		fmt.Sprintf("{2:O%s1200%sXXXX0000000000}", numericType, bic),
		"{4:",
		":20:"+record.Reference,
	)
	for _, tv := range body {
		lines = append(lines, tv.Tag+tv.Value)
	}
	lines = append(lines,
		":86:Sender Details",
		" /BANK/"+sender.BankName,
		" /ADDR/"+sender.BankAddress,
		" /ACCTNAME/"+sender.AccountName,
		" /ACCTIBAN/"+sender.AccountIBAN,
		"-}",
	)

	log.WithFields(logrus.Fields{
		"message_type": msgType,
		"reference":    record.Reference,
		"tag_count":    len(body),
	}).Debug("MT message encoded")

	return strings.Join(lines, "\n"), nil
}

// mt103Defaults synthesizes the MT103 tag set from the record.
func (e *Encoder) mt103Defaults(record models.PaymentRecord) []models.TagValue {
	valueDate, ok := dateutils.ParseValueDate(record.ValueDate)
	if !ok {
		valueDate = e.Now().UTC()
	}

	defaults := []models.TagValue{
		{Tag: ":23B:", Value: "CRED"},
		{Tag: ":32A:", Value: dateutils.ToSWIFTDate(valueDate) + record.Currency + amountutils.FormatAmount(record.Amount)},
		{Tag: ":50K:", Value: record.OrderingName + " /" + record.OrderingAccount},
		{Tag: ":59:", Value: record.BeneficiaryName + " /" + record.BeneficiaryAccount},
	}
	if record.RemittanceInfo != "" {
		defaults = append(defaults, models.TagValue{Tag: ":70:", Value: normalizeNarrative(record.RemittanceInfo)})
	}
	return append(defaults, models.TagValue{Tag: ":71A:", Value: "SHA"})
}

// mergeOverrides merges caller overrides into the default tag set. Defaults
// keep their position with the caller's value substituted on collision;
// overrides for new tags are appended in caller order.
func mergeOverrides(defaults, overrides []models.TagValue) []models.TagValue {
	replacement := make(map[string]string, len(overrides))
	for _, tv := range overrides {
		replacement[tv.Tag] = tv.Value
	}

	merged := make([]models.TagValue, 0, len(defaults)+len(overrides))
	seen := make(map[string]bool, len(defaults))
	for _, tv := range defaults {
		if v, ok := replacement[tv.Tag]; ok {
			tv.Value = v
		}
		merged = append(merged, tv)
		seen[tv.Tag] = true
	}
	for _, tv := range overrides {
		if !seen[tv.Tag] {
			merged = append(merged, tv)
			seen[tv.Tag] = true
		}
	}
	return merged
}

// normalizeNarrative flattens free-text narrative for embedding in a single
// MT tag line.
func normalizeNarrative(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
