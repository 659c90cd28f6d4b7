// Package formal renders the human-readable audit document wrapping a
// generated message body. The exact line set and ordering are reproduced
// bit-for-bit: downstream TXT and PDF exporters treat this output as the
// single source of truth for what the user sees and downloads.
package formal

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

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

// Renderer produces formal output documents.
type Renderer struct {
	// Now supplies the instant stamped into the header reference line.
	// Defaults to time.Now.
	Now func() time.Time
}

// NewRenderer creates a Renderer with the real clock.
func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

// Render wraps an already-encoded message body with the fixed header and
// footer blocks. Pure presentational concatenation: no parsing, no
// validation, the body is embedded verbatim.
func (r *Renderer) Render(messageType, messageBody string, sender models.SenderInfo, startTS, endTS, accountNumber string) string {
	lines := []string{
		"INSTANT TYPE AND TRANSMISSION: INSTANT",
		"",
		"MESSAGE HEADER",
		"Message Type: " + messageType,
		"Reference: " + dateutils.CompactTimestamp(r.Now()),
		"Sender BIC: " + sender.BIC,
		"Sender Bank: " + sender.BankName,
		"Sender Address: " + sender.BankAddress,
		"Account Name: " + sender.AccountName,
		"Account IBAN: " + sender.AccountIBAN,
		"Selected Account (from system): " + accountNumber,
		"",
		"MESSAGE TEXT",
		messageBody,
		"",
		"MESSAGE HAS BEEN TRANSMITTED SUCCESSFULLY",
		"CONFIRMED & RECEIVED",
		"",
		"Start Time: " + startTS,
		"End Time:   " + endTS,
	}

	log.WithField("message_type", messageType).Debug("Formal output rendered")

	return strings.Join(lines, "\n")
}
