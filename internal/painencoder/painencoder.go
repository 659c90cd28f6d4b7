// Package painencoder renders payment records into ISO 20022
// pain.001.001.03 customer credit transfer initiation XML. Only
// single-transaction documents are ever emitted: exactly one GrpHdr, one
// PmtInf and one CdtTrfTxInf, with CtrlSum always equal to the
// transaction's InstdAmt.
package painencoder

import (
	"encoding/xml"
	"fmt"
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

// Encoder renders pain.001 documents. Encoding keeps no state between
// calls, so a single Encoder may be shared freely.
type Encoder struct {
	// Now supplies the generation instant used for CreDtTm and PmtInfId.
	// Defaults to time.Now; inject a fixed clock for byte-identical output.
	Now func() time.Time
}

// New creates an Encoder with the real clock.
func New() *Encoder {
	return &Encoder{Now: time.Now}
}

// Build constructs the typed document tree for a payment record without
// serializing it. Callers that feed an external validator can walk the tree
// directly.
func (e *Encoder) Build(record models.PaymentRecord) *Document {
	now := e.Now()
	amount := amountutils.FormatAmount(record.Amount)

	tx := CreditTransferTransaction{
		PmtID: PaymentIdentification{EndToEndID: record.Reference},
		Amt: AmountBlock{
			InstdAmt: InstructedAmount{Ccy: record.Currency, Value: amount},
		},
		Cdtr:     Party{Nm: record.BeneficiaryName},
		CdtrAcct: AccountIdentification{ID: IBANIdentifier{IBAN: record.BeneficiaryAccount}},
		Dbtr:     Party{Nm: record.OrderingName},
		DbtrAcct: AccountIdentification{ID: IBANIdentifier{IBAN: record.OrderingAccount}},
	}
	if record.BeneficiaryBIC != "" {
		tx.CdtrAgt = &CreditorAgent{FinInstnID: FinancialInstitution{BIC: record.BeneficiaryBIC}}
	}
	if record.RemittanceInfo != "" {
		tx.RmtInf = &RemittanceInformation{Ustrd: record.RemittanceInfo}
	}

	return &Document{
		Namespace: Namespace,
		GrpHdr: GroupHeader{
			MsgID:   record.Reference,
			CreDtTm: dateutils.ISOInstant(now),
			NbOfTxs: "1",
			CtrlSum: amount,
		},
		PmtInf: PaymentInstruction{
			PmtInfID: "PMT-" + dateutils.CompactTimestamp(now),
			PmtMtd:   "TRF",
			NbOfTxs:  "1",
			CtrlSum:  amount,
			CdtTrfTx: tx,
		},
	}
}

// Encode produces the pretty-printed pain.001 XML text for a payment
// record, with a leading XML declaration and two-space indentation.
// Free-text fields are escaped per standard XML rules by the marshaler.
func (e *Encoder) Encode(record models.PaymentRecord) (string, error) {
	doc := e.Build(record)

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal pain.001 document: %w", err)
	}

	log.WithFields(logrus.Fields{
		"reference": record.Reference,
		"currency":  record.Currency,
	}).Debug("pain.001 document encoded")

	return xml.Header + string(data) + "\n", nil
}

// RequiredPaths lists the XPath locations every generated document must
// contain. External structural validators probe these before handing the
// document to a full XSD check.
func RequiredPaths() []string {
	return []string{
		"/CstmrCdtTrfInitn/GrpHdr/MsgId",
		"/CstmrCdtTrfInitn/GrpHdr/CreDtTm",
		"/CstmrCdtTrfInitn/GrpHdr/NbOfTxs",
		"/CstmrCdtTrfInitn/GrpHdr/CtrlSum",
		"/CstmrCdtTrfInitn/PmtInf/PmtInfId",
		"/CstmrCdtTrfInitn/PmtInf/PmtMtd",
		"/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/PmtId/EndToEndId",
		"/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/Amt/InstdAmt",
		"/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/Cdtr/Nm",
		"/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/CdtrAcct/Id/IBAN",
		"/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/Dbtr/Nm",
		"/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/DbtrAcct/Id/IBAN",
	}
}
