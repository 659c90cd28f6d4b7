package painencoder

import "encoding/xml"

// Namespace is the pain.001.001.03 XML namespace declared on the root element.
const Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"

// Document is the typed, schema-shaped tree for a single-transaction
// pain.001 customer credit transfer initiation. Field order in these
// structs is the serialization order, so structurally required elements
// cannot be omitted or reordered by a calling mistake.
type Document struct {
	XMLName   xml.Name           `xml:"CstmrCdtTrfInitn"`
	Namespace string             `xml:"xmlns,attr"`
	GrpHdr    GroupHeader        `xml:"GrpHdr"`
	PmtInf    PaymentInstruction `xml:"PmtInf"`
}

// GroupHeader carries the message-level identification and control sum.
type GroupHeader struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
	NbOfTxs string `xml:"NbOfTxs"`
	CtrlSum string `xml:"CtrlSum"`
}

// PaymentInstruction wraps the single credit transfer transaction.
type PaymentInstruction struct {
	PmtInfID string                    `xml:"PmtInfId"`
	PmtMtd   string                    `xml:"PmtMtd"`
	NbOfTxs  string                    `xml:"NbOfTxs"`
	CtrlSum  string                    `xml:"CtrlSum"`
	CdtTrfTx CreditTransferTransaction `xml:"CdtTrfTxInf"`
}

// CreditTransferTransaction holds the parties, amount and remittance of the
// transfer. CdtrAgt and RmtInf are emitted only when set.
type CreditTransferTransaction struct {
	PmtID    PaymentIdentification  `xml:"PmtId"`
	Amt      AmountBlock            `xml:"Amt"`
	CdtrAgt  *CreditorAgent         `xml:"CdtrAgt,omitempty"`
	Cdtr     Party                  `xml:"Cdtr"`
	CdtrAcct AccountIdentification  `xml:"CdtrAcct"`
	Dbtr     Party                  `xml:"Dbtr"`
	DbtrAcct AccountIdentification  `xml:"DbtrAcct"`
	RmtInf   *RemittanceInformation `xml:"RmtInf,omitempty"`
}

// PaymentIdentification carries the end-to-end reference.
type PaymentIdentification struct {
	EndToEndID string `xml:"EndToEndId"`
}

// AmountBlock wraps the instructed amount.
type AmountBlock struct {
	InstdAmt InstructedAmount `xml:"InstdAmt"`
}

// InstructedAmount is the formatted amount with its currency attribute.
type InstructedAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

// CreditorAgent identifies the beneficiary bank by BIC.
type CreditorAgent struct {
	FinInstnID FinancialInstitution `xml:"FinInstnId"`
}

// FinancialInstitution carries a financial institution BIC.
type FinancialInstitution struct {
	BIC string `xml:"BIC"`
}

// Party names a debtor or creditor.
type Party struct {
	Nm string `xml:"Nm"`
}

// AccountIdentification identifies an account by IBAN.
type AccountIdentification struct {
	ID IBANIdentifier `xml:"Id"`
}

// IBANIdentifier wraps the IBAN element.
type IBANIdentifier struct {
	IBAN string `xml:"IBAN"`
}

// RemittanceInformation carries the unstructured narrative.
type RemittanceInformation struct {
	Ustrd string `xml:"Ustrd"`
}
