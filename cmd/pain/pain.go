// Package pain handles pain.001 composition commands
package pain

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/swift-compose/cmd/common"
	"fjacquet/swift-compose/cmd/root"
	"fjacquet/swift-compose/internal/models"
	"fjacquet/swift-compose/internal/painencoder"
	"fjacquet/swift-compose/internal/xmlutils"
)

var (
	orderingName       string
	orderingAccount    string
	beneficiaryName    string
	beneficiaryAccount string
	beneficiaryBIC     string
	amount             string
	currency           string
	valueDate          string
	remittance         string
	reference          string
)

// Cmd represents the pain command
var Cmd = &cobra.Command{
	Use:   "pain",
	Short: "Compose an ISO 20022 pain.001 document",
	Long: `Compose a pain.001.001.03 customer credit transfer initiation XML
document for a single transaction.`,
	Run: painFunc,
}

func init() {
	Cmd.Flags().StringVar(&orderingName, "ordering-name", "", "Ordering (debtor) name")
	Cmd.Flags().StringVar(&orderingAccount, "ordering-account", "", "Ordering account (IBAN)")
	Cmd.Flags().StringVar(&beneficiaryName, "beneficiary-name", "", "Beneficiary (creditor) name")
	Cmd.Flags().StringVar(&beneficiaryAccount, "beneficiary-account", "", "Beneficiary account (IBAN)")
	Cmd.Flags().StringVar(&beneficiaryBIC, "beneficiary-bic", "", "Beneficiary bank BIC (emits CdtrAgt when set)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount, e.g. 1234.56")
	Cmd.Flags().StringVarP(&currency, "currency", "c", "", "3-letter currency code")
	Cmd.Flags().StringVar(&valueDate, "value-date", "", "Value date (YYYY-MM-DD), defaults to today")
	Cmd.Flags().StringVar(&remittance, "remittance", "", "Remittance / narrative text")
	Cmd.Flags().StringVar(&reference, "reference", "", "End-to-end reference (generated when omitted)")
	_ = Cmd.MarkFlagRequired("amount")
}

func painFunc(cmd *cobra.Command, args []string) {
	start := time.Now()
	root.Log.Info("Composing pain.001 document")

	ccy := currency
	if ccy == "" && root.Cfg != nil {
		ccy = root.Cfg.Message.DefaultCurrency
	}

	record, err := models.NewPaymentRecordBuilder().
		WithOrderingParty(orderingName, orderingAccount).
		WithBeneficiary(beneficiaryName, beneficiaryAccount).
		WithBeneficiaryBIC(beneficiaryBIC).
		WithAmountFromString(amount, ccy).
		WithValueDate(valueDate).
		WithRemittanceInfo(remittance).
		WithReference(reference).
		Build()
	if err != nil {
		root.Log.Fatalf("Error building payment record: %v", err)
	}

	body, err := painencoder.New().Encode(record)
	if err != nil {
		root.Log.Fatalf("Error encoding pain.001 document: %v", err)
	}

	if root.SharedFlags.Validate {
		root.Log.Info("Checking pain.001 structure...")
		if ok, issues := xmlutils.CheckStructure(body, painencoder.RequiredPaths()); !ok {
			root.Log.Fatalf("Generated document failed structural checks: %s", strings.Join(issues, "; "))
		}
		root.Log.Info("Structural checks passed.")
	}

	common.Emit(body, common.EmitOptions{
		MessageType: "ISO20022",
		Sender:      root.Sender(),
		Account:     root.SharedFlags.Account,
		Formal:      root.SharedFlags.Formal,
		OutputFile:  root.SharedFlags.Output,
		Start:       start,
		End:         time.Now(),
	}, root.Log)
}
