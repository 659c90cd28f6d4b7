// Package batch generates message files from a CSV of payment rows, one
// output file per row. Each row still produces a single-transaction
// message; the batch is file fan-out, never message batching.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/swift-compose/internal/fileutils"
	"fjacquet/swift-compose/internal/models"
	"fjacquet/swift-compose/internal/mtencoder"
	"fjacquet/swift-compose/internal/painencoder"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// PaymentRow is one CSV line of payment input.
type PaymentRow struct {
	Reference          string `csv:"reference"`
	MessageType        string `csv:"message_type"`
	OrderingName       string `csv:"ordering_name"`
	OrderingAccount    string `csv:"ordering_account"`
	BeneficiaryName    string `csv:"beneficiary_name"`
	BeneficiaryAccount string `csv:"beneficiary_account"`
	BeneficiaryBIC     string `csv:"beneficiary_bic"`
	Amount             string `csv:"amount"`
	Currency           string `csv:"currency"`
	ValueDate          string `csv:"value_date"`
	RemittanceInfo     string `csv:"remittance_info"`
}

// Generator turns payment rows into message files.
type Generator struct {
	MT        *mtencoder.Encoder
	Pain      *painencoder.Encoder
	Sender    models.SenderInfo
	OutputDir string
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(sender models.SenderInfo, outputDir string) *Generator {
	return &Generator{
		MT:        mtencoder.New(),
		Pain:      painencoder.New(),
		Sender:    sender,
		OutputDir: outputDir,
	}
}

// Run reads payment rows from a CSV file and writes one message file per
// row. Rows that fail to build or encode are logged and skipped; the count
// of generated files is returned.
func (g *Generator) Run(inputFile string) (int, error) {
	f, err := os.Open(inputFile)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close input file")
		}
	}()

	var rows []*PaymentRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse CSV file '%s': %w", inputFile, err)
	}

	generated := 0
	for i, row := range rows {
		if err := g.generateRow(row); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"row":       i + 1,
				"reference": row.Reference,
			}).Warn("Skipping payment row")
			continue
		}
		generated++
	}

	log.WithFields(logrus.Fields{
		"input_file": inputFile,
		"count":      generated,
	}).Info("Batch generation finished")

	return generated, nil
}

func (g *Generator) generateRow(row *PaymentRow) error {
	record, err := models.NewPaymentRecordBuilder().
		WithOrderingParty(row.OrderingName, row.OrderingAccount).
		WithBeneficiary(row.BeneficiaryName, row.BeneficiaryAccount).
		WithBeneficiaryBIC(row.BeneficiaryBIC).
		WithAmountFromString(row.Amount, row.Currency).
		WithValueDate(row.ValueDate).
		WithRemittanceInfo(row.RemittanceInfo).
		WithReference(row.Reference).
		Build()
	if err != nil {
		return err
	}

	var text, ext string
	if strings.EqualFold(row.MessageType, "PAIN001") {
		text, err = g.Pain.Encode(record)
		ext = ".xml"
	} else {
		text, err = g.MT.Encode(record, strings.ToUpper(row.MessageType), g.Sender, nil)
		ext = ".txt"
	}
	if err != nil {
		return err
	}

	outputFile := filepath.Join(g.OutputDir, record.Reference+ext)
	return fileutils.WriteTextFile(outputFile, text)
}
