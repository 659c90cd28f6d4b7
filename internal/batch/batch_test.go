package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/swift-compose/internal/models"
)

const sampleCSV = `reference,message_type,ordering_name,ordering_account,beneficiary_name,beneficiary_account,beneficiary_bic,amount,currency,value_date,remittance_info
REF001,MT103,ANDRO AG,CH970020620625170160K,ACME CORP,DE89370400440532013000,,1500.5,USD,2026-03-15,INVOICE 42
REF002,PAIN001,ANDRO AG,CH970020620625170160K,ACME CORP,DE89370400440532013000,COBADEFFXXX,99.9,EUR,2026-03-16,
REF003,MT103,ANDRO AG,CH970020620625170160K,ACME CORP,DE89370400440532013000,,not-a-number,USD,,
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payments.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	outputDir := t.TempDir()
	gen := NewGenerator(models.DefaultSenderInfo(), outputDir)

	count, err := gen.Run(writeInput(t, sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, count, "the unparsable-amount row is skipped")

	mtText, err := os.ReadFile(filepath.Join(outputDir, "REF001.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(mtText), ":20:REF001")
	assert.Contains(t, string(mtText), ":32A:260315USD1500.50")

	xmlText, err := os.ReadFile(filepath.Join(outputDir, "REF002.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(xmlText), "<EndToEndId>REF002</EndToEndId>")
	assert.Contains(t, string(xmlText), `<InstdAmt Ccy="EUR">99.90</InstdAmt>`)

	_, err = os.Stat(filepath.Join(outputDir, "REF003.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_CreatesOutputDirectory(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "nested", "out")
	gen := NewGenerator(models.DefaultSenderInfo(), outputDir)

	count, err := gen.Run(writeInput(t, sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.FileExists(t, filepath.Join(outputDir, "REF001.txt"))
}

func TestRun_Errors(t *testing.T) {
	gen := NewGenerator(models.DefaultSenderInfo(), t.TempDir())

	t.Run("missing input file", func(t *testing.T) {
		_, err := gen.Run(filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
	})

	t.Run("malformed CSV", func(t *testing.T) {
		_, err := gen.Run(writeInput(t, "reference,amount\nREF001"))
		assert.Error(t, err)
	})
}
