// Package batch handles bulk generation from CSV payment files
package batch

import (
	"github.com/spf13/cobra"

	"fjacquet/swift-compose/cmd/root"
	batchgen "fjacquet/swift-compose/internal/batch"
	"fjacquet/swift-compose/internal/validation"
)

var (
	inputFile string
	outputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate message files from a CSV of payments",
	Long: `Read payment rows from a CSV file and write one message file per row.
Rows with message_type PAIN001 produce pain.001 XML documents; every other
row produces an MT text message of that type.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Directory for generated message files")
	_ = Cmd.MarkFlagRequired("input")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Batch input file: %s", inputFile)

	if err := validation.IsValidInputPath(inputFile); err != nil {
		root.Log.Fatalf("Invalid input file: %v", err)
	}

	dir := outputDir
	if dir == "" && root.Cfg != nil {
		dir = root.Cfg.Output.Directory
	}
	if dir == "" {
		dir = "."
	}

	generator := batchgen.NewGenerator(root.Sender(), dir)
	count, err := generator.Run(inputFile)
	if err != nil {
		root.Log.Fatalf("Batch generation failed: %v", err)
	}
	root.Log.Infof("Generated %d message file(s) in %s", count, dir)
}
