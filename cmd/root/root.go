// Package root contains the root command for the application
package root

import (
	"fjacquet/swift-compose/internal/amountutils"
	"fjacquet/swift-compose/internal/batch"
	"fjacquet/swift-compose/internal/config"
	"fjacquet/swift-compose/internal/fileutils"
	"fjacquet/swift-compose/internal/formal"
	"fjacquet/swift-compose/internal/models"
	"fjacquet/swift-compose/internal/mtencoder"
	"fjacquet/swift-compose/internal/painencoder"
	"fjacquet/swift-compose/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output     string
	Validate   bool
	Formal     bool
	Account    string
	SenderFile string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "swift-compose",
		Short: "A CLI tool to compose SWIFT MT and ISO 20022 pain.001 messages.",
		Long: `swift-compose builds SWIFT-style MT messages (MT103, MT199, MT700,
MT760, MT799) and ISO 20022 pain.001 credit transfer documents from payment
fields, and wraps them in the formal audit output used for TXT export.

Messages are generated locally for demo and export only; nothing connects
to the SWIFT network.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to swift-compose!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Push the configured logger into every package
			amountutils.SetLogger(Log)
			mtencoder.SetLogger(Log)
			painencoder.SetLogger(Log)
			formal.SetLogger(Log)
			xmlutils.SetLogger(Log)
			fileutils.SetLogger(Log)
			batch.SetLogger(Log)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when omitted)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Run structural checks on the generated message")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Formal, "formal", "f", false, "Wrap the message in the formal audit output")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Account, "account", "", "Selected account label for the formal output header")
	Cmd.PersistentFlags().StringVar(&SharedFlags.SenderFile, "sender-file", "", "YAML file overriding the configured sender info")
}

// Sender resolves the sender static data: the configured block, overridden
// by --sender-file when supplied.
func Sender() models.SenderInfo {
	if SharedFlags.SenderFile != "" {
		info, err := models.LoadSenderInfo(SharedFlags.SenderFile)
		if err != nil {
			Log.Fatalf("Error loading sender file: %v", err)
		}
		return info
	}
	if Cfg != nil {
		return Cfg.Sender
	}
	return models.DefaultSenderInfo()
}
