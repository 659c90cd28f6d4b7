// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"fjacquet/swift-compose/internal/dateutils"
	"fjacquet/swift-compose/internal/fileutils"
	"fjacquet/swift-compose/internal/formal"
	"fjacquet/swift-compose/internal/models"
)

// EmitOptions describes how a composed message body reaches the user.
type EmitOptions struct {
	MessageType string
	Sender      models.SenderInfo
	Account     string
	Formal      bool
	OutputFile  string
	Start       time.Time
	End         time.Time
}

// Emit optionally wraps a message body in the formal audit output and
// writes it to the output file, or to stdout when no file is given.
func Emit(body string, opts EmitOptions, log *logrus.Logger) {
	text := body
	if opts.Formal {
		renderer := formal.NewRenderer()
		text = renderer.Render(
			opts.MessageType,
			body,
			opts.Sender,
			dateutils.ISOInstant(opts.Start),
			dateutils.ISOInstant(opts.End),
			opts.Account,
		)
	}

	if opts.OutputFile == "" {
		fmt.Println(text)
		return
	}

	if err := fileutils.WriteTextFile(opts.OutputFile, text); err != nil {
		log.Fatalf("Error writing output file: %v", err)
	}
	log.Infof("Message written to %s", opts.OutputFile)
}
