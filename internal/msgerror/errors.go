// Package msgerror defines the error types surfaced by the message encoders.
package msgerror

import (
	"fmt"
	"strings"
)

// InvalidAmountError reports an amount string that could not be parsed
// as a finite decimal value.
type InvalidAmountError struct {
	Value string
	Err   error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount '%s': %v", e.Value, e.Err)
}

func (e *InvalidAmountError) Unwrap() error {
	return e.Err
}

// UnsupportedMessageTypeError reports a message-type selector that does not
// match any known MT template and could not be resolved by caller-supplied
// tag overrides.
type UnsupportedMessageTypeError struct {
	MessageType string
	Supported   []string
}

func (e *UnsupportedMessageTypeError) Error() string {
	return fmt.Sprintf("unsupported message type '%s' (supported: %s)",
		e.MessageType, strings.Join(e.Supported, ", "))
}
