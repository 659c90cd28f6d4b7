// Package validation provides input checks for the command layer.
package validation

import (
	"fmt"
	"os"
)

// Output encodings accepted by the compose commands
const (
	EncodingMT   = "mt"
	EncodingPain = "pain001"
)

// IsValidEncoding checks if the given output encoding is supported.
func IsValidEncoding(encoding string) error {
	switch encoding {
	case EncodingMT, EncodingPain:
		return nil
	default:
		return fmt.Errorf("unsupported encoding: %s. Supported encodings are '%s', '%s'",
			encoding, EncodingMT, EncodingPain)
	}
}

// IsValidInputPath checks if a given path exists and is a regular file.
func IsValidInputPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}
