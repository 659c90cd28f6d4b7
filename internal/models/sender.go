package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SenderInfo holds the bank static data rendered into MT :86: trailers and
// formal output headers. It is immutable per message and never alters
// message semantics.
type SenderInfo struct {
	BIC         string `yaml:"bic" mapstructure:"bic"`
	BankName    string `yaml:"bank_name" mapstructure:"bank_name"`
	BankAddress string `yaml:"bank_address" mapstructure:"bank_address"`
	AccountName string `yaml:"account_name" mapstructure:"account_name"`
	AccountIBAN string `yaml:"account_iban" mapstructure:"account_iban"`
}

// DefaultSenderInfo returns the built-in sample sender block. Real
// deployments override it via configuration or a sender YAML file.
func DefaultSenderInfo() SenderInfo {
	return SenderInfo{
		BIC:         "UBSWCHZH80A",
		BankName:    "UBS SWITZERLAND AG",
		BankAddress: "PARADEPLATZ 6, 8098, ZURICH, SWITZERLAND",
		AccountName: "ANDRO AG / FOR FURTHER FORSAN FOR FRUITS AND VEGETABLES EAST",
		AccountIBAN: "CH970020620625170160K",
	}
}

// LoadSenderInfo reads sender static data from a YAML file.
func LoadSenderInfo(path string) (SenderInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SenderInfo{}, fmt.Errorf("failed to read sender file: %w", err)
	}

	var info SenderInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return SenderInfo{}, fmt.Errorf("failed to parse sender file '%s': %w", path, err)
	}
	return info, nil
}
