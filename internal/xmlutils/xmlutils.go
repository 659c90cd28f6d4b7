// Package xmlutils provides XPath probing over generated XML documents.
// It backs the structural checks that run before an external XSD validator
// sees the output.
package xmlutils

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parse parses an XML document held in memory and returns its root node.
func Parse(doc string) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML document: %w", err)
	}
	return root, nil
}

// ExtractAll returns every value matching an XPath expression.
func ExtractAll(root *xmlpath.Node, expr string) ([]string, error) {
	path, err := xmlpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath '%s': %w", expr, err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}
	return values, nil
}

// First returns the first value matching an XPath expression and whether a
// match existed.
func First(root *xmlpath.Node, expr string) (string, bool) {
	path, err := xmlpath.Compile(expr)
	if err != nil {
		log.WithError(err).WithField("xpath", expr).Warn("Failed to compile XPath")
		return "", false
	}
	return path.String(root)
}

// CheckStructure verifies that a document is well-formed XML and contains
// every required XPath location. It returns a validity flag plus an ordered
// list of human-readable issues, matching the contract of the external
// validator collaborator.
func CheckStructure(doc string, requiredPaths []string) (bool, []string) {
	root, err := Parse(doc)
	if err != nil {
		return false, []string{fmt.Sprintf("document is not well-formed XML: %v", err)}
	}

	var issues []string
	for _, expr := range requiredPaths {
		if _, ok := First(root, expr); !ok {
			issues = append(issues, "missing required element at "+expr)
		}
	}
	return len(issues) == 0, issues
}
