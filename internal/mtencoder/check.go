package mtencoder

import "strings"

// CheckEnvelope performs a structural well-formedness check on generated MT
// text: the four-block envelope must be present exactly once and the body
// must open with the transaction reference tag. This is the seam an
// external SWIFT conformance validator plugs into; no semantic tag
// validation happens here.
func CheckEnvelope(text string) (bool, []string) {
	var issues []string

	if !strings.HasPrefix(text, "{1:F01") {
		issues = append(issues, "missing or malformed basic header block {1:}")
	}
	if !strings.Contains(text, "\n{2:O") {
		issues = append(issues, "missing application header block {2:}")
	}
	switch strings.Count(text, "\n{4:\n") {
	case 1:
		// exactly one text block
	case 0:
		issues = append(issues, "missing text block {4:}")
	default:
		issues = append(issues, "multiple text blocks {4:}")
	}
	if !strings.Contains(text, "\n:20:") {
		issues = append(issues, "missing transaction reference tag :20:")
	}
	if !strings.HasSuffix(text, "\n-}") {
		issues = append(issues, "missing text block terminator -}")
	}

	return len(issues) == 0, issues
}
