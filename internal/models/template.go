package models

import (
	"sort"

	"fjacquet/swift-compose/internal/msgerror"
)

// MessageTemplate describes the tag set an MT message type expects.
// RequiredTags drives which derived fields are auto-populated; DefaultTextTag
// is the free-text tag used when a non-MT103 type is composed without
// caller-supplied overrides.
type MessageTemplate struct {
	RequiredTags   []string
	DefaultTextTag string
	Description    string
}

// Supported MT message types
const (
	MT103 = "MT103"
	MT199 = "MT199"
	MT700 = "MT700"
	MT760 = "MT760"
	MT799 = "MT799"
)

var mtTemplates = map[string]MessageTemplate{
	MT103: {
		RequiredTags: []string{":20:", ":32A:", ":50K:", ":59:", ":71A:"},
		Description:  "Classic single-customer credit transfer (MT103).",
	},
	MT199: {
		RequiredTags:   []string{":20:", ":21:", ":79:"},
		DefaultTextTag: ":79:",
		Description:    "Free-format message (MT199).",
	},
	MT700: {
		RequiredTags:   []string{":20:", ":40A:", ":31D:", ":50:", ":59:", ":44A:", ":77B:"},
		DefaultTextTag: ":77B:",
		Description:    "Issue of a documentary credit (MT700).",
	},
	MT760: {
		RequiredTags:   []string{":20:", ":21:", ":32B:", ":50:", ":59:", ":77U:"},
		DefaultTextTag: ":77U:",
		Description:    "Guarantee or standby (MT760).",
	},
	MT799: {
		RequiredTags:   []string{":20:", ":21:", ":79:"},
		DefaultTextTag: ":79:",
		Description:    "Free-format pre-advice or reservation (MT799).",
	},
}

// LookupTemplate resolves a message-type selector to its template.
// Unknown selectors yield an *msgerror.UnsupportedMessageTypeError.
func LookupTemplate(msgType string) (MessageTemplate, error) {
	tmpl, ok := mtTemplates[msgType]
	if !ok {
		return MessageTemplate{}, &msgerror.UnsupportedMessageTypeError{
			MessageType: msgType,
			Supported:   SupportedMessageTypes(),
		}
	}
	return tmpl, nil
}

// SupportedMessageTypes returns the known MT message types, sorted.
func SupportedMessageTypes() []string {
	types := make([]string, 0, len(mtTemplates))
	for t := range mtTemplates {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
