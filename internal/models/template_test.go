package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/swift-compose/internal/msgerror"
)

func TestLookupTemplate_KnownTypes(t *testing.T) {
	tests := []struct {
		msgType        string
		defaultTextTag string
		firstRequired  string
	}{
		{msgType: MT103, defaultTextTag: "", firstRequired: ":20:"},
		{msgType: MT199, defaultTextTag: ":79:", firstRequired: ":20:"},
		{msgType: MT700, defaultTextTag: ":77B:", firstRequired: ":20:"},
		{msgType: MT760, defaultTextTag: ":77U:", firstRequired: ":20:"},
		{msgType: MT799, defaultTextTag: ":79:", firstRequired: ":20:"},
	}

	for _, tt := range tests {
		t.Run(tt.msgType, func(t *testing.T) {
			tmpl, err := LookupTemplate(tt.msgType)
			require.NoError(t, err)
			assert.Equal(t, tt.defaultTextTag, tmpl.DefaultTextTag)
			assert.Equal(t, tt.firstRequired, tmpl.RequiredTags[0])
			assert.NotEmpty(t, tmpl.Description)
		})
	}
}

func TestLookupTemplate_Unknown(t *testing.T) {
	_, err := LookupTemplate("MT999")

	require.Error(t, err)
	var unsupported *msgerror.UnsupportedMessageTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "MT999", unsupported.MessageType)
	assert.Contains(t, unsupported.Supported, MT103)
}

func TestSupportedMessageTypes(t *testing.T) {
	types := SupportedMessageTypes()
	assert.Equal(t, []string{MT103, MT199, MT700, MT760, MT799}, types)
}
