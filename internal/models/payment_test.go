package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagLines(t *testing.T) {
	raw := ":59:ACME CORP /DE89370400440532013000\n" +
		"not a tag line\n" +
		"\n" +
		":71A:OUR\n" +
		":79: free text with spaces  \n"

	pairs := ParseTagLines(raw)

	require.Len(t, pairs, 3)
	assert.Equal(t, TagValue{Tag: ":59:", Value: "ACME CORP /DE89370400440532013000"}, pairs[0])
	assert.Equal(t, TagValue{Tag: ":71A:", Value: "OUR"}, pairs[1])
	assert.Equal(t, TagValue{Tag: ":79:", Value: "free text with spaces"}, pairs[2])
}

func TestParseTagLines_OrderPreserved(t *testing.T) {
	raw := ":21:SECOND\n:20:FIRST"

	pairs := ParseTagLines(raw)

	require.Len(t, pairs, 2)
	assert.Equal(t, ":21:", pairs[0].Tag)
	assert.Equal(t, ":20:", pairs[1].Tag)
}

func TestParseTagLines_Empty(t *testing.T) {
	assert.Empty(t, ParseTagLines(""))
	assert.Empty(t, ParseTagLines("no tags here\nat all"))
}
