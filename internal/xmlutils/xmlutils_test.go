package xmlutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Root>
  <Header>
    <Id>MSG-1</Id>
  </Header>
  <Item><Name>first</Name></Item>
  <Item><Name>second</Name></Item>
</Root>`

func TestParse(t *testing.T) {
	root, err := Parse(sampleDoc)
	require.NoError(t, err)
	assert.NotNil(t, root)

	_, err = Parse("<unclosed>")
	assert.Error(t, err)
}

func TestExtractAll(t *testing.T) {
	root, err := Parse(sampleDoc)
	require.NoError(t, err)

	names, err := ExtractAll(root, "/Root/Item/Name")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, names)

	none, err := ExtractAll(root, "/Root/Missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFirst(t *testing.T) {
	root, err := Parse(sampleDoc)
	require.NoError(t, err)

	value, ok := First(root, "/Root/Header/Id")
	assert.True(t, ok)
	assert.Equal(t, "MSG-1", value)

	_, ok = First(root, "/Root/Missing")
	assert.False(t, ok)
}

func TestCheckStructure(t *testing.T) {
	t.Run("all paths present", func(t *testing.T) {
		ok, issues := CheckStructure(sampleDoc, []string{"/Root/Header/Id", "/Root/Item/Name"})
		assert.True(t, ok)
		assert.Empty(t, issues)
	})

	t.Run("missing path reported", func(t *testing.T) {
		ok, issues := CheckStructure(sampleDoc, []string{"/Root/Header/Id", "/Root/Footer"})
		assert.False(t, ok)
		require.Len(t, issues, 1)
		assert.Equal(t, "missing required element at /Root/Footer", issues[0])
	})

	t.Run("malformed document", func(t *testing.T) {
		ok, issues := CheckStructure("not xml at all <", []string{"/Root"})
		assert.False(t, ok)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "not well-formed XML")
	})
}
