package keyvalues

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginusersDoc = `"users"
{
	"76561198000000001"
	{
		"AccountName"		"alice"
		"PersonaName"		"Alice"
		"RememberPassword"		"1"
	}
	"76561198000000002"
	{
		"AccountName"		"bob"
		"PersonaName"		"Bob"
	}
}
`

func TestParse_NestedDocument(t *testing.T) {
	t.Parallel()

	obj, err := Parse(strings.NewReader(loginusersDoc))
	require.NoError(t, err)
	require.Len(t, obj, 2)

	name, ok := GetString(obj, "76561198000000001", "AccountName")
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	entry, ok := GetObject(obj, "76561198000000002")
	require.True(t, ok)
	assert.Equal(t, "Bob", entry["PersonaName"])
}

func TestParse_EmptyObject(t *testing.T) {
	t.Parallel()

	obj, err := Parse(strings.NewReader("\"root\"\n{}\n"))
	require.NoError(t, err)
	assert.Empty(t, obj)
}

func TestParse_MissingOpenBrace(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("\"root\"\n\"key\" \"value\"\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrNoObject)
}

func TestParse_DuplicateKeyLastWriteWins(t *testing.T) {
	t.Parallel()

	doc := "\"root\"\n{\n\t\"name\" \"first\"\n\t\"name\" \"second\"\n}\n"
	obj, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "second", obj["name"])
	assert.Len(t, obj, 1)
}

func TestParse_KeysAreCaseSensitive(t *testing.T) {
	t.Parallel()

	doc := "\"root\"\n{\n\t\"Name\" \"a\"\n\t\"name\" \"b\"\n}\n"
	obj, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "a", obj["Name"])
	assert.Equal(t, "b", obj["name"])
}

func TestParse_ToleratesTruncatedDocument(t *testing.T) {
	t.Parallel()

	// Missing closing braces: the parser keeps what it accumulated.
	doc := "\"root\"\n{\n\t\"outer\"\n\t{\n\t\t\"key\" \"value\"\n"
	obj, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	val, ok := GetString(obj, "outer", "key")
	assert.True(t, ok)
	assert.Equal(t, "value", val)
}

func TestParse_StopsAtUnparseableInput(t *testing.T) {
	t.Parallel()

	doc := "\"root\"\n{\n\t\"good\" \"1\"\n\tgarbage without quotes\n\t\"ignored\" \"2\"\n}\n"
	obj, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "1", obj["good"])
	assert.NotContains(t, obj, "ignored")
}

func TestParse_IsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Parse(strings.NewReader(loginusersDoc))
	require.NoError(t, err)
	second, err := Parse(strings.NewReader(loginusersDoc))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParse_WhitespaceBetweenTokensInsignificant(t *testing.T) {
	t.Parallel()

	doc := "\"root\"  \n  {\"a\"\"1\"   \"b\"\n\n\"2\"}"
	obj, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, Object{"a": "1", "b": "2"}, obj)
}

func TestParseFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseFile("/nonexistent/path/loginusers.vdf")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "/nonexistent/path/loginusers.vdf", perr.Path)
}

func TestGetString_MissingPath(t *testing.T) {
	t.Parallel()

	obj := Object{"a": Object{"b": "c"}}
	_, ok := GetString(obj, "a", "missing")
	assert.False(t, ok)
	_, ok = GetString(obj, "a")
	assert.False(t, ok) // "a" is an object, not a string
}
