package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable_HeadersLowercasedAndTrimmed(t *testing.T) {
	rows := ParseTable(" Stone_ID , Name \nrd-1,Round\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "rd-1", rows[0].Str("stone_id"))
	assert.Equal(t, "Round", rows[0].Str("name"))
}

func TestParseTable_QuotedFields(t *testing.T) {
	text := "stone_id,name,color\n" +
		"rd-1,\"Round, brilliant\",EF\n" +
		"em-1,\"Emerald \"\"premium\"\"\",Green\n"
	rows := ParseTable(text)
	require.Len(t, rows, 2)
	assert.Equal(t, "Round, brilliant", rows[0].Str("name"))
	assert.Equal(t, `Emerald "premium"`, rows[1].Str("name"))
}

func TestParseTable_EmbeddedNewlineInQuotedField(t *testing.T) {
	text := "key,value\nnote,\"line one\nline two\"\n"
	rows := ParseTable(text)
	require.Len(t, rows, 1)
	assert.Equal(t, "line one\nline two", rows[0].Str("value"))
}

func TestParseTable_SkipsBlankRows(t *testing.T) {
	text := "key,value\n\n , \ngoldRate24k,15000\n\n"
	rows := ParseTable(text)
	require.Len(t, rows, 1)
	assert.Equal(t, "goldRate24k", rows[0].Str("key"))
}

func TestParseTable_ShortRowsLackColumns(t *testing.T) {
	rows := ParseTable("stone_id,name,clarity\nrd-1,Round\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "Round", rows[0].Str("name"))
	assert.Equal(t, "", rows[0].Str("clarity"))
}

func TestParseTable_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseTable(""))
	assert.Empty(t, ParseTable("\n\n"))
	// Header only, no data rows.
	assert.Empty(t, ParseTable("key,value\n"))
}

func TestRow_FloatDefaults(t *testing.T) {
	rows := ParseTable("from_weight,to_weight,price_per_carat\n0.5,abc,\n")
	require.Len(t, rows, 1)

	f, ok := rows[0].Float("from_weight")
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	_, ok = rows[0].Float("to_weight")
	assert.False(t, ok)
	assert.Equal(t, 0.0, rows[0].FloatOrZero("to_weight"))
	assert.Equal(t, 0.0, rows[0].FloatOrZero("price_per_carat"))
	assert.Equal(t, 0.0, rows[0].FloatOrZero("missing_column"))
}
