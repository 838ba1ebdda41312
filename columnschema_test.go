package sqlformat_test

import (
	"testing"

	sqlformat "github.com/jpastuszek/format-sql-query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnSchema(t *testing.T) {
	tests := []struct {
		column     sqlformat.Column
		columnType sqlformat.ColumnType
		expected   string
	}{
		{
			column:     "age",
			columnType: "INT",
			expected:   "age INT",
		},
		{
			column:     "given name",
			columnType: "NVARCHAR",
			expected:   `"given name" NVARCHAR`,
		},
	}

	for _, tt := range tests {
		cs := sqlformat.NewColumnSchema(tt.column, tt.columnType)
		assert.Equal(t, tt.expected, cs.String())
		assert.Equal(t, tt.column, cs.Column())
		assert.Equal(t, tt.columnType, cs.ColumnType())
	}
}

func TestColumnSchemaFor(t *testing.T) {
	cs, err := sqlformat.ColumnSchemaFor(sqlformat.MonetDB, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "name STRING", cs.String())

	_, err = sqlformat.ColumnSchemaFor(sqlformat.MonetDB, "ratio", float32(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot determine column schema")
	assert.Contains(t, err.Error(), "column=ratio")
}
