package sqlformat

import (
	"github.com/jjeffery/errors"
)

// ColumnSchema is a column name together with its column type, as
// used in CREATE TABLE and ALTER TABLE statements. It renders as
// <column> <type>.
type ColumnSchema struct {
	column     Column
	columnType ColumnType
}

// NewColumnSchema returns the column schema for the column name and
// column type.
func NewColumnSchema(column Column, columnType ColumnType) ColumnSchema {
	return ColumnSchema{column: column, columnType: columnType}
}

// ColumnSchemaFor returns the column schema for storing values of
// the same type as v in the given dialect.
func ColumnSchemaFor(dialect Dialect, column Column, v interface{}) (ColumnSchema, error) {
	columnType, err := dialect.ColumnType(v)
	if err != nil {
		return ColumnSchema{}, errors.Wrap(err, "cannot determine column schema").With(
			"column", column.Raw(),
		)
	}
	return ColumnSchema{column: column, columnType: columnType}, nil
}

// Column returns the column name part.
func (cs ColumnSchema) Column() Column { return cs.column }

// ColumnType returns the column type part.
func (cs ColumnSchema) ColumnType() ColumnType { return cs.columnType }

// String returns the column name and column type, each escaped as
// an SQL identifier, separated by a space.
func (cs ColumnSchema) String() string {
	return cs.column.String() + " " + cs.columnType.String()
}
