package sqlformat

// Column is the name of a table column.
type Column string

// Raw returns the original, unescaped column name.
func (c Column) Raw() string { return string(c) }

// AsQuotedData returns the column name re-tagged as a data value.
func (c Column) AsQuotedData() QuotedData { return QuotedData(c) }

// String returns the column name escaped as an SQL identifier.
func (c Column) String() string { return renderIdent(string(c)) }
