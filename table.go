package sqlformat

// Schema is the name of a database schema.
type Schema string

// Raw returns the original, unescaped schema name.
func (s Schema) Raw() string { return string(s) }

// AsQuotedData returns the schema name re-tagged as a data value.
func (s Schema) AsQuotedData() QuotedData { return QuotedData(s) }

// String returns the schema name escaped as an SQL identifier.
func (s Schema) String() string { return renderIdent(string(s)) }

// Table is the name of a database table.
type Table string

// Raw returns the original, unescaped table name.
func (t Table) Raw() string { return string(t) }

// AsQuotedData returns the table name re-tagged as a data value.
func (t Table) AsQuotedData() QuotedData { return QuotedData(t) }

// WithSchema qualifies the table with a schema name.
func (t Table) WithSchema(schema Schema) SchemaTable {
	return SchemaTable{schema: schema, table: t}
}

// WithPostfix appends a postfix to the table name. The combined
// name is escaped as a single identifier.
func (t Table) WithPostfix(postfix string) Concat {
	return Concat{string(t), postfix}
}

// WithPostfixSep appends a postfix to the table name with a
// separator between them. The combined name is escaped as a single
// identifier.
func (t Table) WithPostfixSep(postfix, separator string) Concat {
	return Concat{string(t), separator, postfix}
}

// String returns the table name escaped as an SQL identifier.
func (t Table) String() string { return renderIdent(string(t)) }

// SchemaTable is a table name qualified with a schema name. It
// renders as <schema>.<table>, with each part escaped independently.
// The separating dot is never escaped and cannot be supplied by the
// caller.
type SchemaTable struct {
	schema Schema
	table  Table
}

// NewSchemaTable returns the table name qualified with the schema name.
func NewSchemaTable(schema Schema, table Table) SchemaTable {
	return SchemaTable{schema: schema, table: table}
}

// Schema returns the schema part.
func (st SchemaTable) Schema() Schema { return st.schema }

// Table returns the table part.
func (st SchemaTable) Table() Table { return st.table }

// WithPostfix appends a postfix to the table part, leaving the
// schema part unchanged.
func (st SchemaTable) WithPostfix(postfix string) SchemaTable {
	return SchemaTable{
		schema: st.schema,
		table:  Table(string(st.table) + postfix),
	}
}

// WithPostfixSep appends a postfix to the table part with a
// separator between them, leaving the schema part unchanged.
func (st SchemaTable) WithPostfixSep(postfix, separator string) SchemaTable {
	return SchemaTable{
		schema: st.schema,
		table:  Table(string(st.table) + separator + postfix),
	}
}

// AsQuotedData returns the qualified name, with the unescaped parts
// joined by a dot, re-tagged as a data value.
func (st SchemaTable) AsQuotedData() QuotedData {
	return QuotedData(string(st.schema) + "." + string(st.table))
}

// String returns the qualified table name with the schema and table
// parts each escaped as an SQL identifier, joined by a dot.
func (st SchemaTable) String() string {
	return st.schema.String() + "." + st.table.String()
}
