package sqlformat

import (
	"github.com/jpastuszek/format-sql-query/private/quote"
)

// Object is the name of any SQL object: a table, schema, column,
// index, and so on. The more specific types Schema, Table and Column
// render identically and exist so that a function signature can say
// which kind of name it expects.
type Object string

// Raw returns the original, unescaped name.
func (o Object) Raw() string { return string(o) }

// AsQuotedData returns the name re-tagged as a data value, so that
// it renders as an SQL string literal instead of an identifier.
func (o Object) AsQuotedData() QuotedData { return QuotedData(o) }

// String returns the name escaped as an SQL identifier.
func (o Object) String() string { return renderIdent(string(o)) }

// renderIdent renders a name as an SQL identifier: bare if it is
// safe to emit unquoted, otherwise in the ANSI double-quoted form.
func renderIdent(name string) string {
	if quote.NeedsQuoting(name) {
		return quote.Identifier(name)
	}
	return name
}
