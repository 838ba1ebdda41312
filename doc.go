/*
Package sqlformat provides strongly-typed wrappers for building
correctly escaped SQL query text.

Building SQL by naive string concatenation is the main source of SQL
injection and malformed-identifier bugs. This package makes every
identifier and every data value pass through a single escaping routine
before it can appear in a query string. Each wrapper type records how
its value must be escaped, and renders the escaped text when formatted:

	fmt.Printf("SELECT %s FROM %s WHERE %s = %s\n",
		sqlformat.Column("foo bar"),
		sqlformat.NewSchemaTable("foo", "baz"),
		sqlformat.Column("blah"),
		sqlformat.QuotedData("hello 'world' foo"))
	// SELECT "foo bar" FROM foo.baz WHERE blah = 'hello ''world'' foo'

All wrapper types implement fmt.Stringer, so they can be used directly
with the fmt package verbs %s and %v, or anywhere else a string
representation is produced.

ESCAPING RULES

Identifiers (Object, Schema, Table, Column and friends) render as bare
names when they consist only of ASCII letters, digits and underscores.
Any other name is surrounded with double quotes, and double quotes
within the name are doubled, per the SQL-99 standard. Data values
(QuotedData) always render surrounded with single quotes, with single
quotes within the value doubled.

Backslash escaping, as used by some MySQL modes for string literals,
is deliberately not implemented. Neither is any protection against SQL
constructs that bypass textual escaping, such as multi-statement
execution. Use placeholder parameters for untrusted data where the
driver supports them; this package is for the cases where identifiers
and values must be rendered into SQL text.

No validation is performed on construction: a wrapper stores the raw
string it is given and escaping happens at render time only. Semantic
checks, such as identifier length limits, are the caller's
responsibility.
*/
package sqlformat
