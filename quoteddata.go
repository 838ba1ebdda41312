package sqlformat

import (
	"github.com/jpastuszek/format-sql-query/private/quote"
)

// QuotedData is a data value that renders as an SQL string literal.
// It always renders surrounded with single quotes, never as a bare
// numeric or NULL token, so it is safe for arbitrary values.
type QuotedData string

// Raw returns the original, unescaped value.
func (qd QuotedData) Raw() string { return string(qd) }

// Map returns a value that applies f to the raw value at render
// time, before escaping.
func (qd QuotedData) Map(f func(string) string) MapQuotedData {
	return MapQuotedData{data: string(qd), f: f}
}

// String returns the value escaped as an SQL string literal.
func (qd QuotedData) String() string { return quote.Literal(string(qd)) }

// MapQuotedData is a QuotedData whose raw value is passed through a
// mapping function when rendered.
type MapQuotedData struct {
	data string
	f    func(string) string
}

// String applies the mapping function to the raw value and returns
// the result escaped as an SQL string literal.
func (m MapQuotedData) String() string { return quote.Literal(m.f(m.data)) }
