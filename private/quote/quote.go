// Package quote implements the escaping rules used for rendering
// SQL identifiers and string literals. Every fragment rendered by
// this module passes through this package, so the quoting rules
// live in one place only.
package quote

import (
	"strings"
)

// Identifier returns the ANSI SQL quoted form of an identifier.
// The name is surrounded with double quotes and any double quote
// within the name is escaped by doubling it. The SQL-99 standard
// specifies doubling rather than backslash escaping. The result
// is a valid quoted identifier for any input, including the
// empty string.
func Identifier(name string) string {
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`
}

// Literal returns the SQL string literal form of a value.
// The value is surrounded with single quotes and any single quote
// within the value is escaped by doubling it. Backslashes are not
// escaped: dialects that treat backslash as an escape character in
// string literals (eg MySQL in its default mode) are not supported.
func Literal(value string) string {
	return `'` + strings.Replace(value, `'`, `''`, -1) + `'`
}

// NeedsQuoting reports whether name cannot appear in an SQL
// statement as a bare, unquoted identifier. Only non-empty names
// consisting of ASCII letters, digits and underscores, and not
// starting with a digit, can go unquoted. Everything else must be
// rendered with Identifier.
func NeedsQuoting(name string) bool {
	if name == "" {
		return true
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}

type quotePair struct {
	start      string
	end        string
	minLen     int
	escapedEnd string
}

func newQuotePair(start, end string) quotePair {
	return quotePair{
		start:      start,
		end:        end,
		minLen:     len(start) + len(end),
		escapedEnd: end + end,
	}
}

func (qp *quotePair) isQuoted(s string) bool {
	return len(s) >= qp.minLen &&
		strings.HasPrefix(s, qp.start) &&
		strings.HasSuffix(s, qp.end)
}

func (qp *quotePair) unQuote(s string) string {
	s = s[len(qp.start) : len(s)-len(qp.end)]
	return strings.Replace(s, qp.escapedEnd, qp.end, -1)
}

var quotePairs = []quotePair{
	newQuotePair(`"`, `"`),
	newQuotePair("'", "'"),
}

// IsQuoted returns true if s is a quoted identifier or a string
// literal.
func IsQuoted(s string) bool {
	for _, qp := range quotePairs {
		if qp.isQuoted(s) {
			return true
		}
	}
	return false
}

// Unquote removes the quotes from a quoted identifier or string
// literal and reverses the quote-doubling of its contents. If s is
// not quoted it is returned unchanged. If s is not well formed the
// result is undefined.
func Unquote(s string) string {
	for _, qp := range quotePairs {
		if qp.isQuoted(s) {
			return qp.unQuote(s)
		}
	}
	return s
}
