package sqlformat

import (
	"strings"
)

// Concat is a sequence of name parts that renders as a single SQL
// identifier. The parts are joined without a separator and the
// combined name is escaped as one identifier, so a quote character
// in any part cannot terminate the name early.
type Concat []string

// Raw returns the joined, unescaped name.
func (c Concat) Raw() string { return strings.Join(c, "") }

// AsQuotedData returns the joined name re-tagged as a data value.
func (c Concat) AsQuotedData() QuotedData { return QuotedData(c.Raw()) }

// String returns the joined name escaped as an SQL identifier.
func (c Concat) String() string { return renderIdent(c.Raw()) }
