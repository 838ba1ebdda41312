package sqlformat

import (
	"bytes"
	"fmt"
)

// Predicates is an ordered collection of boolean predicates that
// combine with AND. A predicate can be any value with a string form:
// typically a plain string, or a fmt.Stringer built from the wrapper
// types in this package.
type Predicates struct {
	preds []interface{}
}

// NewPredicates returns a collection containing the given predicates.
func NewPredicates(preds ...interface{}) Predicates {
	var p Predicates
	p.AndExtend(preds...)
	return p
}

// And returns a new collection with the predicate appended.
func (p Predicates) And(pred interface{}) Predicates {
	return p.AndAll(pred)
}

// AndAll returns a new collection with all predicates appended.
func (p Predicates) AndAll(preds ...interface{}) Predicates {
	// full slice expression: appending to two collections derived
	// from the same prefix must not share the appended elements
	combined := append(p.preds[:len(p.preds):len(p.preds)], preds...)
	return Predicates{preds: combined}
}

// AndPush appends the predicate in place.
func (p *Predicates) AndPush(pred interface{}) {
	p.AndExtend(pred)
}

// AndExtend appends all predicates in place.
func (p *Predicates) AndExtend(preds ...interface{}) {
	p.preds = append(p.preds, preds...)
}

// Len returns the number of predicates in the collection.
func (p Predicates) Len() int { return len(p.preds) }

// Where returns a WHERE statement with the predicates.
func (p Predicates) Where() PredicateStatement {
	return PredicateStatement{statement: "WHERE", preds: p.preds}
}

// Having returns a HAVING statement with the predicates.
func (p Predicates) Having() PredicateStatement {
	return PredicateStatement{statement: "HAVING", preds: p.preds}
}

// PredicateStatement is an SQL statement keyword followed by
// predicates combined with AND.
type PredicateStatement struct {
	statement string
	preds     []interface{}
}

// String returns the statement keyword followed by the predicates,
// one per line, combined with AND.
func (ps PredicateStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString(ps.statement)
	for i, pred := range ps.preds {
		if i == 0 {
			buf.WriteString(" ")
		} else {
			buf.WriteString("\nAND ")
		}
		fmt.Fprintf(&buf, "%v", pred)
	}
	return buf.String()
}
