package sqlformat_test

import (
	"fmt"
	"strings"

	sqlformat "github.com/jpastuszek/format-sql-query"
)

func Example() {
	fmt.Printf("SELECT %s FROM %s WHERE %s = %s\n",
		sqlformat.Column("foo bar"),
		sqlformat.NewSchemaTable("foo", "baz"),
		sqlformat.Column("blah"),
		sqlformat.QuotedData("hello 'world' foo"))

	// Output:
	// SELECT "foo bar" FROM foo.baz WHERE blah = 'hello ''world'' foo'
}

func ExampleQuotedData() {
	fmt.Println(sqlformat.QuotedData("it's a value"))
	fmt.Println(sqlformat.QuotedData(""))

	// Output:
	// 'it''s a value'
	// ''
}

func ExampleQuotedData_Map() {
	data := sqlformat.QuotedData("hello 'world'")
	fmt.Println(data.Map(strings.ToUpper))

	// Output:
	// 'HELLO ''WORLD'''
}

func ExampleTable_WithPostfix() {
	table := sqlformat.Table("page_views")
	fmt.Println(table.WithPostfix("_backup"))
	fmt.Println(table.WithPostfixSep("backup", " "))

	// Output:
	// page_views_backup
	// "page_views backup"
}

func ExampleSchemaTable_WithPostfix() {
	st := sqlformat.NewSchemaTable("foo", "baz")
	fmt.Println(st.WithPostfix("_quix"))

	// Output:
	// foo.baz_quix
}

func ExamplePredicates() {
	preds := sqlformat.NewPredicates("foo = 'bar'").
		And("baz").
		AndAll("hello", "world")
	fmt.Println(preds.Where())

	// Output:
	// WHERE foo = 'bar'
	// AND baz
	// AND hello
	// AND world
}

func ExampleColumnSchemaFor() {
	cs, err := sqlformat.ColumnSchemaFor(sqlformat.SQLServer, "age", int32(0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cs)

	// Output:
	// age INT
}
