package sqlformat

import (
	"reflect"
	"strings"

	"github.com/jjeffery/kv"
)

// Dialect maps Go types to the column type names of one SQL server
// implementation. The identifier and literal escaping rules in this
// package are dialect-agnostic; only column type names differ
// between dialects.
type Dialect interface {
	// Name of the dialect.
	Name() string

	// ColumnType returns the dialect's column type for storing
	// values of the same type as v. For convenience v can also be
	// a reflect.Type. Returns an error if the dialect has no
	// column type for the Go type.
	ColumnType(v interface{}) (ColumnType, error)
}

// Pre-defined dialects.
var (
	SQLServer Dialect // BIT, TINYINT, ..., NVARCHAR
	MonetDB   Dialect // BOOLEAN, TINYINT, ..., STRING
)

var dialects map[string]*dialectT

func init() {
	dialects = make(map[string]*dialectT)

	for _, d := range []*dialectT{
		{
			name:     "sqlserver",
			altnames: []string{"mssql"},
			types: map[reflect.Type]ColumnType{
				reflect.TypeOf(false):       "BIT",
				reflect.TypeOf(int8(0)):     "TINYINT",
				reflect.TypeOf(int16(0)):    "SMALLINT",
				reflect.TypeOf(int32(0)):    "INT",
				reflect.TypeOf(int64(0)):    "BIGINT",
				reflect.TypeOf(int(0)):      "BIGINT",
				reflect.TypeOf(float32(0)):  "REAL",
				reflect.TypeOf(float64(0)):  "FLOAT",
				reflect.TypeOf(""):          "NVARCHAR",
			},
		},
		{
			name: "monetdb",
			types: map[reflect.Type]ColumnType{
				reflect.TypeOf(false):      "BOOLEAN",
				reflect.TypeOf(int8(0)):    "TINYINT",
				reflect.TypeOf(int16(0)):   "SMALLINT",
				reflect.TypeOf(int32(0)):   "INT",
				reflect.TypeOf(int64(0)):   "BIGINT",
				reflect.TypeOf(int(0)):     "BIGINT",
				reflect.TypeOf(float64(0)): "DOUBLE",
				reflect.TypeOf(""):         "STRING",
			},
		},
	} {
		dialects[d.name] = d
		for _, altname := range d.altnames {
			dialects[altname] = d
		}
	}

	SQLServer = dialects["sqlserver"]
	MonetDB = dialects["monetdb"]
}

// DialectFor returns the dialect with the given name. The name is
// not case sensitive. Returns nil if the name is not known.
//
// Supported dialects:
//
//	name       alternative names
//	----       -----------------
//	sqlserver  mssql
//	monetdb
func DialectFor(name string) Dialect {
	name = strings.TrimSpace(strings.ToLower(name))
	if d, ok := dialects[name]; ok {
		return d
	}
	return nil
}

// dialectT implements the Dialect interface.
type dialectT struct {
	name     string
	altnames []string
	types    map[reflect.Type]ColumnType
}

func (d *dialectT) Name() string {
	return d.name
}

func (d *dialectT) ColumnType(v interface{}) (ColumnType, error) {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	if t != nil {
		if columnType, ok := d.types[t]; ok {
			return columnType, nil
		}
	}
	return "", kv.NewError("no column type for Go type").With(
		"dialect", d.name,
		"type", typeName(t),
	)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

// ColumnType is the name of an SQL column type, for example
// "BIGINT". It renders as an SQL identifier.
type ColumnType string

// Raw returns the original, unescaped column type name.
func (ct ColumnType) Raw() string { return string(ct) }

// String returns the column type name escaped as an SQL identifier.
func (ct ColumnType) String() string { return renderIdent(string(ct)) }
