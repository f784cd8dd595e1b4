// Package schema declares the relational schema and renders it as DDL.
// The checked-in db/schema.sql is produced from these declarations; the
// database itself enforces every constraint listed here.
package schema

// Column describes one table column.
type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
	NotNull    bool
	Unique     bool
	Default    string
}

// ForeignKey describes a reference from one column to another table's column.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Table describes one relational table.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// Tables returns the declared schema in creation order.
func Tables() []Table {
	return []Table{
		{
			Name: "users",
			Columns: []Column{
				{Name: "id", Type: "SERIAL", PrimaryKey: true},
				{Name: "email", Type: "TEXT", NotNull: true, Unique: true},
				{Name: "name", Type: "TEXT"},
			},
		},
		{
			Name: "posts",
			Columns: []Column{
				{Name: "id", Type: "SERIAL", PrimaryKey: true},
				{Name: "title", Type: "TEXT", NotNull: true},
				{Name: "content", Type: "TEXT"},
				{Name: "published", Type: "BOOLEAN", NotNull: true, Default: "FALSE"},
				{Name: "author_id", Type: "INTEGER", NotNull: true},
			},
			ForeignKeys: []ForeignKey{
				{Column: "author_id", RefTable: "users", RefColumn: "id"},
			},
		},
	}
}
