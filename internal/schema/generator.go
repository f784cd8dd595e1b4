package schema

import (
	"fmt"
	"os"
	"strings"
)

const header = `-- Code generated by "userboard schema". DO NOT EDIT.
-- generator: userboard schema
-- datasource: postgres, connection string taken from DATABASE_URL
`

// Render produces the full schema declaration as SQL text.
func Render() string {
	var b strings.Builder
	b.WriteString(header)

	for _, table := range Tables() {
		b.WriteString("\n")
		b.WriteString(renderTable(table))
	}

	return b.String()
}

// WriteFile renders the schema declaration into path.
func WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(Render()), 0o644); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}
	return nil
}

func renderTable(t Table) string {
	lines := make([]string, 0, len(t.Columns)+len(t.ForeignKeys))
	for _, col := range t.Columns {
		lines = append(lines, "    "+renderColumn(col))
	}
	for _, fk := range t.ForeignKeys {
		lines = append(lines, fmt.Sprintf(
			"    CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q (%q)",
			t.Name+"_"+fk.Column+"_fkey", fk.Column, fk.RefTable, fk.RefColumn,
		))
	}

	return fmt.Sprintf("CREATE TABLE %q (\n%s\n);\n", t.Name, strings.Join(lines, ",\n"))
}

func renderColumn(c Column) string {
	parts := []string{fmt.Sprintf("%q", c.Name), c.Type}
	if c.PrimaryKey {
		parts = append(parts, "PRIMARY KEY")
	}
	if c.NotNull {
		parts = append(parts, "NOT NULL")
	}
	if c.Unique {
		parts = append(parts, "UNIQUE")
	}
	if c.Default != "" {
		parts = append(parts, "DEFAULT "+c.Default)
	}
	return strings.Join(parts, " ")
}
