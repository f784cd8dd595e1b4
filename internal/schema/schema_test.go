package schema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userboard/internal/schema"
)

func tableBlocks(t *testing.T, ddl string) []string {
	t.Helper()
	parts := strings.Split(ddl, "CREATE TABLE")
	require.Len(t, parts, 3, "schema must declare exactly two tables")
	return parts[1:]
}

func TestRenderDeclaresTwoTables(t *testing.T) {
	ddl := schema.Render()

	blocks := tableBlocks(t, ddl)
	assert.Contains(t, blocks[0], `"users"`)
	assert.Contains(t, blocks[1], `"posts"`)

	for _, block := range blocks {
		assert.Equal(t, 1, strings.Count(block, "PRIMARY KEY"), "one primary key per table")
		assert.True(t, strings.Contains(block, ");"), "statement must be terminated")
	}
}

func TestRenderConstraints(t *testing.T) {
	ddl := schema.Render()

	assert.Contains(t, ddl, `FOREIGN KEY ("author_id") REFERENCES "users" ("id")`)
	assert.Contains(t, ddl, `"email" TEXT NOT NULL UNIQUE`)
	assert.Contains(t, ddl, `"published" BOOLEAN NOT NULL DEFAULT FALSE`)
	assert.Contains(t, ddl, `"title" TEXT NOT NULL`)
}

func TestRenderCarriesGeneratorAndDatasourceHeader(t *testing.T) {
	ddl := schema.Render()

	assert.Contains(t, ddl, "-- generator: userboard schema")
	assert.Contains(t, ddl, "-- datasource: postgres")
	assert.Contains(t, ddl, "DATABASE_URL")
}

func TestCheckedInSchemaMatchesGenerator(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "db", "schema.sql"))
	require.NoError(t, err)

	assert.Equal(t, schema.Render(), string(data), "db/schema.sql drifted, regenerate with: userboard schema")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, schema.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, schema.Render(), string(data))
}
