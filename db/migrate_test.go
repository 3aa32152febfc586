package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration_ScaffoldsSQLFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, CreateMigration(dir, "add_users_index"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	assert.True(t, strings.HasSuffix(name, "_add_users_index.sql"), name)

	contents, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "-- +goose Up")
	assert.Contains(t, string(contents), "-- +goose Down")
}
