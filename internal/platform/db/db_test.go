package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSqliteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "catalog.db")

	conn, err := OpenSqlite(path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE t (id INTEGER)`)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)
}

func TestOpenSqliteMemory(t *testing.T) {
	conn, err := OpenSqlite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`CREATE TABLE t (id INTEGER)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO t VALUES (1)`)
	require.NoError(t, err, "the single connection keeps the in-memory table visible")
}

func TestOpenPostgresBadURL(t *testing.T) {
	_, err := OpenPostgres("postgres://catalog@localhost:notaport/catalog")
	assert.Error(t, err)
}
