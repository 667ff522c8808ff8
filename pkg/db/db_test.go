package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mailcraft.db")

	d, err := Open(path)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, path, d.Path())

	for _, table := range []string{"email_templates", "send_events"} {
		var name string
		err := d.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "mailcraft.db"))
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Migrate())
	require.NoError(t, d.Migrate())
}

func TestSqlConn(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "mailcraft.db"))
	require.NoError(t, err)
	defer d.Close()

	conn := d.SqlConn()
	var count int
	require.NoError(t, conn.QueryRowCtx(context.Background(), &count, "select count(*) from email_templates"))
	assert.Zero(t, count)
}

func TestPragmasOnEveryConnection(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "mailcraft.db"))
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()

	// Hold two connections at once so the pool cannot hand back the same one.
	first, err := d.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := d.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		var timeout, foreignKeys int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout), i)
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys), i)
		assert.Equal(t, 5000, timeout, "connection %d", i)
		assert.Equal(t, 1, foreignKeys, "connection %d", i)

		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode), i)
		assert.Equal(t, "wal", strings.ToLower(mode), "connection %d", i)
	}
}
