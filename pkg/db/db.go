// Package db provides SQLite database operations for mailcraft.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
	path string
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &DB{DB: db, path: path}

	if err := d.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// pragmas are applied by the driver to every pooled connection.
// WAL mode lets the queue workers read while a request writes.
var pragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"busy_timeout(5000)",
}

func dsn(path string) string {
	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p)
	}
	return path + "?" + strings.Join(params, "&")
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Migrate runs database migrations.
func (d *DB) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS email_templates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		subject TEXT NOT NULL,
		header TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		button_text TEXT,
		button_link TEXT,
		footer TEXT,
		template_name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_email_templates_created ON email_templates(created_at);

	-- Test-send delivery log
	CREATE TABLE IF NOT EXISTS send_events (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		template_id INTEGER NOT NULL,
		event_type TEXT NOT NULL,
		recipient TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_send_events_template ON send_events(template_id);
	`

	_, err := d.Exec(schema)
	return err
}

// SqlConn returns a go-zero sqlx.SqlConn wrapping the underlying database.
// This provides automatic circuit breaking and tracing on every query.
func (d *DB) SqlConn() sqlx.SqlConn {
	return sqlx.NewSqlConnFromDB(d.DB, sqlx.WithAcceptable(sqliteAcceptable))
}

// sqliteAcceptable tells the circuit breaker that "database is locked" errors
// are transient (SQLite WAL contention) and should not trip the breaker.
func sqliteAcceptable(err error) bool {
	return err == nil || strings.Contains(err.Error(), "database is locked")
}
