package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// open opens a driver connection, applies pool settings and checks it answers.
func open(driver, dsn, label string, tune func(*sql.DB)) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", label, err)
	}

	tune(conn)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", label, err)
	}
	return conn, nil
}

// OpenPostgres connects through the pgx stdlib driver. The catalog is
// read-mostly, so a small pool with recycled connections is enough.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	return open("pgx", databaseURL, "postgres catalog", func(conn *sql.DB) {
		conn.SetMaxOpenConns(8)
		conn.SetMaxIdleConns(4)
		conn.SetConnMaxIdleTime(5 * time.Minute)
		conn.SetConnMaxLifetime(30 * time.Minute)
	})
}

// OpenSqlite opens (creating if needed) the SQLite database at path.
// ":memory:" gives a private in-memory database.
func OpenSqlite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("open sqlite catalog: create directory %q: %w", dir, err)
		}
	}

	// SQLite serializes writers; one connection also keeps :memory: shared.
	return open("sqlite", path, fmt.Sprintf("sqlite catalog %q", path), func(conn *sql.DB) {
		conn.SetMaxOpenConns(1)
	})
}
