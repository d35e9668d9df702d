// Package storage contains the logic for storing application data into a local SQLite database.
package storage

import (
	"bytes"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"slices"

	"github.com/ErikKalkoken/go-set"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage provides access to the local database.
type Storage struct {
	dbRO *sql.DB
	dbRW *sql.DB
}

// New returns a new storage object.
func New(dbRW *sql.DB, dbRO *sql.DB) *Storage {
	st := &Storage{dbRO: dbRO, dbRW: dbRW}
	return st
}

// InitDB initializes the database and returns two connections:
// a connection for reading & writing and a read-only connection.
// Pending migrations are applied.
func InitDB(dsn string) (dbRW *sql.DB, dbRO *sql.DB, err error) {
	v := url.Values{}
	v.Add("_fk", "on")
	v.Add("_journal_mode", "WAL")
	v.Add("_synchronous", "normal")
	v.Add("_busy_timeout", "5000")
	slog.Debug("Connecting to sqlite", "dsn", dsn)
	dbRW, err = sql.Open("sqlite3", fmt.Sprintf("%s?%s", dsn, v.Encode()))
	if err != nil {
		return nil, nil, fmt.Errorf("open RW database %s: %w", dsn, err)
	}
	dbRW.SetMaxOpenConns(1)
	if err := ApplyMigrations(dbRW); err != nil {
		dbRW.Close()
		return nil, nil, err
	}
	v.Add("mode", "ro")
	dbRO, err = sql.Open("sqlite3", fmt.Sprintf("%s?%s", dsn, v.Encode()))
	if err != nil {
		dbRW.Close()
		return nil, nil, fmt.Errorf("open RO database %s: %w", dsn, err)
	}
	slog.Info("Connected to database", "dsn", dsn)
	return dbRW, dbRO, nil
}

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS migrations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    name TEXT NOT NULL,
    UNIQUE (name)
);
`

// ApplyMigrations applies all migrations, which have not yet been applied.
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(createMigrationsTable); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}
	applied, err := listMigrations(db)
	if err != nil {
		return err
	}
	entries, err := embedMigrations.ReadDir("migrations")
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	var count int
	for _, name := range names {
		if applied.Contains(name) {
			continue
		}
		if err := applyMigration(db, name); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
		count++
	}
	if count > 0 {
		slog.Info("Migrations applied", "count", count)
	}
	return nil
}

func applyMigration(db *sql.DB, name string) error {
	f, err := embedMigrations.Open(path.Join("migrations", name))
	if err != nil {
		return err
	}
	defer f.Close()
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, f); err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(buf.String()); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (name) VALUES (?);", name); err != nil {
		return err
	}
	return tx.Commit()
}

func listMigrations(db *sql.DB) (set.Set[string], error) {
	var names set.Set[string]
	rows, err := db.Query("SELECT name FROM migrations;")
	if err != nil {
		return names, err
	}
	defer rows.Close()
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return names, err
		}
		names.Add(n)
	}
	if err := rows.Err(); err != nil {
		return names, err
	}
	return names, nil
}

// convertGetError converts the no rows error into the app's not found error.
func convertGetError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return app.ErrNotFound
	}
	return err
}

func newNullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
