// Package testutil provides a test database and factories for creating test objects in the storage.
package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/ErikKalkoken/emuprefs/internal/app/storage"
)

// NewDBInMemory creates and returns a database in memory for tests.
//
// The database has only one connection.
// Queries must not be run on the storage while a unit of work is open.
func NewDBInMemory() (*sql.DB, *storage.Storage, Factory) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = 1"); err != nil {
		panic(err)
	}
	if err := storage.ApplyMigrations(db); err != nil {
		panic(err)
	}
	st := storage.New(db, db)
	factory := NewFactory(st, db)
	return db, st, factory
}

// NewDBOnDisk creates and returns a new database on disk for tests.
// The caller is responsible for deleting the file when the tests have concluded.
func NewDBOnDisk(path string) (*sql.DB, *storage.Storage, Factory) {
	p := filepath.Join(path, "emuprefs_test.sqlite")
	dbRW, dbRO, err := storage.InitDB("file:" + p)
	if err != nil {
		panic(err)
	}
	st := storage.New(dbRW, dbRO)
	factory := NewFactory(st, dbRO)
	return dbRW, st, factory
}

// TruncateTables will purge data from all tables. This is meant for tests.
func TruncateTables(db *sql.DB) {
	if _, err := db.Exec("PRAGMA foreign_keys = 0"); err != nil {
		panic(err)
	}
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT IN ('migrations', 'sqlite_sequence');`)
	if err != nil {
		panic(err)
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			panic(err)
		}
		tables = append(tables, name)
	}
	rows.Close()
	for _, n := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s;", n)); err != nil {
			panic(err)
		}
	}
	if _, err := db.Exec("DELETE FROM sqlite_sequence;"); err != nil {
		panic(err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = 1"); err != nil {
		panic(err)
	}
}
