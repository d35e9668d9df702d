package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (st *Storage) GetDictEntry(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := st.dbRO.QueryRowContext(ctx, "SELECT value FROM dictionary WHERE key = ?;", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("get dict entry for key %s: %w", key, err)
	}
	return v, true, nil
}

func (st *Storage) DeleteDictEntry(ctx context.Context, key string) error {
	if _, err := st.dbRW.ExecContext(ctx, "DELETE FROM dictionary WHERE key = ?;", key); err != nil {
		return fmt.Errorf("delete dict entry for key %s: %w", key, err)
	}
	return nil
}

func (st *Storage) SetDictEntry(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO dictionary (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
	if _, err := st.dbRW.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("set dict entry for key %s: %w", key, err)
	}
	return nil
}

// ListDictKeys returns the keys of all dictionary entries in alphabetical order.
func (st *Storage) ListDictKeys(ctx context.Context) ([]string, error) {
	rows, err := st.dbRO.QueryContext(ctx, "SELECT key FROM dictionary ORDER BY key;")
	if err != nil {
		return nil, fmt.Errorf("list dict keys: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("list dict keys: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dict keys: %w", err)
	}
	return keys, nil
}
