package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

// GetSyncAccount returns the current sync account or [app.ErrNotFound] when sync is not enabled.
func (st *Storage) GetSyncAccount(ctx context.Context) (*app.SyncAccount, error) {
	var a app.SyncAccount
	const q = `SELECT service, refresh_token, updated_at FROM sync_accounts WHERE id = 1;`
	err := st.dbRO.QueryRowContext(ctx, q).Scan(&a.Service, &a.RefreshToken, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get sync account: %w", convertGetError(err))
	}
	return &a, nil
}

type UpdateOrCreateSyncAccountParams struct {
	Service      app.SyncService
	RefreshToken string
}

func (st *Storage) UpdateOrCreateSyncAccount(ctx context.Context, arg UpdateOrCreateSyncAccountParams) error {
	if arg.Service == "" {
		return fmt.Errorf("update or create sync account: %w", app.ErrInvalid)
	}
	const q = `
INSERT INTO sync_accounts (id, service, refresh_token, updated_at) VALUES (1, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    service = excluded.service,
    refresh_token = excluded.refresh_token,
    updated_at = excluded.updated_at;`
	if _, err := st.dbRW.ExecContext(ctx, q, arg.Service, arg.RefreshToken, time.Now().UTC()); err != nil {
		return fmt.Errorf("update or create sync account for %s: %w", arg.Service, err)
	}
	return nil
}

// DeleteSyncAccount removes the sync account, which disables syncing.
func (st *Storage) DeleteSyncAccount(ctx context.Context) error {
	if _, err := st.dbRW.ExecContext(ctx, "DELETE FROM sync_accounts;"); err != nil {
		return fmt.Errorf("delete sync account: %w", err)
	}
	return nil
}
