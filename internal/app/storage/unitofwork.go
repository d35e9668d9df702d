package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

// UnitOfWork groups changes to the game collection into one transaction.
// Changes become visible with Commit.
//
// A failed operation does not abort the unit of work.
// The caller decides whether to continue with the next item or to roll back.
type UnitOfWork struct {
	ctx context.Context
	tx  *sql.Tx
}

// Begin starts a new unit of work.
// The read connections of the storage must not be used while a unit of work is open
// when the storage has only one connection.
func (st *Storage) Begin(ctx context.Context) (*UnitOfWork, error) {
	tx, err := st.dbRW.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}
	return &UnitOfWork{ctx: ctx, tx: tx}, nil
}

// DeleteSaveState deletes a save state.
func (u *UnitOfWork) DeleteSaveState(id int64) error {
	r, err := u.tx.ExecContext(u.ctx, "DELETE FROM save_states WHERE id = ?;", id)
	if err != nil {
		return fmt.Errorf("delete save state %d: %w", id, err)
	}
	n, err := r.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete save state %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete save state %d: %w", id, app.ErrNotFound)
	}
	return nil
}

// ResetArtwork restores the artwork of a game to the one provided by the games database.
// Reports whether the artwork was changed.
// The artwork is left unchanged when the games database has no artwork for a game.
func (u *UnitOfWork) ResetArtwork(game *app.Game) (bool, error) {
	var url string
	err := u.tx.QueryRowContext(u.ctx, "SELECT artwork_url FROM game_metadata WHERE identifier = ?;", game.Identifier).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && url == "") {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reset artwork for game %d: %w", game.ID, err)
	}
	if _, err := u.tx.ExecContext(u.ctx, "UPDATE games SET artwork_url = ? WHERE id = ?;", url, game.ID); err != nil {
		return false, fmt.Errorf("reset artwork for game %d: %w", game.ID, err)
	}
	return true, nil
}

// Commit persists all changes of this unit of work.
func (u *UnitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("commit unit of work: %w", err)
	}
	return nil
}

// Rollback discards all changes of this unit of work.
// Calling Rollback after Commit is a no-op.
func (u *UnitOfWork) Rollback() error {
	err := u.tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback unit of work: %w", err)
	}
	return nil
}
