package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

type CreateSaveStateParams struct {
	GameID    int64
	Type      app.SaveStateType
	Name      string
	CreatedAt time.Time
}

// CreateSaveState creates a new save state with a random identifier.
func (st *Storage) CreateSaveState(ctx context.Context, arg CreateSaveStateParams) (*app.SaveState, error) {
	wrapErr := func(err error) error {
		return fmt.Errorf("create save state %+v: %w", arg, err)
	}
	if arg.GameID == 0 {
		return nil, wrapErr(app.ErrInvalid)
	}
	createdAt := arg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	createdAt = createdAt.UTC()
	const q = `
INSERT INTO save_states (identifier, game_id, type, name, created_at, modified_at)
VALUES (?, ?, ?, ?, ?, ?);`
	r, err := st.dbRW.ExecContext(ctx, q, uuid.NewString(), arg.GameID, arg.Type, arg.Name, createdAt, createdAt)
	if err != nil {
		return nil, wrapErr(err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return nil, wrapErr(err)
	}
	return st.GetSaveState(ctx, id)
}

const selectSaveState = `SELECT id, identifier, game_id, type, name, created_at, modified_at FROM save_states`

func (st *Storage) GetSaveState(ctx context.Context, id int64) (*app.SaveState, error) {
	row := st.dbRO.QueryRowContext(ctx, selectSaveState+" WHERE id = ?;", id)
	s, err := scanSaveState(row)
	if err != nil {
		return nil, fmt.Errorf("get save state %d: %w", id, convertGetError(err))
	}
	return s, nil
}

// ListSaveStatesForGame returns the save states of a given type for a game, newest first.
func (st *Storage) ListSaveStatesForGame(ctx context.Context, gameID int64, typ app.SaveStateType) ([]*app.SaveState, error) {
	rows, err := st.dbRO.QueryContext(ctx, selectSaveState+" WHERE game_id = ? AND type = ? ORDER BY created_at DESC, id DESC;", gameID, typ)
	return collectSaveStates(rows, err, fmt.Sprintf("list %s save states for game %d", typ, gameID))
}

// ListAllSaveStatesForGame returns all save states of a game, newest first.
func (st *Storage) ListAllSaveStatesForGame(ctx context.Context, gameID int64) ([]*app.SaveState, error) {
	rows, err := st.dbRO.QueryContext(ctx, selectSaveState+" WHERE game_id = ? ORDER BY created_at DESC, id DESC;", gameID)
	return collectSaveStates(rows, err, fmt.Sprintf("list save states for game %d", gameID))
}

// CountSaveStates returns the number of save states of a type for all games.
func (st *Storage) CountSaveStates(ctx context.Context, typ app.SaveStateType) (int, error) {
	var n int
	if err := st.dbRO.QueryRowContext(ctx, "SELECT COUNT(*) FROM save_states WHERE type = ?;", typ).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s save states: %w", typ, err)
	}
	return n, nil
}

func collectSaveStates(rows *sql.Rows, err error, op string) ([]*app.SaveState, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var oo []*app.SaveState
	for rows.Next() {
		s, err := scanSaveState(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		oo = append(oo, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return oo, nil
}

func scanSaveState(r rowScanner) (*app.SaveState, error) {
	var s app.SaveState
	var identifier string
	if err := r.Scan(&s.ID, &identifier, &s.GameID, &s.Type, &s.Name, &s.CreatedAt, &s.ModifiedAt); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(identifier)
	if err != nil {
		return nil, fmt.Errorf("save state %d: invalid identifier: %w", s.ID, err)
	}
	s.Identifier = id
	return &s, nil
}
