package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

type CreateGameParams struct {
	Identifier string
	Name       string
	GameType   string
	ArtworkURL string
}

func (st *Storage) CreateGame(ctx context.Context, arg CreateGameParams) (int64, error) {
	if arg.Identifier == "" {
		return 0, fmt.Errorf("create game %+v: %w", arg, app.ErrInvalid)
	}
	const q = `
INSERT INTO games (identifier, name, game_type, artwork_url)
VALUES (?, ?, ?, ?);`
	r, err := st.dbRW.ExecContext(ctx, q, arg.Identifier, arg.Name, arg.GameType, newNullString(arg.ArtworkURL))
	if err != nil {
		return 0, fmt.Errorf("create game %+v: %w", arg, err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create game %+v: %w", arg, err)
	}
	return id, nil
}

const selectGame = `SELECT id, identifier, name, game_type, artwork_url FROM games`

func (st *Storage) GetGame(ctx context.Context, id int64) (*app.Game, error) {
	row := st.dbRO.QueryRowContext(ctx, selectGame+" WHERE id = ?;", id)
	g, err := scanGame(row)
	if err != nil {
		return nil, fmt.Errorf("get game %d: %w", id, convertGetError(err))
	}
	return g, nil
}

// ListGames returns all games ordered by name.
func (st *Storage) ListGames(ctx context.Context) ([]*app.Game, error) {
	rows, err := st.dbRO.QueryContext(ctx, selectGame+" ORDER BY name, id;")
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()
	var games []*app.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("list games: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(r rowScanner) (*app.Game, error) {
	var g app.Game
	var artwork sql.NullString
	if err := r.Scan(&g.ID, &g.Identifier, &g.Name, &g.GameType, &artwork); err != nil {
		return nil, err
	}
	g.ArtworkURL = artwork.String
	return &g, nil
}

func (st *Storage) UpdateOrCreateGameMetadata(ctx context.Context, arg app.GameMetadata) error {
	const q = `
INSERT INTO game_metadata (identifier, name, artwork_url) VALUES (?, ?, ?)
ON CONFLICT (identifier) DO UPDATE SET name = excluded.name, artwork_url = excluded.artwork_url;`
	if _, err := st.dbRW.ExecContext(ctx, q, arg.Identifier, arg.Name, arg.ArtworkURL); err != nil {
		return fmt.Errorf("update or create game metadata %+v: %w", arg, err)
	}
	return nil
}

func (st *Storage) GetGameMetadata(ctx context.Context, identifier string) (*app.GameMetadata, error) {
	var m app.GameMetadata
	const q = `SELECT identifier, name, artwork_url FROM game_metadata WHERE identifier = ?;`
	err := st.dbRO.QueryRowContext(ctx, q, identifier).Scan(&m.Identifier, &m.Name, &m.ArtworkURL)
	if err != nil {
		return nil, fmt.Errorf("get game metadata %s: %w", identifier, convertGetError(err))
	}
	return &m, nil
}

// UpdateGameArtwork sets a custom artwork for a game. An empty URL removes the artwork.
func (st *Storage) UpdateGameArtwork(ctx context.Context, gameID int64, artworkURL string) error {
	_, err := st.dbRW.ExecContext(ctx, "UPDATE games SET artwork_url = ? WHERE id = ?;", newNullString(artworkURL), gameID)
	if err != nil {
		return fmt.Errorf("update artwork for game %d: %w", gameID, err)
	}
	return nil
}
