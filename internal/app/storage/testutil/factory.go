package testutil

import (
	"context"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/icrowley/fake"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage"
)

var gameTypes = []string{"gbc", "gba", "nes", "snes", "n64", "ds", "genesis"}

type Factory struct {
	st   *storage.Storage
	dbRO *sql.DB
	seq  *atomic.Int64
}

func NewFactory(st *storage.Storage, dbRO *sql.DB) Factory {
	f := Factory{st: st, dbRO: dbRO, seq: new(atomic.Int64)}
	return f
}

func (f Factory) RandomTime() time.Time {
	hours := time.Duration(rand.IntN(100_000))
	seconds := time.Duration(rand.IntN(3600))
	d := hours*time.Hour + seconds*time.Second
	return time.Now().Add(-d).UTC()
}

func (f Factory) makeIdentifier() string {
	h := sha1.Sum(fmt.Appendf(nil, "%d-%s", f.seq.Add(1), fake.Word()))
	return hex.EncodeToString(h[:])
}

// CreateGame creates and returns a new game. Empty values are filled with random data.
func (f Factory) CreateGame(args ...storage.CreateGameParams) *app.Game {
	var arg storage.CreateGameParams
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.Identifier == "" {
		arg.Identifier = f.makeIdentifier()
	}
	if arg.Name == "" {
		arg.Name = fake.ProductName()
	}
	if arg.GameType == "" {
		arg.GameType = gameTypes[rand.IntN(len(gameTypes))]
	}
	ctx := context.Background()
	id, err := f.st.CreateGame(ctx, arg)
	if err != nil {
		panic(err)
	}
	g, err := f.st.GetGame(ctx, id)
	if err != nil {
		panic(err)
	}
	return g
}

// CreateSaveState creates and returns a new save state.
// A new game is created when no game is given. The zero value for type is auto.
func (f Factory) CreateSaveState(args ...storage.CreateSaveStateParams) *app.SaveState {
	var arg storage.CreateSaveStateParams
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.GameID == 0 {
		arg.GameID = f.CreateGame().ID
	}
	if arg.Name == "" {
		arg.Name = fake.Title()
	}
	if arg.CreatedAt.IsZero() {
		arg.CreatedAt = f.RandomTime()
	}
	o, err := f.st.CreateSaveState(context.Background(), arg)
	if err != nil {
		panic(err)
	}
	return o
}

// CreateGameMetadata creates and returns game metadata. Empty values are filled with random data.
func (f Factory) CreateGameMetadata(args ...app.GameMetadata) *app.GameMetadata {
	var arg app.GameMetadata
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.Identifier == "" {
		arg.Identifier = f.makeIdentifier()
	}
	if arg.Name == "" {
		arg.Name = fake.ProductName()
	}
	if arg.ArtworkURL == "" {
		arg.ArtworkURL = fmt.Sprintf("https://gamesdb.example.com/artwork/%s.png", arg.Identifier)
	}
	ctx := context.Background()
	if err := f.st.UpdateOrCreateGameMetadata(ctx, arg); err != nil {
		panic(err)
	}
	o, err := f.st.GetGameMetadata(ctx, arg.Identifier)
	if err != nil {
		panic(err)
	}
	return o
}

// CreateSyncAccount creates and returns a sync account. The default service is Google Drive.
func (f Factory) CreateSyncAccount(args ...storage.UpdateOrCreateSyncAccountParams) *app.SyncAccount {
	var arg storage.UpdateOrCreateSyncAccountParams
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.Service == "" {
		arg.Service = app.SyncServiceGoogleDrive
	}
	if arg.RefreshToken == "" {
		arg.RefreshToken = fake.CharactersN(40)
	}
	ctx := context.Background()
	if err := f.st.UpdateOrCreateSyncAccount(ctx, arg); err != nil {
		panic(err)
	}
	o, err := f.st.GetSyncAccount(ctx)
	if err != nil {
		panic(err)
	}
	return o
}
