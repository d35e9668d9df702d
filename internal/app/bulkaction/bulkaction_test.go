package bulkaction_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/bulkaction"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage/testutil"
)

func TestClearAutoSaveStates(t *testing.T) {
	db, st, factory := testutil.NewDBInMemory()
	defer db.Close()
	ctx := context.Background()
	c := bulkaction.New(st)
	t.Run("should delete auto save states of all games", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		g1 := factory.CreateGame()
		g2 := factory.CreateGame()
		factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g1.ID, Type: app.SaveStateAuto})
		factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g1.ID, Type: app.SaveStateAuto})
		factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g2.ID, Type: app.SaveStateAuto})
		quick := factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g1.ID, Type: app.SaveStateQuick})
		locked := factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g2.ID, Type: app.SaveStateLocked})
		// when
		r, err := c.ClearAutoSaveStates(ctx)
		// then
		require.NoError(t, err)
		assert.Equal(t, 2, r.Games)
		assert.Equal(t, 2, r.Processed)
		assert.Equal(t, 3, r.Deleted)
		assert.Equal(t, 0, r.Failed)
		n, err := st.CountSaveStates(ctx, app.SaveStateAuto)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		_, err = st.GetSaveState(ctx, quick.ID)
		assert.NoError(t, err)
		_, err = st.GetSaveState(ctx, locked.ID)
		assert.NoError(t, err)
	})
	t.Run("should leave games without auto save states unchanged", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		g := factory.CreateGame()
		factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g.ID, Type: app.SaveStateGeneral})
		factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g.ID, Type: app.SaveStateQuick})
		// when
		r, err := c.ClearAutoSaveStates(ctx)
		// then
		require.NoError(t, err)
		assert.Equal(t, 0, r.Deleted)
		assert.Equal(t, 1, r.Processed)
		oo, err := st.ListAllSaveStatesForGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Len(t, oo, 2)
	})
	t.Run("should do nothing when there are no games", func(t *testing.T) {
		testutil.TruncateTables(db)
		r, err := c.ClearAutoSaveStates(ctx)
		require.NoError(t, err)
		assert.Equal(t, bulkaction.Report{}, r)
	})
}

func TestResetAllArtwork(t *testing.T) {
	db, st, factory := testutil.NewDBInMemory()
	defer db.Close()
	ctx := context.Background()
	c := bulkaction.New(st)
	t.Run("should reset artwork of games with known artwork", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		m := factory.CreateGameMetadata()
		g1 := factory.CreateGame(storage.CreateGameParams{
			Identifier: m.Identifier,
			ArtworkURL: "https://example.com/custom1.png",
		})
		g2 := factory.CreateGame(storage.CreateGameParams{
			ArtworkURL: "https://example.com/custom2.png",
		})
		// when
		r, err := c.ResetAllArtwork(ctx)
		// then
		require.NoError(t, err)
		assert.Equal(t, 2, r.Games)
		assert.Equal(t, 2, r.Processed)
		assert.Equal(t, 1, r.Changed)
		x1, err := st.GetGame(ctx, g1.ID)
		require.NoError(t, err)
		assert.Equal(t, m.ArtworkURL, x1.ArtworkURL)
		x2, err := st.GetGame(ctx, g2.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/custom2.png", x2.ArtworkURL)
	})
}

func TestPartialFailure(t *testing.T) {
	db, st, factory := testutil.NewDBInMemory()
	defer db.Close()
	ctx := context.Background()
	c := bulkaction.New(st)
	// addFailingTrigger makes statements on a table abort when the condition holds.
	addFailingTrigger := func(t *testing.T, on, when string) {
		t.Helper()
		q := fmt.Sprintf("CREATE TRIGGER fail_game BEFORE %s WHEN %s BEGIN SELECT RAISE(ABORT, 'boom'); END;", on, when)
		_, err := db.Exec(q)
		require.NoError(t, err)
		t.Cleanup(func() {
			db.Exec("DROP TRIGGER IF EXISTS fail_game;")
		})
	}
	t.Run("should clear auto save states of other games when one game fails", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		var games []*app.Game
		for range 3 {
			g := factory.CreateGame()
			factory.CreateSaveState(storage.CreateSaveStateParams{GameID: g.ID, Type: app.SaveStateAuto})
			games = append(games, g)
		}
		addFailingTrigger(t, "DELETE ON save_states", fmt.Sprintf("OLD.game_id = %d", games[1].ID))
		// when
		r, err := c.ClearAutoSaveStates(ctx)
		// then
		require.NoError(t, err)
		assert.Equal(t, bulkaction.Report{Games: 3, Processed: 2, Deleted: 2, Failed: 1}, r)
		for i, want := range []int{0, 1, 0} {
			oo, err := st.ListSaveStatesForGame(ctx, games[i].ID, app.SaveStateAuto)
			require.NoError(t, err)
			assert.Len(t, oo, want, "game %d", i)
		}
	})
	t.Run("should reset artwork of other games when one game fails", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		var games []*app.Game
		var metadata []*app.GameMetadata
		for range 3 {
			m := factory.CreateGameMetadata()
			g := factory.CreateGame(storage.CreateGameParams{
				Identifier: m.Identifier,
				ArtworkURL: "https://example.com/custom.png",
			})
			games = append(games, g)
			metadata = append(metadata, m)
		}
		addFailingTrigger(t, "UPDATE ON games", fmt.Sprintf("OLD.id = %d", games[1].ID))
		// when
		r, err := c.ResetAllArtwork(ctx)
		// then
		require.NoError(t, err)
		assert.Equal(t, 3, r.Games)
		assert.Equal(t, 2, r.Processed)
		assert.Equal(t, 2, r.Changed)
		assert.Equal(t, 1, r.Failed)
		for i, want := range []string{metadata[0].ArtworkURL, "https://example.com/custom.png", metadata[2].ArtworkURL} {
			g, err := st.GetGame(ctx, games[i].ID)
			require.NoError(t, err)
			assert.Equal(t, want, g.ArtworkURL, "game %d", i)
		}
	})
}

func TestListGamesFailure(t *testing.T) {
	db, st, factory := testutil.NewDBInMemory()
	factory.CreateSaveState(storage.CreateSaveStateParams{Type: app.SaveStateAuto})
	c := bulkaction.New(st)
	db.Close()
	ctx := context.Background()
	t.Run("clear auto save states returns error", func(t *testing.T) {
		_, err := c.ClearAutoSaveStates(ctx)
		assert.Error(t, err)
	})
	t.Run("reset all artwork returns error", func(t *testing.T) {
		_, err := c.ResetAllArtwork(ctx)
		assert.Error(t, err)
	})
}

func TestStart(t *testing.T) {
	db, st, factory := testutil.NewDBInMemory()
	defer db.Close()
	ctx := context.Background()
	c := bulkaction.New(st)
	t.Run("should run action in the background", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		factory.CreateSaveState(storage.CreateSaveStateParams{Type: app.SaveStateAuto})
		// when
		task := c.Start(bulkaction.ClearAutoSaveStates)
		<-task.Done()
		// then
		r, err := task.Result()
		require.NoError(t, err)
		assert.Equal(t, 1, r.Deleted)
		assert.False(t, c.IsRunning(bulkaction.ClearAutoSaveStates))
		n, err := st.CountSaveStates(ctx, app.SaveStateAuto)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
	t.Run("can wait for task", func(t *testing.T) {
		testutil.TruncateTables(db)
		factory.CreateGame()
		r, err := c.Start(bulkaction.ResetAllArtwork).Wait()
		require.NoError(t, err)
		assert.Equal(t, 1, r.Games)
	})
	t.Run("should return error for unknown action", func(t *testing.T) {
		_, err := c.Run(ctx, bulkaction.Kind(99))
		assert.ErrorIs(t, err, app.ErrInvalid)
	})
}

func TestReportSummary(t *testing.T) {
	var cases = []struct {
		name string
		kind bulkaction.Kind
		r    bulkaction.Report
		want string
	}{
		{"clear", bulkaction.ClearAutoSaveStates, bulkaction.Report{Games: 2, Deleted: 3}, "Deleted 3 auto save states from 2 games"},
		{"artwork", bulkaction.ResetAllArtwork, bulkaction.Report{Games: 3, Changed: 1}, "Reset artwork for 1 game"},
		{"failures", bulkaction.ResetAllArtwork, bulkaction.Report{Changed: 2, Failed: 1}, "Reset artwork for 2 games, 1 game failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.Summary(tc.kind))
		})
	}
}
