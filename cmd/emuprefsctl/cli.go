package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ErikKalkoken/emuprefs/internal/app/bulkaction"
	"github.com/ErikKalkoken/emuprefs/internal/app/iconselector"
	"github.com/ErikKalkoken/emuprefs/internal/app/poweruser"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage"
	"github.com/ErikKalkoken/emuprefs/internal/config"
	"github.com/ErikKalkoken/emuprefs/internal/dictionary"
)

var errAborted = errors.New("aborted by user")

// cli holds the services used by the commands.
type cli struct {
	actions  *poweruser.Actions
	gate     *poweruser.Gate
	icons    *iconselector.Selector
	prefs    *dictionary.Preferences
	settings *settings.Settings
	st       *storage.Storage
	term     *terminal
}

func newCLI(st *storage.Storage, term *terminal) *cli {
	prefs := dictionary.New(st)
	s := settings.New(prefs)
	icons := iconselector.New(s, iconselector.NewStoredPlatform(prefs), term)
	c := &cli{
		icons:    icons,
		prefs:    prefs,
		settings: s,
		st:       st,
		term:     term,
	}
	c.gate = poweruser.NewGate(s, func() poweruser.Presenter {
		return term
	})
	c.actions = poweruser.NewActions(poweruser.ActionsParams{
		Bulk:      bulkaction.New(st),
		Clipboard: term,
		Icons:     icons,
		Notifier:  term,
		Settings:  s,
		Sync:      st,
	})
	return c
}

// request asks for confirmation and runs an action. It waits for started bulk actions to complete.
func (c *cli) request(a poweruser.Action) error {
	var state poweruser.State
	c.gate.OnResolved = func(_ poweruser.Action, s poweruser.State) {
		state = s
	}
	err := c.gate.Request(a)
	if errors.Is(err, poweruser.ErrPowerUserDisabled) {
		return fmt.Errorf("enable them with \"emuprefsctl power-user on\": %w", err)
	}
	if err != nil {
		return err
	}
	c.actions.Wait()
	if state == poweruser.Cancelled {
		return errAborted
	}
	return nil
}

// openFunc opens the storage and returns a function for closing it.
type openFunc func() (*storage.Storage, func(), error)

func openStorage() (*storage.Storage, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dsn, err := cfg.InitDSN()
	if err != nil {
		return nil, nil, err
	}
	dbRW, dbRO, err := storage.InitDB(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database %s: %w", dsn, err)
	}
	closer := func() {
		dbRW.Close()
		dbRO.Close()
	}
	return storage.New(dbRW, dbRO), closer, nil
}

// newRootCmd returns the root command with all sub commands.
func newRootCmd(open openFunc, in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		c        *cli
		closer   func()
		logLevel string
		yes      bool
	)
	root := &cobra.Command{
		Use:           "emuprefsctl",
		Short:         "Manage the advanced settings of the emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := config.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: l})))
			st, cl, err := open()
			if err != nil {
				return err
			}
			closer = cl
			term := newTerminal(in, out, errOut)
			term.autoConfirm = yes
			c = newCLI(st, term)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closer != nil {
				closer()
			}
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "confirm all actions without asking")
	root.PersistentFlags().StringVar(&logLevel, "loglevel", "warn", "level of the logs written to stderr")

	get := func() *cli {
		return c
	}
	root.AddCommand(
		newFeaturesCmd(get),
		newResetCmd(get),
		newClearAutoSavesCmd(get),
		newResetArtworkCmd(get),
		newPowerUserCmd(get),
		newProCmd(get),
		newIconCmd(get),
		newCopyTokenCmd(get),
		newSettingsCmd(get),
	)
	return root
}
