package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

type cliGetter func() *cli

// --- features ---

func newFeaturesCmd(get cliGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List all features and whether their settings were modified",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tSTATUS")
			for _, f := range app.Features() {
				status := "default"
				if !c.settings.IsDefault(f) {
					status = "modified"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Key(), f.DisplayName(), status)
			}
			return w.Flush()
		},
	}
}

// --- reset ---

func newResetCmd(get cliGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <feature|all>",
		Short: "Restore the default settings of a feature",
		Long: `Restore the default settings of a feature.

Resetting all features requires the power user tools.

Examples:
  emuprefsctl reset gameAudio
  emuprefsctl reset all --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			f, err := app.ParseFeature(args[0])
			if err != nil {
				return err
			}
			if err := c.request(c.actions.ResetFeature(f)); err != nil {
				return err
			}
			if f.IsSentinel() {
				fmt.Fprintln(cmd.OutOrStdout(), "All features reset to defaults")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s reset to defaults\n", f.DisplayName())
			}
			return nil
		},
	}
}

// --- bulk actions ---

func newClearAutoSavesCmd(get cliGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-auto-saves",
		Short: "Delete the auto save states of every game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			return c.request(c.actions.ClearAutoSaveStates())
		},
	}
}

func newResetArtworkCmd(get cliGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-artwork",
		Short: "Reset the artwork of every game to the one from the games database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			return c.request(c.actions.ResetAllArtwork())
		},
	}
}

func newCopyTokenCmd(get cliGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "copy-token",
		Short: "Print the refresh token of the Google Drive sync account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			return c.request(c.actions.CopySyncToken())
		},
	}
}

// --- toggles ---

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not on or off: %w", s, app.ErrInvalid)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func newToggleCmd(get cliGetter, use, short, name string, getter func(c *cli) bool, setter func(c *cli, v bool)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [on|off]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			if len(args) == 1 {
				v, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				setter(c, v)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, onOff(getter(c)))
			return nil
		},
	}
}

func newPowerUserCmd(get cliGetter) *cobra.Command {
	return newToggleCmd(
		get,
		"power-user",
		"Show or change whether the power user tools are enabled",
		"Power User Tools",
		func(c *cli) bool { return c.settings.PowerUserEnabled() },
		func(c *cli, v bool) { c.settings.SetPowerUserEnabled(v) },
	)
}

func newProCmd(get cliGetter) *cobra.Command {
	return newToggleCmd(
		get,
		"pro",
		"Show or change whether pro is unlocked",
		"Pro",
		func(c *cli) bool { return c.settings.ProEnabled() },
		func(c *cli, v bool) { c.settings.SetProEnabled(v) },
	)
}
