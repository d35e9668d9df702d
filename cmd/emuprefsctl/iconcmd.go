package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings"
)

func newIconCmd(get cliGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Manage the alternate app icon",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List all app icons by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			current := c.icons.Current()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, cat := range app.AppIconCategories() {
				fmt.Fprintf(w, "%s\n", cat)
				for _, icon := range c.icons.Catalog(cat) {
					var mark, tier string
					if icon == current {
						mark = "✓"
					}
					if icon.IsPaid() {
						tier = "Pro"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\tby %s\t%s\n", mark, icon.ID, icon.Name, icon.Author, tier)
				}
			}
			return w.Flush()
		},
	}
	set := &cobra.Command{
		Use:   "set <id>",
		Short: "Change the app icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			icon, err := app.AppIconByID(args[0])
			if err != nil {
				return err
			}
			if !c.icons.Select(icon) {
				return fmt.Errorf("icon %s not selected: %w", icon.ID, app.ErrInvalid)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "App icon changed to %s\n", icon.Name)
			return nil
		},
	}
	cmd.AddCommand(list, set)
	return cmd
}

func newSettingsCmd(get cliGetter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the settings",
	}
	show := &cobra.Command{
		Use:   "show [feature...]",
		Short: "Show the current settings as YAML",
		Long: `Show the current settings as YAML.

Shows all features when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			var features []app.Feature
			for _, k := range args {
				f, err := app.ParseFeature(k)
				if err != nil {
					return err
				}
				features = append(features, f)
			}
			data, err := c.settings.Dump(features...)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	var known bool
	keys := &cobra.Command{
		Use:   "keys",
		Short: "List the keys of all stored values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			kk := c.prefs.Keys()
			if known {
				kk = settings.Keys()
			}
			for _, k := range kk {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
	keys.Flags().BoolVar(&known, "known", false, "list the keys of all feature options instead")
	unset := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a stored value, so that its default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := get()
			k := args[0]
			if !c.prefs.Exists(k) {
				return fmt.Errorf("key %s: %w", k, app.ErrNotFound)
			}
			c.prefs.RemoveValue(k)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", k)
			return nil
		},
	}
	cmd.AddCommand(show, keys, unset)
	return cmd
}
