package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/pandamj/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change display preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStores()
		defer st.Close()

		return writeSettings(cmd.OutOrStdout(), st.settings.Load(cmd.Context()))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change one setting (font-scale, sound, handedness)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStores()
		defer st.Close()
		if err := st.requirePersistent(); err != nil {
			return err
		}

		ctx := cmd.Context()
		updated, err := st.settings.Load(ctx).Set(args[0], args[1])
		if err != nil {
			return err
		}
		if err := st.settings.Save(ctx, updated); err != nil {
			return err
		}
		log.WithField("setting", args[0]).Info("Setting updated")
		return writeSettings(cmd.OutOrStdout(), updated)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func writeSettings(w io.Writer, s settings.Settings) error {
	for _, name := range settings.Names() {
		v, err := s.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-11s %s\n", name, v)
	}
	return nil
}
