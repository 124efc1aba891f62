package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/pandamj/internal/catalog"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Review or clear the mistake set",
}

var mistakesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions in the mistake set, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStores()
		defer st.Close()

		return writeMistakes(cmd.OutOrStdout(), catalog.Default(), st.progress.Mistakes(cmd.Context()))
	},
}

var mistakesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the mistake set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStores()
		defer st.Close()
		if err := st.requirePersistent(); err != nil {
			return err
		}

		n := len(st.progress.Mistakes(cmd.Context()))
		st.progress.ClearMistakes(cmd.Context())
		log.WithField("count", n).Info("Cleared mistakes")
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d mistakes.\n", n)
		return nil
	},
}

func init() {
	mistakesCmd.AddCommand(mistakesListCmd)
	mistakesCmd.AddCommand(mistakesClearCmd)
}

func writeMistakes(w io.Writer, cat *catalog.Catalog, ids []string) error {
	if len(ids) == 0 {
		fmt.Fprintln(w, "No mistakes to review.")
		return nil
	}
	for _, id := range ids {
		q, ok := cat.Question(id)
		if !ok {
			fmt.Fprintf(w, "%s  (no longer in the catalog)\n", id)
			continue
		}
		fmt.Fprintf(w, "%s  [%s]  %s\n", id, q.Chapter.DisplayName(), q.Prompt)
	}
	return nil
}
