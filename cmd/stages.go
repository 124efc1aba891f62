package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/progression"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Inspect challenge stages",
}

var stagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stages with stars, best time and lock state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStores()
		defer st.Close()

		snap := st.progress.Load(cmd.Context())
		return writeStages(cmd.OutOrStdout(), catalog.Default(), snap)
	},
}

func init() {
	stagesCmd.AddCommand(stagesListCmd)
}

func writeStages(w io.Writer, cat *catalog.Catalog, snap progress.Snapshot) error {
	gate := progression.UnlockStages(snap, cat.Stages())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCHAPTER\tDIFFICULTY\tSTARS\tBEST\tSTATUS")
	for _, s := range cat.Stages() {
		status := "locked"
		switch {
		case snap.IsCompleted(s.ID):
			status = "cleared"
		case gate.IsUnlocked(s.ID):
			status = "open"
		}
		best := "-"
		if ms := snap.StageBestTimeMs[s.ID]; ms > 0 {
			best = formatDuration(ms)
		}
		stars := snap.StageStars[s.ID]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			s.ID, s.Chapter.DisplayName(), s.Difficulty,
			strings.Repeat("★", stars)+strings.Repeat("☆", 3-stars),
			best, status)
	}
	return tw.Flush()
}

// formatDuration renders milliseconds as m:ss.
func formatDuration(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
