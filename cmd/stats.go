package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/pandamj/internal/catalog"
	"github.com/abhisek/pandamj/internal/progress"
	"github.com/abhisek/pandamj/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		st := openStores()
		defer st.Close()

		snap := st.progress.Load(cmd.Context())
		report := buildStatsReport(catalog.Default(), snap, time.Now())
		if asJSON {
			return writeStatsJSON(cmd.OutOrStdout(), report)
		}
		return writeStatsText(cmd.OutOrStdout(), report)
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print machine-readable JSON")
}

type overviewReport struct {
	Answered int            `json:"answered"`
	Correct  int            `json:"correct"`
	Accuracy float64        `json:"accuracy"`
	Today    int            `json:"today"`
	Chapters map[string]int `json:"chapters"`
}

type statsReport struct {
	Overall         overviewReport            `json:"overall"`
	ByMode          map[string]overviewReport `json:"byMode"`
	Stars           int                       `json:"stars"`
	MaxStars        int                       `json:"maxStars"`
	UnlockedStages  int                       `json:"unlockedStages"`
	TotalStages     int                       `json:"totalStages"`
	CompletionRate  float64                   `json:"completionRate"`
	NextLockedStage string                    `json:"nextLockedStage,omitempty"`
	Mistakes        int                       `json:"mistakes"`
}

func toOverviewReport(o progress.Overview) overviewReport {
	chapters := make(map[string]int, len(o.StageProgress))
	for ch, n := range o.StageProgress {
		chapters[string(ch)] = n
	}
	return overviewReport{
		Answered: o.TotalAnswered,
		Correct:  o.TotalCorrect,
		Accuracy: o.Accuracy,
		Today:    o.TodayAnswerCount,
		Chapters: chapters,
	}
}

func buildStatsReport(cat *catalog.Catalog, snap progress.Snapshot, now time.Time) statsReport {
	stages := cat.Stages()
	gate := progression.UnlockStages(snap, stages)

	byMode := make(map[string]overviewReport)
	for mode, o := range progress.SummarizeByMode(snap.AnswerHistory, cat.ChapterOf, now) {
		byMode[string(mode)] = toOverviewReport(o)
	}

	return statsReport{
		Overall:         toOverviewReport(progress.Summarize(snap.AnswerHistory, cat.ChapterOf, now)),
		ByMode:          byMode,
		Stars:           lo.Sum(lo.Values(snap.StageStars)),
		MaxStars:        len(stages) * 3,
		UnlockedStages:  len(gate.UnlockedStageIDs),
		TotalStages:     len(stages),
		CompletionRate:  gate.CompletionRate,
		NextLockedStage: gate.NextLockedStageID,
		Mistakes:        len(snap.MistakeQuestionIDs),
	}
}

func writeStatsJSON(w io.Writer, r statsReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeStatsText(w io.Writer, r statsReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCOPE\tANSWERED\tCORRECT\tACCURACY\tTODAY")
	writeOverviewRow(tw, "all", r.Overall)
	for _, mode := range []progress.Mode{progress.ModeExplain, progress.ModeChallenge} {
		writeOverviewRow(tw, string(mode), r.ByMode[string(mode)])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAPTER\tANSWERED")
	for _, ch := range catalog.AllChapters() {
		fmt.Fprintf(tw, "%s\t%d\n", ch.DisplayName(), r.Overall.Chapters[string(ch)])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nStars: %d/%d  Stages unlocked: %d/%d  Mistakes: %d\n",
		r.Stars, r.MaxStars, r.UnlockedStages, r.TotalStages, r.Mistakes)
	if r.NextLockedStage != "" {
		fmt.Fprintf(w, "Next locked stage: %s\n", r.NextLockedStage)
	}
	return nil
}

func writeOverviewRow(w io.Writer, scope string, o overviewReport) {
	fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%d\n", scope, o.Answered, o.Correct, o.Accuracy*100, o.Today)
}
