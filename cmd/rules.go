package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pandamj/internal/catalog"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Browse strategy rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules and their mnemonics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chapter, _ := cmd.Flags().GetString("chapter")
		return writeRules(cmd.OutOrStdout(), catalog.Default(), catalog.ChapterID(chapter))
	},
}

func init() {
	rulesListCmd.Flags().String("chapter", "", "Only list one chapter: opening, midgame, meld, defense or listening")
	rulesCmd.AddCommand(rulesListCmd)
}

func writeRules(w io.Writer, cat *catalog.Catalog, chapter catalog.ChapterID) error {
	chapters := catalog.AllChapters()
	if chapter != "" {
		if !chapter.Valid() {
			return fmt.Errorf("unknown chapter %q", chapter)
		}
		chapters = []catalog.ChapterID{chapter}
	}

	for i, ch := range chapters {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%s)\n", ch.DisplayName(), ch)
		for _, r := range cat.RulesByChapter(ch) {
			fmt.Fprintf(w, "%s  %s\n", r.ID, r.Title)
			fmt.Fprintf(w, "    %q\n", r.Mnemonic)
			if len(r.ExampleQuestionIDs) > 0 {
				fmt.Fprintf(w, "    examples: %s\n", strings.Join(r.ExampleQuestionIDs, ", "))
			}
		}
	}
	return nil
}
