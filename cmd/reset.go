package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress (answers, mistakes, stars and unlocks)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Erase all progress? Settings are kept. [y/N] ") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		st := openStores()
		defer st.Close()
		if err := st.requirePersistent(); err != nil {
			return err
		}

		st.progress.Reset(cmd.Context())
		log.Info("Progress reset")
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// confirm prints prompt and reports whether the reply starts with y.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
