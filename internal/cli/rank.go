package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wgomg/sumrank/internal/summarizer"
)

func newRankCmd(a *app) *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "rank [file]",
		Short: "Print every sentence with its PageRank score, best first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, flags.html)
			if err != nil {
				return err
			}

			s, err := summarizer.New(flags.options(cmd, a.cfg.Options()))
			if err != nil {
				return err
			}

			ranked, result, err := s.Rank(text)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), emptyInputMessage)
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %d sentences, %d iterations, converged=%v\n", len(ranked), result.Iterations, result.Converged)
			for _, sentence := range ranked {
				fmt.Fprintf(out, "%4d  %.6f  %s\n", sentence.Index, sentence.Score, sentence.Text)
			}
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
