package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wgomg/sumrank/internal/engine"
	"github.com/wgomg/sumrank/internal/summarizer"
	"github.com/wgomg/sumrank/internal/utils"
)

const emptyInputMessage = "Please enter text to summarize."

type inputFlags struct {
	html          bool
	engine        string
	maxIterations int
	damping       float64
	delta         float64
	ratio         float64
	minSentences  int
}

func (f *inputFlags) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.html, "html", false, "treat input as HTML and summarize its text content")
	flags.IntVar(&f.maxIterations, "max-iterations", summarizer.DefaultMaxIterations, "PageRank iteration cap")
	flags.Float64Var(&f.damping, "damping", summarizer.DefaultDampingFactor, "PageRank damping factor")
	flags.Float64Var(&f.delta, "delta", summarizer.DefaultDelta, "convergence sensitivity")
	flags.Float64Var(&f.ratio, "ratio", summarizer.DefaultRatio, "fraction of sentences to keep")
	flags.IntVar(&f.minSentences, "min-sentences", summarizer.DefaultMinSentences, "shorter inputs are returned unchanged")
}

// options starts from the loaded configuration and applies only the flags
// given on the command line.
func (f *inputFlags) options(cmd *cobra.Command, base summarizer.Options) summarizer.Options {
	flags := cmd.Flags()
	if flags.Changed("max-iterations") {
		base.MaxIterations = f.maxIterations
	}
	if flags.Changed("damping") {
		base.DampingFactor = f.damping
	}
	if flags.Changed("delta") {
		base.Delta = f.delta
	}
	if flags.Changed("ratio") {
		base.Ratio = f.ratio
	}
	if flags.Changed("min-sentences") {
		base.MinSentences = f.minSentences
	}
	return base
}

func newSummarizeCmd(a *app) *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize a file or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, flags.html)
			if err != nil {
				return err
			}

			name := flags.engine
			if name == "" {
				name = a.cfg.Summarizer.Engine
			}

			cache, err := engine.NewCache(0)
			if err != nil {
				return err
			}
			eng, err := engine.New(name, flags.options(cmd, a.cfg.Options()), cache, a.logger)
			if err != nil {
				return err
			}

			summary, err := eng.Summarize(cmd.Context(), text)
			if errors.Is(err, summarizer.ErrEmptyInput) {
				fmt.Fprintln(cmd.ErrOrStderr(), emptyInputMessage)
				return err
			}
			if err != nil {
				return err
			}

			a.logger.Debug(nil, "Summarized %d sentences into %d with engine=%s",
				summary.SentenceCount, len(summary.Selected), eng.Name())

			fmt.Fprintln(cmd.OutOrStdout(), summary.Text)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&flags.engine, "engine", "", "summarization engine (pagerank, lexrank)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string, isHTML bool) (string, error) {
	var (
		raw []byte
		err error
	)
	if len(args) == 1 && args[0] != "-" {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}

	if !isHTML {
		return string(raw), nil
	}
	return utils.ExtractText(string(raw))
}
