// Package summarizer produces extractive summaries by ranking sentences with
// PageRank over a word-overlap similarity graph.
package summarizer

import (
	"cmp"
	"slices"
	"strings"
)

// Summarizer holds immutable options and is safe for concurrent use.
type Summarizer struct {
	opts Options
}

func New(opts Options) (*Summarizer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Summarizer{opts: opts}, nil
}

// Summarize summarizes text with the default options.
func Summarize(text string) (string, error) {
	s := &Summarizer{opts: DefaultOptions()}
	return s.Summarize(text)
}

func (s *Summarizer) Options() Options {
	return s.opts
}

func (s *Summarizer) Summarize(text string) (string, error) {
	summary, err := s.Run(text)
	if err != nil {
		return "", err
	}
	return summary.Text, nil
}

// Run splits, ranks and selects, returning the summary with diagnostics.
// Inputs with fewer than MinSentences sentences come back unchanged.
func (s *Summarizer) Run(text string) (*Summary, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	sentences := SplitSentences(text)
	if !ShouldSummarize(len(sentences), s.opts.MinSentences) {
		return &Summary{
			Text:          text,
			SentenceCount: len(sentences),
			Selected:      []RankedSentence{},
			Converged:     true,
			Bypassed:      true,
		}, nil
	}

	result := Rank(BuildGraph(sentences), s.opts)
	ranked := RankSentences(sentences, result.Scores)
	selected := Select(ranked, SummaryCount(len(sentences), s.opts.Ratio))

	return &Summary{
		Text:          Assemble(selected),
		SentenceCount: len(sentences),
		Selected:      selected,
		Iterations:    result.Iterations,
		Converged:     result.Converged,
	}, nil
}

// Rank scores every sentence of text, highest first, without the short-input
// bypass.
func (s *Summarizer) Rank(text string) ([]RankedSentence, Result, error) {
	if text == "" {
		return nil, Result{}, ErrEmptyInput
	}

	sentences := SplitSentences(text)
	result := Rank(BuildGraph(sentences), s.opts)

	return RankSentences(sentences, result.Scores), result, nil
}

// RankSentences pairs sentences with their scores and sorts them by
// descending score. The sort is stable, so ties keep reading order.
func RankSentences(sentences []string, scores []float64) []RankedSentence {
	ranked := make([]RankedSentence, len(sentences))
	for i, sentence := range sentences {
		ranked[i] = RankedSentence{Index: i, Text: sentence, Score: scores[i]}
	}

	slices.SortStableFunc(ranked, func(a, b RankedSentence) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return ranked
}

// Select takes the count best ranked sentences and restores reading order.
func Select(ranked []RankedSentence, count int) []RankedSentence {
	count = min(count, len(ranked))

	selected := slices.Clone(ranked[:count])
	slices.SortFunc(selected, func(a, b RankedSentence) int {
		return cmp.Compare(a.Index, b.Index)
	})

	return selected
}

func Assemble(selected []RankedSentence) string {
	texts := make([]string, len(selected))
	for i, sentence := range selected {
		texts[i] = sentence.Text
	}
	return strings.Join(texts, ". ") + "."
}
