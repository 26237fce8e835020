package engine

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"github.com/ramenjuniti/lexrankmmr"

	"github.com/wgomg/sumrank/internal/summarizer"
	"github.com/wgomg/sumrank/internal/utils"
)

// lexrankmmr splits its input on the ideographic full stop.
const lexrankDelimiter = "。"

// lexrankmmr also treats these as sentence ends. Sentences coming out of
// SplitSentences never hold the ASCII ones, so only the full-width marks
// need masking to keep one lexrankmmr line per sentence.
var sentenceEndMasker = strings.NewReplacer("。", ",", "！", ",", "？", ",")

// LexRank ranks sentences with LexRank and MMR re-ranking. It reuses the
// sentence splitting, short-input bypass, summary size and assembly of the
// PageRank engine so both produce comparable output. Scores are not reported.
type LexRank struct {
	summarizer *summarizer.Summarizer
	cache      *Cache
	logger     *utils.Logger
}

func NewLexRank(s *summarizer.Summarizer, cache *Cache, logger *utils.Logger) *LexRank {
	return &LexRank{summarizer: s, cache: cache, logger: logger}
}

func (l *LexRank) Name() string {
	return "lexrank"
}

func (l *LexRank) Summarize(ctx context.Context, text string) (*summarizer.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, summarizer.ErrEmptyInput
	}

	opts := l.summarizer.Options()
	key := utils.CacheKey(l.Name()+"|"+opts.Fingerprint(), text)
	if summary, ok := l.cache.Get(key); ok {
		return summary, nil
	}

	sentences := summarizer.SplitSentences(text)
	if !summarizer.ShouldSummarize(len(sentences), opts.MinSentences) {
		return l.summarizer.Run(text)
	}

	count := summarizer.SummaryCount(len(sentences), opts.Ratio)

	data, err := lexrankmmr.New(
		lexrankmmr.MaxLines(count),
		lexrankmmr.MaxCharacters(len(text)+len(sentences)*len(lexrankDelimiter)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "initialize lexrankmmr")
	}

	masked := make([]string, len(sentences))
	for i, sentence := range sentences {
		masked[i] = sentenceEndMasker.Replace(sentence)
	}

	if err := data.Summarize(strings.Join(masked, lexrankDelimiter) + lexrankDelimiter); err != nil {
		return nil, errors.Wrap(err, "lexrank summarization")
	}

	chosen := make([]int, 0, len(data.LineLimitedSummary))
	for _, line := range data.LineLimitedSummary {
		chosen = append(chosen, line.Id)
	}
	selected := pickSentences(sentences, chosen)
	if len(selected) == 0 {
		return nil, errors.Errorf("lexrank selected none of %d sentences", len(sentences))
	}

	summary := &summarizer.Summary{
		Text:          summarizer.Assemble(selected),
		SentenceCount: len(sentences),
		Selected:      selected,
		Converged:     true,
	}

	l.logger.Debug(nil, "LexRank summary: sentences=%d, selected=%d", summary.SentenceCount, len(selected))

	l.cache.Add(key, summary)
	return summary, nil
}

// pickSentences returns the sentences at the chosen positions in reading
// order. Duplicate and out-of-range positions are skipped.
func pickSentences(sentences []string, chosen []int) []summarizer.RankedSentence {
	used := make([]bool, len(sentences))
	selected := make([]summarizer.RankedSentence, 0, len(chosen))

	for _, index := range chosen {
		if index < 0 || index >= len(sentences) || used[index] {
			continue
		}
		used[index] = true
		selected = append(selected, summarizer.RankedSentence{Index: index, Text: sentences[index]})
	}

	slices.SortFunc(selected, func(a, b summarizer.RankedSentence) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return selected
}
