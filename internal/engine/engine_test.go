package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/sumrank/internal/summarizer"
	"github.com/wgomg/sumrank/internal/utils"
)

const catText = "The cat sat on the mat. The cat was happy. Dogs bark loudly. The mat was red."

const lexText = "Go is a compiled language. Go has goroutines for concurrency. " +
	"Channels let goroutines communicate. The compiler is fast. " +
	"Go programs compile to a single binary. Penguins waddle across southern ice."

func newEngine(t *testing.T, name string, cacheSize int) (Engine, *Cache) {
	t.Helper()

	cache, err := NewCache(cacheSize)
	require.NoError(t, err)

	engine, err := New(name, summarizer.DefaultOptions(), cache, utils.NewDiscardLogger())
	require.NoError(t, err)
	return engine, cache
}

func TestNew(t *testing.T) {
	engine, _ := newEngine(t, "", 0)
	assert.Equal(t, "pagerank", engine.Name())

	engine, _ = newEngine(t, "lexrank", 0)
	assert.Equal(t, "lexrank", engine.Name())

	_, err := New("bart", summarizer.DefaultOptions(), nil, utils.NewDiscardLogger())
	assert.True(t, errors.Is(err, ErrUnknownEngine))

	opts := summarizer.DefaultOptions()
	opts.MaxIterations = 0
	_, err = New("pagerank", opts, nil, utils.NewDiscardLogger())
	assert.True(t, errors.Is(err, summarizer.ErrInvalidOptions))
}

func TestPageRank_Summarize(t *testing.T) {
	engine, cache := newEngine(t, "pagerank", 8)
	ctx := context.Background()

	first, err := engine.Summarize(ctx, catText)
	require.NoError(t, err)
	assert.Equal(t, "The cat was happy.", first.Text)
	assert.Equal(t, 4, first.SentenceCount)
	assert.Equal(t, 1, cache.Size())

	second, err := engine.Summarize(ctx, catText)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.InDelta(t, 0.5, cache.HitRate(), 1e-12)
}

func TestPageRank_Errors(t *testing.T) {
	engine, _ := newEngine(t, "pagerank", 0)

	_, err := engine.Summarize(context.Background(), "")
	assert.True(t, errors.Is(err, summarizer.ErrEmptyInput))

	summary, err := engine.Summarize(context.Background(), "  ")
	require.NoError(t, err)
	assert.True(t, summary.Bypassed)
	assert.Equal(t, "  ", summary.Text)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Summarize(ctx, catText)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLexRank_ShortInputAndEmpty(t *testing.T) {
	engine, _ := newEngine(t, "lexrank", 0)
	ctx := context.Background()

	summary, err := engine.Summarize(ctx, "Only one. And two.")
	require.NoError(t, err)
	assert.True(t, summary.Bypassed)
	assert.Equal(t, "Only one. And two.", summary.Text)

	_, err = engine.Summarize(ctx, "")
	assert.True(t, errors.Is(err, summarizer.ErrEmptyInput))
}

func TestLexRank_Summarize(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "cat", text: catText},
		{name: "long", text: lexText},
		{name: "full-width stops inside sentences", text: "One。two three. Four five six. Seven eight. Nine ten eleven."},
		{name: "full-width marks", text: "Is it？ Yes！ It is. Go is fun. Go is fast. Rust is fast."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newEngine(t, "lexrank", 0)

			summary, err := engine.Summarize(context.Background(), tt.text)
			require.NoError(t, err)

			sentences := summarizer.SplitSentences(tt.text)
			assert.False(t, summary.Bypassed)
			assert.Equal(t, len(sentences), summary.SentenceCount)
			assert.Len(t, summary.Selected, summarizer.SummaryCount(len(sentences), summarizer.DefaultRatio))

			for i, sentence := range summary.Selected {
				assert.Equal(t, sentences[sentence.Index], sentence.Text)
				if i > 0 {
					assert.Less(t, summary.Selected[i-1].Index, sentence.Index)
				}
			}
			assert.Equal(t, summarizer.Assemble(summary.Selected), summary.Text)
			assert.True(t, strings.HasSuffix(summary.Text, "."))
		})
	}
}

func TestLexRank_CatScenario(t *testing.T) {
	engine, cache := newEngine(t, "lexrank", 8)

	summary, err := engine.Summarize(context.Background(), catText)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat on the mat.", summary.Text)
	assert.Equal(t, 1, cache.Size())
}

func TestPickSentences(t *testing.T) {
	sentences := []string{"alpha", "beta", "alpha", "gamma"}

	selected := pickSentences(sentences, []int{3, 0, 2, 0, 7, -1})

	require.Len(t, selected, 3)
	assert.Equal(t, []int{0, 2, 3}, []int{selected[0].Index, selected[1].Index, selected[2].Index})
	assert.Equal(t, "alpha. alpha. gamma.", summarizer.Assemble(selected))
	assert.Empty(t, pickSentences(sentences, nil))
}

func TestSummarizeBatch(t *testing.T) {
	engine, _ := newEngine(t, "pagerank", 0)

	texts := []string{catText, "", "Short text.", catText}
	results, err := SummarizeBatch(context.Background(), engine, texts, 2)
	require.NoError(t, err)
	require.Len(t, results, len(texts))

	for i, result := range results {
		assert.Equal(t, i, result.Index)
	}

	assert.Equal(t, "The cat was happy.", results[0].Summary.Text)
	assert.True(t, errors.Is(results[1].Err, summarizer.ErrEmptyInput))
	assert.Equal(t, "Short text.", results[2].Summary.Text)
	assert.Equal(t, results[0].Summary.Text, results[3].Summary.Text)
}

func TestSummarizeBatch_Cancelled(t *testing.T) {
	engine, _ := newEngine(t, "pagerank", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SummarizeBatch(ctx, engine, []string{catText, catText}, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}
