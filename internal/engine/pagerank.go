package engine

import (
	"context"

	"github.com/wgomg/sumrank/internal/summarizer"
	"github.com/wgomg/sumrank/internal/utils"
)

type PageRank struct {
	summarizer *summarizer.Summarizer
	cache      *Cache
	logger     *utils.Logger
}

func NewPageRank(s *summarizer.Summarizer, cache *Cache, logger *utils.Logger) *PageRank {
	return &PageRank{summarizer: s, cache: cache, logger: logger}
}

func (p *PageRank) Name() string {
	return "pagerank"
}

// Summarize returns cached summaries as shared values; callers must not
// modify them.
func (p *PageRank) Summarize(ctx context.Context, text string) (*summarizer.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := utils.CacheKey(p.Name()+"|"+p.summarizer.Options().Fingerprint(), text)
	if summary, ok := p.cache.Get(key); ok {
		p.logger.Debug(nil, "Cache hit for %d bytes of text", len(text))
		return summary, nil
	}

	summary, err := p.summarizer.Run(text)
	if err != nil {
		return nil, err
	}

	p.logger.Debug(nil,
		"PageRank summary: sentences=%d, selected=%d, iterations=%d, converged=%v, bypassed=%v",
		summary.SentenceCount, len(summary.Selected), summary.Iterations, summary.Converged, summary.Bypassed,
	)

	p.cache.Add(key, summary)
	return summary, nil
}
