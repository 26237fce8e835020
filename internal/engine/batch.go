package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wgomg/sumrank/internal/summarizer"
)

type BatchResult struct {
	Index   int
	Summary *summarizer.Summary
	Err     error
}

// SummarizeBatch summarizes texts concurrently with at most workers in
// flight. Results keep the order of texts; a failing item does not stop the
// others, but a cancelled context does.
func SummarizeBatch(ctx context.Context, engine Engine, texts []string, workers int) ([]BatchResult, error) {
	results := make([]BatchResult, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			summary, err := engine.Summarize(ctx, text)
			results[i] = BatchResult{Index: i, Summary: summary, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
