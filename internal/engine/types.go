// Package engine selects between summarization back ends and runs them
// over single texts or batches.
package engine

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/wgomg/sumrank/internal/summarizer"
)

var ErrUnknownEngine = errors.New("unknown engine")

type Engine interface {
	Name() string
	Summarize(ctx context.Context, text string) (*summarizer.Summary, error)
}
