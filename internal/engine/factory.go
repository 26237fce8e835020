package engine

import (
	"github.com/go-faster/errors"

	"github.com/wgomg/sumrank/internal/config"
	"github.com/wgomg/sumrank/internal/summarizer"
	"github.com/wgomg/sumrank/internal/utils"
)

type Cache = utils.SummaryCache[*summarizer.Summary]

func NewCache(size int) (*Cache, error) {
	return utils.NewSummaryCache[*summarizer.Summary](size)
}

// New builds the named engine. An empty name selects PageRank. The cache may
// be nil.
func New(name string, opts summarizer.Options, cache *Cache, logger *utils.Logger) (Engine, error) {
	s, err := summarizer.New(opts)
	if err != nil {
		return nil, err
	}

	switch name {
	case "", config.EnginePageRank:
		return NewPageRank(s, cache, logger), nil
	case config.EngineLexRank:
		return NewLexRank(s, cache, logger), nil
	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", name)
	}
}
