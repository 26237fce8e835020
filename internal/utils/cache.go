package utils

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// SummaryCache memoizes summaries by options fingerprint and input text.
// A nil cache or a cache created with size 0 never stores anything.
type SummaryCache[V any] struct {
	mu     sync.Mutex
	items  *lru.Cache[uint64, V]
	hits   int
	misses int
}

func NewSummaryCache[V any](size int) (*SummaryCache[V], error) {
	if size <= 0 {
		return &SummaryCache[V]{}, nil
	}

	items, err := lru.New[uint64, V](size)
	if err != nil {
		return nil, err
	}
	return &SummaryCache[V]{items: items}, nil
}

func CacheKey(fingerprint, text string) uint64 {
	digest := xxhash.New()
	_, _ = digest.WriteString(fingerprint)
	_, _ = digest.WriteString("\x00")
	_, _ = digest.WriteString(text)
	return digest.Sum64()
}

func (c *SummaryCache[V]) Get(key uint64) (V, bool) {
	var zero V
	if c == nil || c.items == nil {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.items.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

func (c *SummaryCache[V]) Add(key uint64, value V) {
	if c == nil || c.items == nil {
		return
	}
	c.items.Add(key, value)
}

func (c *SummaryCache[V]) Size() int {
	if c == nil || c.items == nil {
		return 0
	}
	return c.items.Len()
}

func (c *SummaryCache[V]) HitRate() float64 {
	if c == nil {
		return 0.0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	} else {
		return 0.0
	}
}
