package utils

import (
	"bytes"
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	doc := `<html><head><style>p { color: red }</style><script>var x = 1;</script></head>
<body><h1>Title</h1><p>First <b>bold</b> line</p><p>Second line</p></body></html>`

	text, err := ExtractText(doc)
	require.NoError(t, err)

	assert.Contains(t, text, "Title\n")
	assert.Contains(t, text, "First bold line\n")
	assert.Contains(t, text, "Second line")
	assert.NotContains(t, text, "color")
	assert.NotContains(t, text, "var x")
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("no markup here")
	require.NoError(t, err)
	assert.Equal(t, "no markup here", text)
}

func TestCountWordsAndTruncate(t *testing.T) {
	assert.Equal(t, 3, CountWords("  one two\nthree "))
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "...", Truncate("abc", 0))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{input: "héllo", max: 2, want: "h..."},
		{input: "héllo", max: 3, want: "hé..."},
		{input: "日本語", max: 4, want: "日..."},
		{input: "日本語", max: 2, want: "..."},
	}

	for _, tt := range tests {
		got := Truncate(tt.input, tt.max)
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got), got)
	}
}

func TestSummaryCache(t *testing.T) {
	cache, err := NewSummaryCache[string](2)
	require.NoError(t, err)

	k1 := CacheKey("opts", "one")
	k2 := CacheKey("opts", "two")
	k3 := CacheKey("other", "one")
	assert.NotEqual(t, k1, k3)

	_, ok := cache.Get(k1)
	assert.False(t, ok)

	cache.Add(k1, "summary one")
	cache.Add(k2, "summary two")

	value, ok := cache.Get(k1)
	require.True(t, ok)
	assert.Equal(t, "summary one", value)
	assert.Equal(t, 2, cache.Size())
	assert.InDelta(t, 0.5, cache.HitRate(), 1e-12)

	// k2 is now least recently used
	cache.Add(k3, "summary three")
	_, ok = cache.Get(k2)
	assert.False(t, ok)
	assert.Equal(t, 2, cache.Size())
}

func TestSummaryCache_Disabled(t *testing.T) {
	cache, err := NewSummaryCache[string](0)
	require.NoError(t, err)

	cache.Add(1, "x")
	_, ok := cache.Get(1)
	assert.False(t, ok)
	assert.Zero(t, cache.Size())

	var nilCache *SummaryCache[string]
	_, ok = nilCache.Get(1)
	assert.False(t, ok)
	assert.Zero(t, nilCache.HitRate())
}

func TestLoggerWithWriters(t *testing.T) {
	var stdout, file bytes.Buffer
	logger := NewLoggerWithWriters("info", false, &stdout, &file)

	reqID := "req-1"
	logger.Info(&reqID, "summarized %d sentences", 4)
	logger.Debug(nil, "hidden")

	assert.Contains(t, stdout.String(), "summarized 4 sentences")
	assert.Contains(t, stdout.String(), "reqid=req-1")
	assert.NotContains(t, stdout.String(), "hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry))
	assert.Equal(t, "summarized 4 sentences", entry["msg"])
	assert.Equal(t, "req-1", entry["reqid"])
	assert.Equal(t, LevelInfo, logger.Level())
}
