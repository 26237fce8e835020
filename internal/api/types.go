package api

import "github.com/wgomg/sumrank/internal/summarizer"

type SummarizeRequest struct {
	Text          string   `json:"text"`
	HTML          bool     `json:"html"`
	Engine        string   `json:"engine"`
	MaxIterations *int     `json:"max_iterations"`
	DampingFactor *float64 `json:"damping_factor"`
	Delta         *float64 `json:"delta"`
	Ratio         *float64 `json:"ratio"`
	MinSentences  *int     `json:"min_sentences"`
}

type BatchRequest struct {
	Texts  []string `json:"texts"`
	HTML   bool     `json:"html"`
	Engine string   `json:"engine"`
}

type SentenceScore struct {
	Index int     `json:"index"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type SummaryResponse struct {
	Summary       string          `json:"summary"`
	Engine        string          `json:"engine"`
	SentenceCount int             `json:"sentence_count"`
	Selected      []SentenceScore `json:"selected"`
	Iterations    int             `json:"iterations"`
	Converged     bool            `json:"converged"`
	Bypassed      bool            `json:"bypassed"`
}

type BatchItem struct {
	Index   int              `json:"index"`
	Summary *SummaryResponse `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type StatsResponse struct {
	CacheSize    int     `json:"cache_size"`
	CacheHitRate float64 `json:"cache_hit_rate"`
	Engine       string  `json:"engine"`
}

func newSummaryResponse(engine string, summary *summarizer.Summary) *SummaryResponse {
	selected := make([]SentenceScore, len(summary.Selected))
	for i, s := range summary.Selected {
		selected[i] = SentenceScore{Index: s.Index, Text: s.Text, Score: s.Score}
	}

	return &SummaryResponse{
		Summary:       summary.Text,
		Engine:        engine,
		SentenceCount: summary.SentenceCount,
		Selected:      selected,
		Iterations:    summary.Iterations,
		Converged:     summary.Converged,
		Bypassed:      summary.Bypassed,
	}
}
