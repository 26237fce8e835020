package summarizer

import "math"

// ShouldSummarize reports whether the input is long enough to be ranked;
// shorter inputs are already as short as a summary would be.
func ShouldSummarize(sentenceCount int, minSentences int) bool {
	return sentenceCount >= minSentences
}

func SummaryCount(sentenceCount int, ratio float64) int {
	count := int(math.Floor(float64(sentenceCount)*ratio + 1e-9))
	return max(1, count)
}
