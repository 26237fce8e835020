package summarizer

import (
	"regexp"
	"strings"
)

var sentenceDelimiters = regexp.MustCompile(`\. |\.|\?|!|\n`)

// SplitSentences splits text on terminal punctuation and newlines. Fragments
// are trimmed and empty ones dropped; the returned order is the sentence
// index order. Abbreviations such as "Dr." are split like any other period.
func SplitSentences(text string) []string {
	fragments := sentenceDelimiters.Split(text, -1)

	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			sentences = append(sentences, fragment)
		}
	}

	return sentences
}
