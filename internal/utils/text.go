package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ExtractText returns the text content of an HTML fragment or document,
// skipping script and style elements. Block-level elements end with a
// newline so paragraphs stay separate sentences.
func ExtractText(document string) (string, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", errors.Wrap(err, "parse html")
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && isBlock(n.DataAtom) {
			sb.WriteString("\n")
		}
	}
	walk(root)

	return strings.TrimSpace(sb.String()), nil
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Br, atom.Li, atom.H1, atom.H2, atom.H3,
		atom.H4, atom.H5, atom.H6, atom.Tr, atom.Blockquote, atom.Pre, atom.Section, atom.Article:
		return true
	}
	return false
}

// Truncate cuts s to at most maxLength bytes without splitting a rune.
func Truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	cut := max(maxLength, 0)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
