package summarizer

import (
	"math"
	"slices"
	"strings"
)

// Similarity is the word overlap of a with b, normalised by the log lengths
// of both sentences. Every token of a that occurs anywhere in b is counted,
// duplicates included, so Similarity(a, b) and Similarity(b, a) can differ.
func Similarity(a, b string) float64 {
	wordsA := strings.Split(a, " ")
	wordsB := strings.Split(b, " ")

	overlap := 0
	for _, word := range wordsA {
		if slices.Contains(wordsB, word) {
			overlap++
		}
	}

	logNorm := math.Log(float64(len(wordsA))) + math.Log(float64(len(wordsB)))
	if logNorm == 0 {
		return 0
	}

	return float64(overlap) / logNorm
}

// BuildGraph links every ordered pair of distinct sentences whose similarity
// is positive. Edges are appended in ascending target order.
func BuildGraph(sentences []string) *Graph {
	n := len(sentences)
	graph := &Graph{
		Adjacency: make([][]Edge, n),
		Sentences: slices.Clone(sentences),
	}

	for i := range n {
		graph.Adjacency[i] = []Edge{}

		for j := range n {
			if i == j {
				continue
			}

			similarity := Similarity(sentences[i], sentences[j])
			if similarity > 0 {
				graph.Adjacency[i] = append(graph.Adjacency[i], Edge{Target: j, Weight: similarity})
			}
		}
	}

	return graph
}

func (g *Graph) Len() int {
	return len(g.Adjacency)
}

// Weight returns the weight of the edge from -> to, or 0 when absent.
func (g *Graph) Weight(from, to int) float64 {
	for _, edge := range g.Adjacency[from] {
		if edge.Target == to {
			return edge.Weight
		}
	}
	return 0
}
