package summarizer

// Edge is a directed, weighted link from the owning node to Target.
type Edge struct {
	Target int
	Weight float64
}

// Graph is the sentence similarity graph. Adjacency[i] holds the outgoing
// edges of sentence i; Sentences maps each node back to its text.
type Graph struct {
	Adjacency [][]Edge
	Sentences []string
}

type RankedSentence struct {
	Index int
	Text  string
	Score float64
}

type Result struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

type Summary struct {
	Text          string
	SentenceCount int
	Selected      []RankedSentence
	Iterations    int
	Converged     bool
	Bypassed      bool
}
