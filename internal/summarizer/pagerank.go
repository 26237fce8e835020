package summarizer

import "math"

// IterationFunc observes the per-iteration scores before the final 1/N
// rescale. The scores slice is reused between calls.
type IterationFunc func(iteration int, scores []float64, maxChange float64)

// Rank runs weighted PageRank over the graph using the power method.
//
// Each node starts at 1/N. Per iteration, a node receives from every node
// linking to it that node's score times the edge weight, divided by the
// sender's total outgoing weight. Scores of nodes without outgoing edges are
// spread evenly over all nodes. Iteration stops when the largest score change
// is at most Delta/N or after MaxIterations. Reported scores are the final
// per-iteration scores divided by N, so they only carry relative meaning.
func Rank(graph *Graph, opts Options, observers ...IterationFunc) Result {
	N := graph.Len()
	if N == 0 {
		return Result{Scores: []float64{}, Converged: true}
	}
	n := float64(N)
	damping := opts.DampingFactor

	oldPR := make([]float64, N)
	newPR := make([]float64, N)
	for i := range oldPR {
		oldPR[i] = 1.0 / n
	}

	// precompute outgoing weight sums for each node
	totalWeight := make([]float64, N)
	for i, edges := range graph.Adjacency {
		for _, edge := range edges {
			totalWeight[i] += edge.Weight
		}
	}

	result := Result{}
	threshold := opts.Delta / n

	for iteration := 1; iteration <= opts.MaxIterations; iteration++ {
		maxChange := step(graph, oldPR, newPR, totalWeight, damping)
		result.Iterations = iteration

		for _, observe := range observers {
			observe(iteration, oldPR, maxChange)
		}

		if maxChange <= threshold {
			result.Converged = true
			break
		}
	}

	result.Scores = make([]float64, N)
	for i := range oldPR {
		result.Scores[i] = oldPR[i] / n
	}

	return result
}

// step performs one power-method iteration, leaving the new scores in oldPR
// and a zeroed newPR. It returns the largest absolute score change.
func step(graph *Graph, oldPR, newPR, totalWeight []float64, damping float64) float64 {
	N := len(oldPR)
	n := float64(N)

	sinkContribution := 0.0
	for i, edges := range graph.Adjacency {
		if len(edges) == 0 {
			sinkContribution += oldPR[i]
		}
	}
	sinkContribution = damping * sinkContribution / n

	for source, edges := range graph.Adjacency {
		if totalWeight[source] == 0 {
			continue
		}
		share := oldPR[source] / totalWeight[source]
		for _, edge := range edges {
			newPR[edge.Target] += share * edge.Weight
		}
	}

	randomComponent := (1.0 - damping) / n
	sum := 0.0
	for i := range newPR {
		newPR[i] = randomComponent + damping*newPR[i] + sinkContribution
		sum += newPR[i]
	}

	maxChange := 0.0
	for i := range newPR {
		// keep the distribution at unit mass against accumulated rounding
		if sum > 0 {
			newPR[i] /= sum
		}

		change := math.Abs(newPR[i] - oldPR[i])
		if change > maxChange {
			maxChange = change
		}

		oldPR[i] = newPR[i]
		newPR[i] = 0
	}

	return maxChange
}
