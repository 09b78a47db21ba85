// Package analysis computes dataset-level kinship statistics for the
// header line and the plain listing mode.
package analysis

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"kinview/pkg/tree"
)

// Stats summarizes a translated dataset.
type Stats struct {
	People         int
	FamilyLines    int // connected components of the kinship graph
	LargestLine    int // people in the largest component
	GenerationSpan int // longest parent chain, in generations
	MeanLifespan   float64
	MedianLifespan float64
	LifespanCount  int // people with both birth and death years
}

// Compute builds an undirected kinship graph (parent, partner, and
// sibling edges) and derives the summary statistics.
func Compute(nodes []tree.Node) Stats {
	s := Stats{People: len(nodes)}
	if len(nodes) == 0 {
		return s
	}

	g := simple.NewUndirectedGraph()
	gid := make(map[string]int64, len(nodes))
	for i, n := range nodes {
		gid[n.ID] = int64(i)
		g.AddNode(simple.Node(int64(i)))
	}
	link := func(a, b string) {
		ai, aok := gid[a]
		bi, bok := gid[b]
		if !aok || !bok || ai == bi {
			return
		}
		g.SetEdge(simple.Edge{F: simple.Node(ai), T: simple.Node(bi)})
	}
	for _, n := range nodes {
		link(n.ID, n.Father)
		link(n.ID, n.Mother)
		for _, p := range n.Partners {
			link(n.ID, p.ID)
		}
		for _, sib := range n.Siblings {
			link(n.ID, sib.ID)
		}
	}

	for _, comp := range topo.ConnectedComponents(g) {
		s.FamilyLines++
		if len(comp) > s.LargestLine {
			s.LargestLine = len(comp)
		}
	}

	s.GenerationSpan = generationSpan(nodes)
	s.MeanLifespan, s.MedianLifespan, s.LifespanCount = lifespans(nodes)
	return s
}

// generationSpan returns the length of the longest parent chain in the
// dataset, memoized; a cycle in the data (bad import) counts as depth 1
// rather than recursing forever.
func generationSpan(nodes []tree.Node) int {
	byID := make(map[string]*tree.Node, len(nodes))
	for i := range nodes {
		byID[nodes[i].ID] = &nodes[i]
	}
	depth := make(map[string]int, len(nodes))
	onPath := make(map[string]bool)

	var chain func(id string) int
	chain = func(id string) int {
		n, ok := byID[id]
		if !ok || onPath[id] {
			return 0
		}
		if d, ok := depth[id]; ok {
			return d
		}
		onPath[id] = true
		d := 0
		if fd := chain(n.Father); fd > d {
			d = fd
		}
		if md := chain(n.Mother); md > d {
			d = md
		}
		onPath[id] = false
		depth[id] = d + 1
		return d + 1
	}

	max := 0
	for _, n := range nodes {
		if d := chain(n.ID); d > max {
			max = d
		}
	}
	return max
}

func lifespans(nodes []tree.Node) (mean, median float64, count int) {
	var spans []float64
	for _, n := range nodes {
		b, err1 := strconv.Atoi(n.BirthYear)
		d, err2 := strconv.Atoi(n.DeathYear)
		if err1 != nil || err2 != nil || d < b {
			continue
		}
		spans = append(spans, float64(d-b))
	}
	if len(spans) == 0 {
		return 0, 0, 0
	}
	sort.Float64s(spans)
	return stat.Mean(spans, nil), stat.Quantile(0.5, stat.Empirical, spans, nil), len(spans)
}

// Summary renders the one-line header form of the stats.
func (s Stats) Summary() string {
	out := fmt.Sprintf("%d people · %d family lines · %d generations", s.People, s.FamilyLines, s.GenerationSpan)
	if s.LifespanCount > 0 {
		out += fmt.Sprintf(" · avg lifespan %.0f", s.MeanLifespan)
	}
	return out
}
