package tree

import "sort"

// layout assigns generation rows and stable slots to the visible set.
// One row per generation offset (ancestors above, descendants below);
// within a row, nodes keep the order they had in the translated slice,
// so a node's horizontal position cannot jump between re-renders that
// leave the visible set unchanged.
func layout(s *Subtree, nodes []Node, order map[string]int, gen map[string]int, opts Options) {
	if len(s.Visible) == 0 {
		return
	}

	nodeSep := opts.NodeSep
	if nodeSep <= 0 {
		nodeSep = defaultNodeSep
	}
	levelSep := opts.LevelSep
	if levelSep <= 0 {
		levelSep = defaultLevelSep
	}

	ids := make([]string, 0, len(s.Visible))
	for id := range s.Visible {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		gi, gj := gen[ids[i]], gen[ids[j]]
		if gi != gj {
			return gi < gj
		}
		return order[ids[i]] < order[ids[j]]
	})

	s.MinGen, s.MaxGen = gen[ids[0]], gen[ids[len(ids)-1]]

	slot := 0
	prevGen := s.MinGen
	for _, id := range ids {
		g := gen[id]
		if g != prevGen {
			slot = 0
			prevGen = g
		}
		s.Pos[id] = Position{
			Gen:  g,
			Slot: slot,
			X:    slot * (CardWidth + nodeSep),
			Y:    (g - s.MinGen) * (CardHeight + levelSep),
		}
		s.Nodes = append(s.Nodes, nodes[order[id]])
		slot++
	}
}
