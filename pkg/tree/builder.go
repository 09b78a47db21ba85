package tree

// Options controls subtree inclusion and layout spacing. The zero value
// means: unlimited depth in both directions, focal siblings shown,
// default separations.
type Options struct {
	// AncestryDepth bounds parent hops from the focal person; <=0 means
	// unlimited. ProgenyDepth does the same for child hops.
	AncestryDepth int
	ProgenyDepth  int

	// HideFocalSiblings suppresses the focal person's sibling row.
	HideFocalSiblings bool

	// NodeSep and LevelSep are layout spacing in layout units. They
	// never affect which nodes are included.
	NodeSep  int
	LevelSep int
}

const (
	// CardWidth and CardHeight are the layout footprint of one person
	// card, in layout units (terminal cells for the TUI; the exporters
	// scale them to pixels).
	CardWidth  = 26
	CardHeight = 4

	defaultNodeSep  = 2
	defaultLevelSep = 1
)

// direction a node was reached from the focal person. Ancestors expand
// only upward and descendants only downward, so an ancestor's other
// children or a descendant's other parent are not pulled in unless
// independently reachable.
type direction int

const (
	dirFocal direction = iota
	dirUp
	dirDown
)

type visit struct {
	id   string
	dir  direction
	hops int // parent or child hops consumed so far
	gen  int // generation offset from focal
}

// BuildView computes the visible subtree for a focal person. An unknown
// focal id yields an empty subtree rather than an error; callers treat
// that as "nothing to render" and fall back to a default person.
func BuildView(nodes []Node, focalID string, opts Options) *Subtree {
	byID := make(map[string]*Node, len(nodes))
	order := make(map[string]int, len(nodes))
	for i := range nodes {
		byID[nodes[i].ID] = &nodes[i]
		order[nodes[i].ID] = i
	}

	s := &Subtree{
		FocalID: focalID,
		Visible: make(map[string]bool),
		Pos:     make(map[string]Position),
	}
	focal, ok := byID[focalID]
	if !ok {
		return s
	}

	gen := make(map[string]int)
	include := func(id string, g int) bool {
		if id == "" || s.Visible[id] {
			return false
		}
		if _, known := byID[id]; !known {
			return false
		}
		s.Visible[id] = true
		gen[id] = g // first reach wins: BFS order means fewest hops
		return true
	}

	canUp := func(hops int) bool {
		return opts.AncestryDepth <= 0 || hops < opts.AncestryDepth
	}
	canDown := func(hops int) bool {
		return opts.ProgenyDepth <= 0 || hops < opts.ProgenyDepth
	}

	include(focalID, 0)
	queue := []visit{{id: focalID, dir: dirFocal}}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		n := byID[v.id]

		// Marriage partners ride along with every expanded node but
		// never recurse: a spouse's own relatives stay hidden unless
		// reachable as ancestors or descendants of the focal person.
		for _, p := range n.Partners {
			include(p.ID, v.gen)
		}

		if v.dir != dirDown && canUp(v.hops) {
			for _, pid := range []string{n.Father, n.Mother} {
				if include(pid, v.gen-1) {
					queue = append(queue, visit{id: pid, dir: dirUp, hops: v.hops + 1, gen: v.gen - 1})
				}
			}
		}
		if v.dir != dirUp && canDown(v.hops) {
			for _, cid := range n.Children {
				if include(cid, v.gen+1) {
					queue = append(queue, visit{id: cid, dir: dirDown, hops: v.hops + 1, gen: v.gen + 1})
				}
			}
		}
	}

	// Siblings appear only for the focal node itself, as terminal
	// lateral entries on the focal generation.
	if !opts.HideFocalSiblings {
		for _, sib := range focal.Siblings {
			include(sib.ID, 0)
		}
	}

	layout(s, nodes, order, gen, opts)
	return s
}
