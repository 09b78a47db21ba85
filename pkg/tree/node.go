// Package tree converts raw person records into the typed relationship
// graph the viewer renders, and computes focal-person subtrees with a
// deterministic layered layout.
package tree

import "kinview/pkg/model"

// Partner is one marriage edge of a node.
type Partner struct {
	ID     string
	Gender model.Gender
	Ended  bool
}

// Sibling is one sibling edge of a node.
type Sibling struct {
	ID     string
	Gender model.Gender
}

// Node is a person record normalized for display. All display fields are
// plain strings (empty when unknown) so renderers never need nil checks.
type Node struct {
	ID     string
	First  string
	Middle string
	Last   string
	Gender model.Gender

	BirthYear string // 4-digit year or ""
	DeathYear string // 4-digit year or ""

	Father   string // node ID, "" when unknown
	Mother   string // node ID, "" when unknown
	Children []string
	Partners []Partner
	Siblings []Sibling
}

// DisplayName returns the card-sized name, falling back to the ID when
// the record carries no name at all.
func (n Node) DisplayName() string {
	s := n.First
	if n.Last != "" {
		if s != "" {
			s += " "
		}
		s += n.Last
	}
	if s == "" {
		return "#" + n.ID
	}
	return s
}

// Lifespan renders "1901–1963", "1901–", or "" for the card subtitle.
func (n Node) Lifespan() string {
	if n.BirthYear == "" && n.DeathYear == "" {
		return ""
	}
	return n.BirthYear + "–" + n.DeathYear
}

// Position is the layout slot of a visible node. Gen is the generation
// offset from the focal person (ancestors negative), Slot the index
// within the generation row. X and Y are layout units derived from the
// configured separations.
type Position struct {
	Gen  int
	Slot int
	X    int
	Y    int
}

// Subtree is the visible portion of the graph for one focal person.
// It is rebuilt from scratch on every focal, depth, or data change and
// never mutated in place.
type Subtree struct {
	FocalID string
	Visible map[string]bool
	Nodes   []Node // visible nodes, top row first, left to right
	Pos     map[string]Position
	MinGen  int
	MaxGen  int
}

// Empty reports whether nothing is visible (unknown focal id or an
// empty dataset).
func (s *Subtree) Empty() bool {
	return s == nil || len(s.Nodes) == 0
}

// Rows groups the visible nodes by generation, most ancestral first.
func (s *Subtree) Rows() [][]Node {
	if s.Empty() {
		return nil
	}
	rows := make([][]Node, s.MaxGen-s.MinGen+1)
	for _, n := range s.Nodes {
		g := s.Pos[n.ID].Gen - s.MinGen
		rows[g] = append(rows[g], n)
	}
	return rows
}

// HiddenKin flags relationship edges of a node that point outside the
// visible set. Purely a display affordance ("more family not shown").
type HiddenKin struct {
	Above  bool // father or mother exists but is not visible
	Beside bool // a marriage partner is not visible
	Below  bool // a child is not visible
}

// HiddenKin computes the off-screen indicators for one visible node.
func (s *Subtree) HiddenKin(n Node) HiddenKin {
	var h HiddenKin
	if n.Father != "" && !s.Visible[n.Father] {
		h.Above = true
	}
	if n.Mother != "" && !s.Visible[n.Mother] {
		h.Above = true
	}
	for _, p := range n.Partners {
		if !s.Visible[p.ID] {
			h.Beside = true
			break
		}
	}
	for _, c := range n.Children {
		if !s.Visible[c] {
			h.Below = true
			break
		}
	}
	return h
}
