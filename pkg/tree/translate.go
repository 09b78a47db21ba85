package tree

import (
	"strconv"

	"kinview/pkg/model"
)

// Translate converts raw person records into normalized nodes. It never
// fails: malformed or partial records degrade to empty display fields
// and unknown gender instead of aborting the pass. Known lossy steps,
// by design of the source data model:
//
//   - only the first male and first female parent survive as father and
//     mother; extra same-gender parents are dropped
//   - parents with unknown gender are not assigned to either slot
//   - marriage entries without an other-person reference are dropped
//   - dates are reduced to a 4-digit year
func Translate(raw []model.RawPerson) []Node {
	nodes := make([]Node, 0, len(raw))
	// Explicit sibling sets, used to keep derived relationships
	// symmetric when explicit data is only partially present.
	explicit := make(map[string]map[string]bool, len(raw))

	for _, rp := range raw {
		n := Node{
			ID:     strconv.FormatInt(rp.ID, 10),
			Gender: rp.Gender.Normalize(),
		}
		name := rp.PrimaryName()
		n.First, n.Middle, n.Last = name.First, name.Middle, name.Last
		if rp.Birth != nil {
			n.BirthYear = yearOf(rp.Birth.Date)
		}
		if rp.Death != nil {
			n.DeathYear = yearOf(rp.Death.Date)
		}

		for _, par := range rp.Parents {
			switch par.Gender {
			case model.GenderMale:
				if n.Father == "" {
					n.Father = strconv.FormatInt(par.ID, 10)
				}
			case model.GenderFemale:
				if n.Mother == "" {
					n.Mother = strconv.FormatInt(par.ID, 10)
				}
			}
		}

		for _, c := range rp.Children {
			n.Children = append(n.Children, strconv.FormatInt(c, 10))
		}

		for _, m := range rp.AllMarriages() {
			if m.OtherPerson == nil {
				continue
			}
			n.Partners = append(n.Partners, Partner{
				ID:     strconv.FormatInt(m.OtherPerson.ID, 10),
				Gender: m.OtherPerson.Gender.Normalize(),
				Ended:  m.Ended,
			})
		}

		if len(rp.Siblings) > 0 {
			set := make(map[string]bool, len(rp.Siblings))
			for _, s := range rp.Siblings {
				id := strconv.FormatInt(s.ID, 10)
				n.Siblings = append(n.Siblings, Sibling{ID: id, Gender: s.Gender.Normalize()})
				set[id] = true
			}
			explicit[n.ID] = set
		}

		nodes = append(nodes, n)
	}

	deriveSiblings(nodes, explicit)
	return nodes
}

// deriveSiblings fills in sibling edges for nodes without an explicit
// list by grouping on shared father AND mother. People with no resolved
// parents at all are never grouped. A candidate that carries an explicit
// list omitting the node is skipped so the derived relation stays
// symmetric. O(n²) over the node set; fine at genealogical scale
// (hundreds to low thousands of people).
func deriveSiblings(nodes []Node, explicit map[string]map[string]bool) {
	for i := range nodes {
		n := &nodes[i]
		if _, ok := explicit[n.ID]; ok {
			continue
		}
		if n.Father == "" && n.Mother == "" {
			continue
		}
		for j := range nodes {
			if i == j {
				continue
			}
			m := &nodes[j]
			if m.Father != n.Father || m.Mother != n.Mother {
				continue
			}
			if set, ok := explicit[m.ID]; ok && !set[n.ID] {
				continue
			}
			n.Siblings = append(n.Siblings, Sibling{ID: m.ID, Gender: m.Gender})
		}
	}
}

// yearOf extracts the first 4-digit run from a date string. Exact dates
// are not needed for the compact card display.
func yearOf(date string) string {
	run := 0
	for i, r := range date {
		if r >= '0' && r <= '9' {
			run++
			if run == 4 {
				return date[i-3 : i+1]
			}
		} else {
			run = 0
		}
	}
	return ""
}
