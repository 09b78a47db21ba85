package tree

import (
	"strconv"

	"kinview/pkg/model"
)

// DetailEvent is one row in the detail panel's event table.
type DetailEvent struct {
	Kind     string // "birth", "death", "marriage", ...
	Date     string
	Location string
	Comment  string
}

// DetailRelation is one relationship row with the related person's
// display name resolved, so the panel never has to chase ids.
type DetailRelation struct {
	Kind string // "father", "mother", "child", "partner", "sibling"
	ID   string
	Name string
}

// Detail is the full record for one person, richer than the card view:
// all name variants, all events, all relationships with display names.
type Detail struct {
	ID        string
	Name      string
	AltNames  []string
	Gender    model.Gender
	IsLiving  bool
	Events    []DetailEvent
	Relations []DetailRelation
	Notes     string // free-text markdown
}

// BuildDetail assembles the detail record for id from the raw records
// and the translated nodes. Returns nil when the id is unknown.
func BuildDetail(nodes []Node, raw []model.RawPerson, id string) *Detail {
	var n *Node
	for i := range nodes {
		if nodes[i].ID == id {
			n = &nodes[i]
			break
		}
	}
	if n == nil {
		return nil
	}
	var rp *model.RawPerson
	for i := range raw {
		if strconv.FormatInt(raw[i].ID, 10) == id {
			rp = &raw[i]
			break
		}
	}

	d := &Detail{
		ID:     id,
		Name:   n.DisplayName(),
		Gender: n.Gender,
	}

	nameOf := func(pid string) string {
		for i := range nodes {
			if nodes[i].ID == pid {
				return nodes[i].DisplayName()
			}
		}
		return "#" + pid
	}

	if rp != nil {
		d.IsLiving = rp.IsLiving
		d.Notes = rp.Notes
		primary := rp.PrimaryName()
		for _, name := range rp.Names {
			if name == primary {
				continue
			}
			d.AltNames = append(d.AltNames, name.String())
		}
		if rp.Birth != nil {
			d.Events = append(d.Events, DetailEvent{Kind: "birth", Date: rp.Birth.Date, Location: rp.Birth.Location, Comment: rp.Birth.Comment})
		}
		if rp.Death != nil {
			d.Events = append(d.Events, DetailEvent{Kind: "death", Date: rp.Death.Date, Location: rp.Death.Location, Comment: rp.Death.Comment})
		}
		for _, m := range rp.AllMarriages() {
			if m.OtherPerson == nil {
				continue
			}
			kind := "marriage"
			if m.Ended {
				kind = "marriage (ended)"
			}
			d.Events = append(d.Events, DetailEvent{Kind: kind, Date: m.Date, Location: m.Location})
		}
		for _, ev := range rp.Immigrations {
			d.Events = append(d.Events, DetailEvent{Kind: "immigration", Date: ev.Date, Location: ev.Location, Comment: ev.Comment})
		}
		for _, ev := range rp.Citizenships {
			d.Events = append(d.Events, DetailEvent{Kind: "citizenship", Date: ev.Date, Location: ev.Location, Comment: ev.Comment})
		}
	}

	if n.Father != "" {
		d.Relations = append(d.Relations, DetailRelation{Kind: "father", ID: n.Father, Name: nameOf(n.Father)})
	}
	if n.Mother != "" {
		d.Relations = append(d.Relations, DetailRelation{Kind: "mother", ID: n.Mother, Name: nameOf(n.Mother)})
	}
	for _, p := range n.Partners {
		d.Relations = append(d.Relations, DetailRelation{Kind: "partner", ID: p.ID, Name: nameOf(p.ID)})
	}
	for _, sib := range n.Siblings {
		d.Relations = append(d.Relations, DetailRelation{Kind: "sibling", ID: sib.ID, Name: nameOf(sib.ID)})
	}
	for _, c := range n.Children {
		d.Relations = append(d.Relations, DetailRelation{Kind: "child", ID: c, Name: nameOf(c)})
	}
	return d
}
