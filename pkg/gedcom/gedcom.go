// Package gedcom imports GEDCOM files into raw person records.
//
// The parser handles the level/tag line format for INDI and FAM
// records; family records are resolved into parent, child, and marriage
// references on the individuals. Unparseable lines are counted and
// skipped, never fatal.
package gedcom

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"kinview/pkg/model"
)

// Stats summarizes an import run.
type Stats struct {
	Individuals  int
	Families     int
	SkippedLines int
}

type individual struct {
	xref   string
	names  []model.RawName
	gender model.Gender
	birth  *model.RawEvent
	death  *model.RawEvent
}

type family struct {
	xref     string
	husband  string
	wife     string
	children []string
	marriage *model.RawEvent
	divorced bool
}

// Parser accumulates records while scanning a GEDCOM stream.
type Parser struct {
	individuals []*individual
	families    []*family
	indiByXref  map[string]*individual

	current      interface{} // *individual, *family, or nil
	currentEvent *model.RawEvent
	stats        Stats
}

// NewParser returns an empty parser.
func NewParser() *Parser {
	return &Parser{indiByXref: make(map[string]*individual)}
}

// ImportFile parses path and returns the resolved person records.
func ImportFile(path string) ([]model.RawPerson, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open GEDCOM file: %w", err)
	}
	defer f.Close()

	p := NewParser()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		p.parseLine(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, Stats{}, fmt.Errorf("error reading GEDCOM file: %w", err)
	}
	people := p.Resolve()
	return people, p.stats, nil
}

// parseLine consumes one GEDCOM line: "level [@xref@] tag [value]".
func (p *Parser) parseLine(line string) {
	if line == "" {
		return
	}
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		p.stats.SkippedLines++
		return
	}
	level, err := strconv.Atoi(parts[0])
	if err != nil {
		p.stats.SkippedLines++
		return
	}

	var xref, tag, value string
	if strings.HasPrefix(parts[1], "@") && strings.HasSuffix(parts[1], "@") {
		xref = parts[1]
		if len(parts) > 2 {
			tag = parts[2]
		}
	} else {
		tag = parts[1]
		if len(parts) > 2 {
			value = parts[2]
		}
	}

	switch level {
	case 0:
		p.currentEvent = nil
		switch tag {
		case "INDI":
			ind := &individual{xref: xref}
			p.individuals = append(p.individuals, ind)
			p.indiByXref[xref] = ind
			p.current = ind
			p.stats.Individuals++
		case "FAM":
			fam := &family{xref: xref}
			p.families = append(p.families, fam)
			p.current = fam
			p.stats.Families++
		default:
			p.current = nil
		}
	case 1:
		p.currentEvent = nil
		p.level1(tag, value)
	case 2:
		p.level2(tag, value)
	}
}

func (p *Parser) level1(tag, value string) {
	switch cur := p.current.(type) {
	case *individual:
		switch tag {
		case "NAME":
			cur.names = append(cur.names, parseName(value))
		case "SEX":
			cur.gender = model.Gender(value).Normalize()
		case "BIRT":
			cur.birth = &model.RawEvent{}
			p.currentEvent = cur.birth
		case "DEAT":
			cur.death = &model.RawEvent{}
			p.currentEvent = cur.death
		}
	case *family:
		switch tag {
		case "HUSB":
			cur.husband = value
		case "WIFE":
			cur.wife = value
		case "CHIL":
			cur.children = append(cur.children, value)
		case "MARR":
			cur.marriage = &model.RawEvent{}
			p.currentEvent = cur.marriage
		case "DIV":
			cur.divorced = true
		}
	}
}

func (p *Parser) level2(tag, value string) {
	if p.currentEvent == nil {
		return
	}
	switch tag {
	case "DATE":
		p.currentEvent.Date = value
	case "PLAC":
		p.currentEvent.Location = value
	}
}

// parseName splits a GEDCOM name: "First Middle /Last/".
func parseName(s string) model.RawName {
	name := model.RawName{Type: model.NameBorn}
	if i := strings.Index(s, "/"); i >= 0 {
		if j := strings.Index(s[i+1:], "/"); j >= 0 {
			name.Last = strings.TrimSpace(s[i+1 : i+1+j])
		}
		s = s[:i]
	}
	given := strings.Fields(s)
	if len(given) > 0 {
		name.First = given[0]
	}
	if len(given) > 1 {
		name.Middle = strings.Join(given[1:], " ")
	}
	return name
}

// Resolve assigns numeric ids in encounter order and folds family
// records into parent, child, and marriage references.
func (p *Parser) Resolve() []model.RawPerson {
	ids := make(map[string]int64, len(p.individuals))
	for i, ind := range p.individuals {
		ids[ind.xref] = int64(i + 1)
	}

	people := make([]model.RawPerson, len(p.individuals))
	for i, ind := range p.individuals {
		people[i] = model.RawPerson{
			ID:     ids[ind.xref],
			Names:  ind.names,
			Gender: ind.gender.Normalize(),
			Birth:  ind.birth,
			Death:  ind.death,
		}
	}
	index := make(map[string]*model.RawPerson, len(people))
	for i := range people {
		index[p.individuals[i].xref] = &people[i]
	}

	// Family roles imply a gender when the individual record lacks one.
	refFor := func(p *model.RawPerson, role model.Gender) model.RawRef {
		g := p.Gender
		if g == model.GenderUnknown {
			g = role
		}
		return model.RawRef{ID: p.ID, Gender: g}
	}

	for _, fam := range p.families {
		husband, wife := index[fam.husband], index[fam.wife]

		if husband != nil && wife != nil {
			m := model.RawMarriage{Ended: fam.divorced}
			if fam.marriage != nil {
				m.Date = fam.marriage.Date
				m.Location = fam.marriage.Location
			}
			hm, wm := m, m
			wref := refFor(wife, model.GenderFemale)
			href := refFor(husband, model.GenderMale)
			hm.OtherPerson = &wref
			wm.OtherPerson = &href
			husband.Marriages = append(husband.Marriages, hm)
			wife.Marriages = append(wife.Marriages, wm)
		}

		for _, cx := range fam.children {
			child := index[cx]
			if child == nil {
				continue
			}
			if husband != nil {
				child.Parents = append(child.Parents, refFor(husband, model.GenderMale))
				husband.Children = append(husband.Children, child.ID)
			}
			if wife != nil {
				child.Parents = append(child.Parents, refFor(wife, model.GenderFemale))
				wife.Children = append(wife.Children, child.ID)
			}
		}
	}
	return people
}
