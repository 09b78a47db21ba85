package model

import "fmt"

// Gender is the recorded gender of a person.
type Gender string

const (
	GenderUnknown Gender = "U"
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
)

// IsValid returns true if the gender is a recognized value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderUnknown, GenderMale, GenderFemale:
		return true
	}
	return false
}

// Normalize maps any unrecognized or empty value to GenderUnknown.
func (g Gender) Normalize() Gender {
	if g.IsValid() {
		return g
	}
	return GenderUnknown
}

// Glyph returns the single-rune display symbol for the gender.
func (g Gender) Glyph() string {
	switch g {
	case GenderMale:
		return "♂"
	case GenderFemale:
		return "♀"
	}
	return "?"
}

// NameType tags a name variant with the life event it came from.
type NameType string

const (
	NameBorn       NameType = "born"
	NameMarried    NameType = "married"
	NameImmigrated NameType = "immigrated"
)

// IsBorn reports whether this tag marks a birth name. The legacy export
// used "birth" for the same tag, so both spellings are accepted.
func (t NameType) IsBorn() bool {
	return t == NameBorn || t == "birth"
}

// RawName is one name variant of a person as it appears on the wire.
type RawName struct {
	First  string   `json:"first_name"`
	Middle string   `json:"middle_name"`
	Last   string   `json:"last_name"`
	Type   NameType `json:"name_type,omitempty"`
}

// String renders the name the way record listings print it.
func (n RawName) String() string {
	s := n.First
	if n.Middle != "" {
		s += " " + n.Middle
	}
	if n.Last != "" {
		s += " " + n.Last
	}
	if n.Type != "" {
		s = fmt.Sprintf("%s (%s)", s, n.Type)
	}
	return s
}

// RawEvent is a dated life event (birth, death, immigration, ...).
type RawEvent struct {
	Date     string `json:"date,omitempty"` // ISO date or bare year
	Location string `json:"location,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// RawRef is a reference to another person record, carrying the gender
// when the exporter knew it.
type RawRef struct {
	ID     int64  `json:"id"`
	Gender Gender `json:"gender,omitempty"`
}

// RawMarriage is a marriage reference. OtherPerson may be null in
// degraded exports; such entries are dropped during translation.
type RawMarriage struct {
	OtherPerson *RawRef `json:"other_person"`
	Ended       bool    `json:"ended,omitempty"`
	Date        string  `json:"date,omitempty"`
	Location    string  `json:"location,omitempty"`
}

// RawPerson is one person record as returned by the data source.
// Every field besides ID is optional; absent data degrades to defaults
// during translation rather than failing.
type RawPerson struct {
	ID       int64     `json:"id"`
	Names    []RawName `json:"names,omitempty"`
	Gender   Gender    `json:"gender,omitempty"`
	IsLiving bool      `json:"is_living,omitempty"`
	Birth    *RawEvent `json:"birth,omitempty"`
	Death    *RawEvent `json:"death,omitempty"`
	Parents  []RawRef  `json:"parents,omitempty"`
	Children []int64   `json:"children,omitempty"`
	Siblings []RawRef  `json:"siblings,omitempty"`
	// Spouse is the legacy single-spouse shape; Marriages is the
	// multi-marriage shape. Either or both may be present.
	Spouse    *RawMarriage  `json:"spouse,omitempty"`
	Marriages []RawMarriage `json:"marriages,omitempty"`

	// Detail-only fields, ignored by the tree view.
	Immigrations []RawEvent `json:"immigrations,omitempty"`
	Citizenships []RawEvent `json:"citizenships,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// PrimaryName picks the display name: the first born-as variant when one
// exists, else the first variant, else the zero name.
func (p RawPerson) PrimaryName() RawName {
	for _, n := range p.Names {
		if n.Type.IsBorn() {
			return n
		}
	}
	if len(p.Names) > 0 {
		return p.Names[0]
	}
	return RawName{}
}

// AllMarriages merges the legacy single-spouse field and the marriages
// list into one slice, legacy entry first.
func (p RawPerson) AllMarriages() []RawMarriage {
	if p.Spouse == nil {
		return p.Marriages
	}
	out := make([]RawMarriage, 0, 1+len(p.Marriages))
	out = append(out, *p.Spouse)
	out = append(out, p.Marriages...)
	return out
}

// Validate checks structural validity of a record. The translator never
// calls this (malformed records degrade instead); it exists for import
// tooling that wants to report problems.
func (p *RawPerson) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("person ID cannot be zero")
	}
	if p.Gender != "" && !p.Gender.IsValid() {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	for _, m := range p.AllMarriages() {
		if m.OtherPerson != nil && m.OtherPerson.ID == 0 {
			return fmt.Errorf("marriage references person with zero ID")
		}
	}
	return nil
}
