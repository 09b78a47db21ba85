package match

import (
	"testing"

	"kinview/pkg/model"
)

func person(id int64, first, last, birth string) model.RawPerson {
	p := model.RawPerson{
		ID:    id,
		Names: []model.RawName{{First: first, Last: last}},
	}
	if birth != "" {
		p.Birth = &model.RawEvent{Date: birth}
	}
	return p
}

func TestFindDuplicates_ExactNameAndYear(t *testing.T) {
	people := []model.RawPerson{
		person(1, "William", "Smith", "1901-04-02"),
		person(2, "William", "Smith", "1901"),
		person(3, "Mary", "Smith", "1901"),
	}
	dups := FindDuplicates(people, Options{})
	if len(dups) != 1 {
		t.Fatalf("Expected 1 duplicate pair, got %d", len(dups))
	}
	if dups[0].A.ID != 1 || dups[0].B.ID != 2 {
		t.Errorf("Expected pair (1,2), got (%d,%d)", dups[0].A.ID, dups[0].B.ID)
	}
	if dups[0].Reason != "same name and birth year" {
		t.Errorf("Unexpected reason %q", dups[0].Reason)
	}
}

func TestFindDuplicates_BirthYearVeto(t *testing.T) {
	people := []model.RawPerson{
		person(1, "William", "Smith", "1901"),
		person(2, "William", "Smith", "1950"),
	}
	if dups := FindDuplicates(people, Options{}); len(dups) != 0 {
		t.Errorf("Expected conflicting birth years to veto, got %v", dups)
	}
}

func TestFindDuplicates_MissingYearStillMatches(t *testing.T) {
	people := []model.RawPerson{
		person(1, "William", "Smith", "1901"),
		person(2, "William", "Smith", ""),
	}
	dups := FindDuplicates(people, Options{})
	if len(dups) != 1 {
		t.Fatalf("Expected name-only match when a year is missing, got %d", len(dups))
	}
	if dups[0].Reason != "same name" {
		t.Errorf("Unexpected reason %q", dups[0].Reason)
	}
}

func TestFindDuplicates_LooseMode(t *testing.T) {
	people := []model.RawPerson{
		person(1, "Bill", "Smith", "1901"),
		person(2, "William", "Smith", "1902"),
	}
	if dups := FindDuplicates(people, Options{}); len(dups) != 0 {
		t.Errorf("Strict mode should not match nicknames, got %v", dups)
	}
	dups := FindDuplicates(people, Options{Loose: true})
	if len(dups) != 1 {
		t.Errorf("Loose mode should match Bill/William within two years, got %v", dups)
	}
}

func TestFindDuplicates_AnyNamePairMatches(t *testing.T) {
	// A married name on one record matching a born name on the other
	// still counts.
	a := model.RawPerson{ID: 1, Names: []model.RawName{
		{First: "Sara", Last: "Levi", Type: model.NameBorn},
		{First: "Sara", Last: "Cohen", Type: model.NameMarried},
	}}
	b := person(2, "Sara", "Cohen", "")
	if dups := FindDuplicates([]model.RawPerson{a, b}, Options{}); len(dups) != 1 {
		t.Errorf("Expected match across name variants, got %v", dups)
	}
}

func TestNamesMatch_RequiresBothParts(t *testing.T) {
	a := model.RawName{First: "William"}
	b := model.RawName{First: "William"}
	if namesMatch(a, b, false) {
		t.Error("First name alone should not match")
	}
	a = model.RawName{Last: "Smith"}
	b = model.RawName{Last: "Smith"}
	if namesMatch(a, b, false) {
		t.Error("Last name alone should not match")
	}
}
