package analysis

import (
	"strings"
	"testing"

	"kinview/pkg/tree"
)

func TestCompute_Components(t *testing.T) {
	nodes := []tree.Node{
		{ID: "1"},
		{ID: "2", Father: "1"},
		{ID: "3", Father: "1"},
		// Second family line connected only by a partner edge.
		{ID: "4", Partners: []tree.Partner{{ID: "5"}}},
		{ID: "5"},
		// Loner.
		{ID: "6"},
	}
	s := Compute(nodes)
	if s.People != 6 {
		t.Errorf("Expected 6 people, got %d", s.People)
	}
	if s.FamilyLines != 3 {
		t.Errorf("Expected 3 family lines, got %d", s.FamilyLines)
	}
	if s.LargestLine != 3 {
		t.Errorf("Expected largest line of 3, got %d", s.LargestLine)
	}
}

func TestCompute_GenerationSpan(t *testing.T) {
	nodes := []tree.Node{
		{ID: "1"},
		{ID: "2", Father: "1"},
		{ID: "3", Mother: "2"},
		{ID: "4"},
	}
	if s := Compute(nodes); s.GenerationSpan != 3 {
		t.Errorf("Expected generation span 3, got %d", s.GenerationSpan)
	}
}

func TestCompute_CyclicParentData(t *testing.T) {
	// Bad import: 1 and 2 are each other's fathers. Must terminate.
	nodes := []tree.Node{
		{ID: "1", Father: "2"},
		{ID: "2", Father: "1"},
	}
	s := Compute(nodes)
	if s.GenerationSpan < 1 {
		t.Errorf("Expected span of at least 1 on cyclic data, got %d", s.GenerationSpan)
	}
}

func TestCompute_Lifespans(t *testing.T) {
	nodes := []tree.Node{
		{ID: "1", BirthYear: "1900", DeathYear: "1980"},
		{ID: "2", BirthYear: "1900", DeathYear: "1960"},
		// No death year, then a death before birth: both skipped.
		{ID: "3", BirthYear: "1900"},
		{ID: "4", BirthYear: "1980", DeathYear: "1900"},
	}
	s := Compute(nodes)
	if s.LifespanCount != 2 {
		t.Fatalf("Expected 2 measurable lifespans, got %d", s.LifespanCount)
	}
	if s.MeanLifespan != 70 {
		t.Errorf("Expected mean lifespan 70, got %v", s.MeanLifespan)
	}
	if s.MedianLifespan < 60 || s.MedianLifespan > 80 {
		t.Errorf("Median lifespan out of range: %v", s.MedianLifespan)
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	if s.People != 0 || s.FamilyLines != 0 {
		t.Errorf("Expected zero stats for empty input, got %+v", s)
	}
}

func TestSummary(t *testing.T) {
	s := Stats{People: 12, FamilyLines: 2, GenerationSpan: 4, MeanLifespan: 71.5, LifespanCount: 6}
	got := s.Summary()
	if !strings.Contains(got, "12 people") || !strings.Contains(got, "2 family lines") {
		t.Errorf("Unexpected summary: %q", got)
	}
	if !strings.Contains(got, "avg lifespan 72") {
		t.Errorf("Expected rounded lifespan in summary: %q", got)
	}

	// No measurable lifespans drops the segment entirely.
	s.LifespanCount = 0
	if strings.Contains(s.Summary(), "lifespan") {
		t.Errorf("Expected no lifespan segment: %q", s.Summary())
	}
}
