package tree

import (
	"testing"

	"kinview/pkg/model"
)

// chain builds the A→B→C→D ancestor line: D is the youngest, C is D's
// father, and so on up.
func ancestorChain(t *testing.T) []Node {
	t.Helper()
	raw := []model.RawPerson{
		{ID: 1, Gender: model.GenderMale, Children: []int64{2}},
		{ID: 2, Gender: model.GenderMale, Children: []int64{3}, Parents: []model.RawRef{ref(1, model.GenderMale)}},
		{ID: 3, Gender: model.GenderMale, Children: []int64{4}, Parents: []model.RawRef{ref(2, model.GenderMale)}},
		{ID: 4, Gender: model.GenderUnknown, Parents: []model.RawRef{ref(3, model.GenderMale)}},
	}
	return Translate(raw)
}

func TestBuildView_UnknownFocalReturnsEmpty(t *testing.T) {
	nodes := ancestorChain(t)
	sub := BuildView(nodes, "nonexistent-id", Options{})
	if !sub.Empty() {
		t.Fatalf("Expected empty subtree for unknown focal, got %d nodes", len(sub.Nodes))
	}
	if len(sub.Visible) != 0 {
		t.Errorf("Expected empty visible set, got %v", sub.Visible)
	}
}

func TestBuildView_AncestryDepthBounding(t *testing.T) {
	nodes := ancestorChain(t)
	sub := BuildView(nodes, "4", Options{AncestryDepth: 1})

	for _, id := range []string{"4", "3"} {
		if !sub.Visible[id] {
			t.Errorf("Expected %s visible at ancestry depth 1", id)
		}
	}
	for _, id := range []string{"2", "1"} {
		if sub.Visible[id] {
			t.Errorf("Expected %s excluded at ancestry depth 1", id)
		}
	}
}

func TestBuildView_UnlimitedDepthByDefault(t *testing.T) {
	nodes := ancestorChain(t)
	sub := BuildView(nodes, "4", Options{})
	if len(sub.Visible) != 4 {
		t.Errorf("Expected whole chain visible, got %v", sub.Visible)
	}
}

func TestBuildView_ProgenyDepthBounding(t *testing.T) {
	nodes := ancestorChain(t)
	sub := BuildView(nodes, "1", Options{ProgenyDepth: 2})
	if !sub.Visible["2"] || !sub.Visible["3"] {
		t.Errorf("Expected two descendant generations visible, got %v", sub.Visible)
	}
	if sub.Visible["4"] {
		t.Errorf("Expected great-grandchild excluded at progeny depth 2")
	}
}

func TestBuildView_SpousesIncludedButNotExpanded(t *testing.T) {
	// Focal 1 married to 2; 2's mother 3 must stay hidden (a spouse's
	// other relatives are not pulled in).
	raw := []model.RawPerson{
		{ID: 1, Gender: model.GenderMale, Marriages: []model.RawMarriage{
			{OtherPerson: &model.RawRef{ID: 2, Gender: model.GenderFemale}},
		}},
		{ID: 2, Gender: model.GenderFemale, Parents: []model.RawRef{ref(3, model.GenderFemale)}},
		{ID: 3, Gender: model.GenderFemale},
	}
	sub := BuildView(Translate(raw), "1", Options{})
	if !sub.Visible["2"] {
		t.Errorf("Expected spouse visible")
	}
	if sub.Visible["3"] {
		t.Errorf("Expected spouse's mother hidden, got %v", sub.Visible)
	}

	// The spouse's card should advertise the hidden parent.
	var spouse Node
	for _, n := range sub.Nodes {
		if n.ID == "2" {
			spouse = n
		}
	}
	if !sub.HiddenKin(spouse).Above {
		t.Errorf("Expected hidden-kin-above indicator on spouse")
	}
}

func TestBuildView_SiblingsOnlyForFocal(t *testing.T) {
	raw := []model.RawPerson{
		{ID: 1, Gender: model.GenderMale},
		{ID: 2, Gender: model.GenderFemale},
		// 3 and 4 are siblings; 5 is a child of 3 only.
		{ID: 3, Gender: model.GenderMale, Parents: []model.RawRef{ref(1, model.GenderMale), ref(2, model.GenderFemale)}, Children: []int64{5}},
		{ID: 4, Gender: model.GenderFemale, Parents: []model.RawRef{ref(1, model.GenderMale), ref(2, model.GenderFemale)}},
		{ID: 5, Gender: model.GenderFemale, Parents: []model.RawRef{ref(3, model.GenderMale)}},
	}
	nodes := Translate(raw)

	// Focused on 3: sibling 4 appears.
	sub := BuildView(nodes, "3", Options{})
	if !sub.Visible["4"] {
		t.Errorf("Expected focal sibling visible, got %v", sub.Visible)
	}

	// Focused on 5: parent 3 is included, but 3's sibling 4 is not
	// (sibling edges are not transitive). 4 remains reachable as a
	// child of 1 and 2 though, so bound ancestry to one hop.
	sub = BuildView(nodes, "5", Options{AncestryDepth: 1})
	if sub.Visible["4"] {
		t.Errorf("Expected non-focal sibling hidden, got %v", sub.Visible)
	}

	// HideFocalSiblings suppresses the sibling row.
	sub = BuildView(nodes, "3", Options{HideFocalSiblings: true, AncestryDepth: 1, ProgenyDepth: 1})
	if sub.Visible["4"] {
		t.Errorf("Expected siblings hidden when HideFocalSiblings is set")
	}
}

func TestBuildView_AncestorsDoNotExpandDownward(t *testing.T) {
	// 1 has children 2 (focal) and 3. With siblings hidden, 3 must not
	// ride in via the shared parent.
	raw := []model.RawPerson{
		{ID: 1, Gender: model.GenderMale, Children: []int64{2, 3}},
		{ID: 2, Gender: model.GenderMale, Parents: []model.RawRef{ref(1, model.GenderMale)}},
		{ID: 3, Gender: model.GenderMale, Parents: []model.RawRef{ref(1, model.GenderMale)}},
	}
	sub := BuildView(Translate(raw), "2", Options{HideFocalSiblings: true})
	if sub.Visible["3"] {
		t.Errorf("Expected parent's other child hidden, got %v", sub.Visible)
	}
}

func TestBuildView_SpacingDoesNotAffectInclusion(t *testing.T) {
	nodes := ancestorChain(t)
	a := BuildView(nodes, "4", Options{})
	b := BuildView(nodes, "4", Options{NodeSep: 10, LevelSep: 5})
	if len(a.Visible) != len(b.Visible) {
		t.Errorf("Spacing changed the visible set: %v vs %v", a.Visible, b.Visible)
	}
}
