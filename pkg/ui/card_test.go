package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"kinview/pkg/tree"
)

func TestRenderCard_FixedDimensions(t *testing.T) {
	th := DarkTheme()
	nodes := []tree.Node{
		{ID: "1", First: "Aron", Last: "Levi", BirthYear: "1870", DeathYear: "1940"},
		{ID: "2"}, // no name at all
		{ID: "3", First: "Maximiliana-Wilhelmina", Last: "von Habsburg-Lothringen"},
	}
	for _, n := range nodes {
		card := RenderCard(th, n, tree.HiddenKin{}, false, false)
		if w := lipgloss.Width(card); w != tree.CardWidth {
			t.Errorf("Card for %s is %d wide, want %d", n.ID, w, tree.CardWidth)
		}
		if h := lipgloss.Height(card); h != tree.CardHeight {
			t.Errorf("Card for %s is %d tall, want %d", n.ID, h, tree.CardHeight)
		}
	}
}

func TestRenderCard_Content(t *testing.T) {
	th := DarkTheme()
	n := tree.Node{ID: "1", First: "Aron", Last: "Levi", BirthYear: "1870", DeathYear: "1940"}
	card := RenderCard(th, n, tree.HiddenKin{}, false, false)
	if !strings.Contains(card, "Aron Levi") {
		t.Errorf("Expected name on card:\n%s", card)
	}
	if !strings.Contains(card, "1870–1940") {
		t.Errorf("Expected lifespan on card:\n%s", card)
	}

	// A nameless person falls back to the id marker.
	card = RenderCard(th, tree.Node{ID: "7"}, tree.HiddenKin{}, false, false)
	if !strings.Contains(card, "#7") {
		t.Errorf("Expected id fallback on card:\n%s", card)
	}
}

func TestRenderCard_HiddenKinMarkers(t *testing.T) {
	th := DarkTheme()
	n := tree.Node{ID: "1", First: "Aron"}

	card := RenderCard(th, n, tree.HiddenKin{Above: true, Beside: true, Below: true}, false, false)
	for _, marker := range []string{"▲", "◆", "▼"} {
		if !strings.Contains(card, marker) {
			t.Errorf("Expected %s marker on card:\n%s", marker, card)
		}
	}

	card = RenderCard(th, n, tree.HiddenKin{}, false, false)
	for _, marker := range []string{"▲", "◆", "▼"} {
		if strings.Contains(card, marker) {
			t.Errorf("Unexpected %s marker on card:\n%s", marker, card)
		}
	}
}

func TestRenderCard_StylingKeepsFootprint(t *testing.T) {
	th := DarkTheme()
	n := tree.Node{ID: "1", First: "Aron"}
	plain := RenderCard(th, n, tree.HiddenKin{}, false, false)
	focal := RenderCard(th, n, tree.HiddenKin{}, true, false)
	selected := RenderCard(th, n, tree.HiddenKin{}, false, true)
	for _, c := range []string{plain, focal, selected} {
		if lipgloss.Width(c) != tree.CardWidth || lipgloss.Height(c) != tree.CardHeight {
			t.Errorf("Styled card footprint drifted to %dx%d", lipgloss.Width(c), lipgloss.Height(c))
		}
	}
}
