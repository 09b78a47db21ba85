package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"kinview/pkg/tree"
)

// maxSearchResults caps the result list under the input.
const maxSearchResults = 8

// personSource adapts the node list for fuzzy matching over
// "First Middle Last (birth)" labels.
type personSource struct {
	labels []string
}

func (s personSource) String(i int) string { return s.labels[i] }

func (s personSource) Len() int { return len(s.labels) }

// searchOverlay is the "/" person finder: a text input with live fuzzy
// results; enter refocuses the tree on the picked person.
type searchOverlay struct {
	active  bool
	input   textinput.Model
	source  personSource
	ids     []string
	matches []fuzzy.Match
	cursor  int
	theme   Theme
}

func newSearchOverlay(t Theme) searchOverlay {
	in := textinput.New()
	in.Placeholder = "name or year"
	in.Prompt = "/ "
	in.CharLimit = 64
	return searchOverlay{input: in, theme: t}
}

// setNodes rebuilds the haystack after a load or refresh.
func (s *searchOverlay) setNodes(nodes []tree.Node) {
	s.ids = make([]string, len(nodes))
	s.source.labels = make([]string, len(nodes))
	for i, n := range nodes {
		s.ids[i] = n.ID
		label := strings.TrimSpace(strings.Join([]string{n.First, n.Middle, n.Last}, " "))
		if label == "" {
			label = "#" + n.ID
		}
		if n.BirthYear != "" {
			label = fmt.Sprintf("%s (%s)", label, n.BirthYear)
		}
		s.source.labels[i] = label
	}
	s.refresh()
}

func (s *searchOverlay) open() {
	s.active = true
	s.input.SetValue("")
	s.input.Focus()
	s.matches = nil
	s.cursor = 0
}

func (s *searchOverlay) close() {
	s.active = false
	s.input.Blur()
}

func (s *searchOverlay) refresh() {
	query := s.input.Value()
	if query == "" {
		s.matches = nil
		s.cursor = 0
		return
	}
	s.matches = fuzzy.FindFrom(query, s.source)
	if len(s.matches) > maxSearchResults {
		s.matches = s.matches[:maxSearchResults]
	}
	if s.cursor >= len(s.matches) {
		s.cursor = 0
	}
}

// selected returns the person id under the result cursor, or "".
func (s *searchOverlay) selected() string {
	if len(s.matches) == 0 {
		return ""
	}
	return s.ids[s.matches[s.cursor].Index]
}

func (s *searchOverlay) view(width int) string {
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n")

	sel := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	dim := lipgloss.NewStyle().Foreground(ColorSubtext)
	for i, m := range s.matches {
		line := s.source.labels[m.Index]
		if i == s.cursor {
			b.WriteString(sel.Render("▸ " + line))
		} else {
			b.WriteString(dim.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if s.input.Value() != "" && len(s.matches) == 0 {
		b.WriteString(dim.Render("  no matches"))
	}
	return s.theme.FocusedPanel.Width(width - 2).Render(strings.TrimRight(b.String(), "\n"))
}
