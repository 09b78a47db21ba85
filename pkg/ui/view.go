package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kinview/pkg/tree"
)

// View implements tea.Model.
func (a *App) View() string {
	switch a.state {
	case stateLoading:
		return a.centered("Loading people…")
	case stateFailed:
		box := a.theme.ErrorBox.Render(fmt.Sprintf("Failed to load people\n\n%v\n\nr reload · q quit", a.err))
		return a.centered(box)
	case stateEmpty:
		return a.centered("No people in the dataset.\n\nAdd records and press r to reload.")
	}
	return a.readyView()
}

func (a *App) centered(s string) string {
	if a.width <= 0 || a.height <= 0 {
		return s
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, s)
}

func (a *App) readyView() string {
	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n")

	content := a.treeView()
	if a.showDetail {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, a.detail.view(a.contentHeight()))
	}
	if a.search.active {
		content = lipgloss.JoinVertical(lipgloss.Left, a.search.view(min(a.width, 60)), content)
	}
	b.WriteString(content)
	b.WriteString("\n")
	b.WriteString(a.footerView())
	return b.String()
}

func (a *App) headerView() string {
	focalName := ""
	for _, n := range a.sub.Nodes {
		if n.ID == a.focalID {
			focalName = n.DisplayName()
			break
		}
	}
	title := a.theme.Header.Render("kinview — " + focalName)

	depth := "all"
	if a.opts.AncestryDepth > 0 {
		depth = fmt.Sprintf("%d", a.opts.AncestryDepth)
	}
	stats := a.theme.Stats.Render(fmt.Sprintf("%s • depth %s", a.stats.Summary(), depth))

	third := ""
	if a.status != "" {
		third = a.theme.Status.Render(a.status)
	}
	return title + "\n" + stats + "\n" + third
}

func (a *App) footerView() string {
	return a.theme.Footer.Render(
		"←↑↓→ move • enter focus • d detail • / search • y copy link • e export • D depth • s siblings • r reload • q quit")
}

// treeView renders the generation rows of the visible subtree, scrolled
// so the selected card stays on screen.
func (a *App) treeView() string {
	nodeSep := a.opts.NodeSep
	if nodeSep <= 0 {
		nodeSep = 2
	}
	levelSep := a.opts.LevelSep
	if levelSep <= 0 {
		levelSep = 1
	}
	gap := strings.Repeat(" ", nodeSep)

	selID := ""
	if n, ok := a.selectedNode(); ok {
		selID = n.ID
	}

	var rowViews []string
	selRow := 0
	for i, row := range a.sub.Rows() {
		cards := make([]string, 0, len(row)*2)
		for j, n := range row {
			if j > 0 {
				cards = append(cards, gap)
			}
			if n.ID == selID {
				selRow = i
			}
			cards = append(cards, RenderCard(a.theme, n, a.sub.HiddenKin(n), n.ID == a.focalID, n.ID == selID))
		}
		rowViews = append(rowViews, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	spacer := strings.Repeat("\n", levelSep)
	full := strings.Join(rowViews, spacer+"\n")
	lines := strings.Split(full, "\n")

	lines = a.scrollWindow(lines, selRow*(tree.CardHeight+levelSep))

	maxw := lipgloss.NewStyle().MaxWidth(a.width)
	for i, line := range lines {
		if a.width > 0 {
			lines[i] = maxw.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// scrollWindow slices the rendered lines to the content height, keeping
// the selected row's first line near the middle of the window.
func (a *App) scrollWindow(lines []string, selLine int) []string {
	visible := a.contentHeight()
	if len(lines) <= visible {
		return lines
	}
	start := selLine - visible/2
	if start < 0 {
		start = 0
	}
	if start > len(lines)-visible {
		start = len(lines) - visible
	}
	return lines[start : start+visible]
}
