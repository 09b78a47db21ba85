// Package export renders a laid-out subtree to SVG or PNG for sharing
// outside the terminal.
package export

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"kinview/pkg/tree"
)

// Pixel scale for one layout cell. The tree layout is computed in
// terminal cells; exports stretch cells to keep card proportions.
const (
	cellW = 9
	cellH = 20

	marginPx = 24
)

// canvasSize returns the pixel dimensions needed for a subtree.
func canvasSize(s *tree.Subtree) (w, h int) {
	maxX, maxY := 0, 0
	for _, p := range s.Pos {
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	w = (maxX+tree.CardWidth)*cellW + 2*marginPx
	h = (maxY+tree.CardHeight)*cellH + 2*marginPx
	return w, h
}

// WriteFile renders the subtree to path, picking the format from the
// extension (.svg or .png).
func WriteFile(path string, s *tree.Subtree) error {
	if s.Empty() {
		return fmt.Errorf("nothing to export: empty subtree")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(strings.ToLower(path), ".svg"):
		return WriteSVG(f, s)
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return WritePNG(f, s)
	default:
		return fmt.Errorf("unsupported export format: %s", path)
	}
}

// WriteAll renders the subtree to several files concurrently.
func WriteAll(s *tree.Subtree, paths ...string) error {
	var g errgroup.Group
	for _, p := range paths {
		g.Go(func() error { return WriteFile(p, s) })
	}
	return g.Wait()
}

// edge is a parent-child or partner connector between visible cards.
type edge struct {
	fromID, toID string
	partner      bool
}

// visibleEdges lists the connectors to draw: father/mother edges and
// partner edges where both ends are on screen. Partner edges are
// deduplicated by keeping the lexically smaller end first.
func visibleEdges(s *tree.Subtree) []edge {
	var edges []edge
	seen := make(map[string]bool)
	for _, n := range s.Nodes {
		for _, pid := range []string{n.Father, n.Mother} {
			if pid != "" && s.Visible[pid] {
				edges = append(edges, edge{fromID: pid, toID: n.ID})
			}
		}
		for _, p := range n.Partners {
			if !s.Visible[p.ID] {
				continue
			}
			a, b := n.ID, p.ID
			if a > b {
				a, b = b, a
			}
			key := a + "|" + b
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, edge{fromID: a, toID: b, partner: true})
		}
	}
	return edges
}
