package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"kinview/pkg/tree"
)

const (
	svgCardFill   = "#282a36"
	svgFocalFill  = "#44475a"
	svgCardStroke = "#6272a4"
	svgFocalLine  = "#bd93f9"
	svgText       = "#f8f8f2"
	svgSubtext    = "#bfbfbf"
	svgEdge       = "#6272a4"
)

// WriteSVG renders the subtree as a standalone SVG document.
func WriteSVG(w io.Writer, s *tree.Subtree) error {
	width, height := canvasSize(s)
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1e1f29")

	for _, e := range visibleEdges(s) {
		x1, y1 := cardAnchor(s, e.fromID, e.partner, false)
		x2, y2 := cardAnchor(s, e.toID, e.partner, true)
		style := fmt.Sprintf("stroke:%s;stroke-width:1.5;fill:none", svgEdge)
		if e.partner {
			style += ";stroke-dasharray:4 3"
		}
		canvas.Line(x1, y1, x2, y2, style)
	}

	for _, n := range s.Nodes {
		p := s.Pos[n.ID]
		x := p.X*cellW + marginPx
		y := p.Y*cellH + marginPx
		cw := tree.CardWidth * cellW
		ch := tree.CardHeight * cellH

		fill, stroke := svgCardFill, svgCardStroke
		if n.ID == s.FocalID {
			fill, stroke = svgFocalFill, svgFocalLine
		}
		canvas.Roundrect(x, y, cw, ch, 8, 8,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", fill, stroke))

		name := fmt.Sprintf("%s %s", n.Gender.Glyph(), n.DisplayName())
		canvas.Text(x+12, y+ch/2-6, name,
			fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:14px;font-weight:bold", svgText))
		if span := n.Lifespan(); span != "" {
			canvas.Text(x+12, y+ch/2+16, span,
				fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:12px", svgSubtext))
		}
	}

	canvas.End()
	return nil
}

// cardAnchor returns the pixel point where an edge meets a card:
// side centers for partner edges, bottom/top centers for parent-child.
func cardAnchor(s *tree.Subtree, id string, partner, incoming bool) (int, int) {
	p := s.Pos[id]
	x := p.X*cellW + marginPx
	y := p.Y*cellH + marginPx
	cw := tree.CardWidth * cellW
	ch := tree.CardHeight * cellH
	if partner {
		return x + cw/2, y + ch/2
	}
	if incoming {
		return x + cw/2, y // child: top center
	}
	return x + cw/2, y + ch // parent: bottom center
}
