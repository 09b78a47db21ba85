package export

import (
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"kinview/pkg/tree"
)

// WritePNG renders the subtree as a PNG image. Uses the fixed basicfont
// face so the export needs no font files on disk.
func WritePNG(w io.Writer, s *tree.Subtree) error {
	width, height := canvasSize(s)
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetHexColor("#1e1f29")
	dc.Clear()

	for _, e := range visibleEdges(s) {
		x1, y1 := cardAnchor(s, e.fromID, e.partner, false)
		x2, y2 := cardAnchor(s, e.toID, e.partner, true)
		dc.SetHexColor(svgEdge)
		dc.SetLineWidth(1.5)
		if e.partner {
			dc.SetDash(4, 3)
		} else {
			dc.SetDash()
		}
		dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
		dc.Stroke()
	}
	dc.SetDash()

	for _, n := range s.Nodes {
		p := s.Pos[n.ID]
		x := float64(p.X*cellW + marginPx)
		y := float64(p.Y*cellH + marginPx)
		cw := float64(tree.CardWidth * cellW)
		ch := float64(tree.CardHeight * cellH)

		if n.ID == s.FocalID {
			dc.SetHexColor(svgFocalFill)
		} else {
			dc.SetHexColor(svgCardFill)
		}
		dc.DrawRoundedRectangle(x, y, cw, ch, 8)
		dc.FillPreserve()
		if n.ID == s.FocalID {
			dc.SetHexColor(svgFocalLine)
		} else {
			dc.SetHexColor(svgCardStroke)
		}
		dc.SetLineWidth(2)
		dc.Stroke()

		dc.SetHexColor(svgText)
		dc.DrawString(n.Gender.Glyph()+" "+n.DisplayName(), x+12, y+ch/2-6)
		if span := n.Lifespan(); span != "" {
			dc.SetHexColor(svgSubtext)
			dc.DrawString(span, x+12, y+ch/2+16)
		}
	}

	return dc.EncodePNG(w)
}
