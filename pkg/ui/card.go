package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"kinview/pkg/tree"
)

// cardInnerWidth is the text width inside a card's border and padding.
const cardInnerWidth = tree.CardWidth - 4

// RenderCard renders one person card. It is a pure function of the node
// and its visibility context; the caller decides where the card goes.
// Indicator glyphs mark family that exists but is off screen: ▲ above
// (parents), ◆ beside (partners), ▼ below (children).
func RenderCard(t Theme, n tree.Node, kin tree.HiddenKin, focal, selected bool) string {
	glyph := lipgloss.NewStyle().
		Foreground(GenderColor(n.Gender.Glyph())).
		Render(n.Gender.Glyph())

	// Padding is computed on plain text widths; the glyph is styled
	// after measuring so escape codes never skew the card width.
	name := runewidth.Truncate(n.DisplayName(), cardInnerWidth-4, "…")
	pad := cardInnerWidth - 3 - runewidth.StringWidth(name)
	top := glyph + " " + name + strings.Repeat(" ", pad)
	if kin.Above {
		top += "▲"
	} else {
		top += " "
	}

	span := runewidth.Truncate(n.Lifespan(), cardInnerWidth-3, "…")
	bottom := span + strings.Repeat(" ", cardInnerWidth-2-runewidth.StringWidth(span))
	if kin.Beside {
		bottom += "◆"
	} else {
		bottom += " "
	}
	if kin.Below {
		bottom += "▼"
	} else {
		bottom += " "
	}

	style := t.Card
	switch {
	case focal:
		style = t.FocalCard
	case selected:
		style = t.SelectedCard
	}
	return style.Render(top + "\n" + bottom)
}
