package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"kinview/pkg/tree"
)

// detailPanel shows the full record of the focal person: name variants,
// events, relationships with resolved names, and markdown notes.
type detailPanel struct {
	vp     viewport.Model
	detail *tree.Detail
	theme  Theme
	width  int
}

func newDetailPanel(t Theme) detailPanel {
	return detailPanel{vp: viewport.New(0, 0), theme: t}
}

func (d *detailPanel) setSize(width, height int) {
	d.width = width
	d.vp.Width = width
	d.vp.Height = height
	d.refill()
}

func (d *detailPanel) setDetail(detail *tree.Detail) {
	d.detail = detail
	d.vp.GotoTop()
	d.refill()
}

func (d *detailPanel) refill() {
	if d.detail == nil {
		d.vp.SetContent("")
		return
	}
	d.vp.SetContent(d.render())
}

func (d *detailPanel) render() string {
	det := d.detail
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	label := lipgloss.NewStyle().Foreground(ColorMuted)

	b.WriteString(title.Render(fmt.Sprintf("%s %s", det.Gender.Glyph(), det.Name)))
	b.WriteString("\n")
	living := "deceased"
	if det.IsLiving {
		living = "living"
	}
	b.WriteString(label.Render(fmt.Sprintf("#%s · %s", det.ID, living)))
	b.WriteString("\n")

	if len(det.AltNames) > 0 {
		b.WriteString("\n" + label.Render("Also known as") + "\n")
		for _, n := range det.AltNames {
			b.WriteString("  " + n + "\n")
		}
	}

	if len(det.Events) > 0 {
		b.WriteString("\n" + label.Render("Events") + "\n")
		for _, ev := range det.Events {
			line := "  " + ev.Kind
			if ev.Date != "" {
				line += " · " + ev.Date
			}
			if ev.Location != "" {
				line += " · " + ev.Location
			}
			b.WriteString(line + "\n")
			if ev.Comment != "" {
				b.WriteString("    " + label.Render(ev.Comment) + "\n")
			}
		}
	}

	if len(det.Relations) > 0 {
		b.WriteString("\n" + label.Render("Family") + "\n")
		for _, r := range det.Relations {
			b.WriteString(fmt.Sprintf("  %-8s %s\n", r.Kind, r.Name))
		}
	}

	if det.Notes != "" {
		b.WriteString("\n" + label.Render("Notes") + "\n")
		b.WriteString(renderNotes(det.Notes, d.width-2))
	}

	return b.String()
}

// renderNotes renders the free-text notes as markdown, falling back to
// the raw text when the renderer cannot be built.
func renderNotes(notes string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return notes
	}
	out, err := r.Render(notes)
	if err != nil {
		return notes
	}
	return out
}

func (d *detailPanel) view(height int) string {
	d.vp.Height = height - 2
	return d.theme.FocusedPanel.Width(d.width).Render(d.vp.View())
}
