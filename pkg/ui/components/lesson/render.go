// Package lesson renders the illumination lesson and hosts it in a
// scrollable pane.
package lesson

import (
	"strings"

	"visionoptics/pkg/optics"
	"visionoptics/pkg/ui/components/camera"
	"visionoptics/pkg/ui/components/diagram"
	"visionoptics/pkg/ui/components/utils"
	"visionoptics/pkg/ui/styles"

	"charm.land/lipgloss/v2"
)

const (
	// sideBySideWidth is the narrowest pane that fits diagram and camera
	// next to each other.
	sideBySideWidth = 72
	cameraColumn    = 28
	columnGap       = 2
)

type renderer struct {
	plain bool
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Render lays out the whole lesson for a pane of the given width.
func Render(c optics.Content, ch optics.Chrome, width int) string {
	return renderer{}.lesson(c, ch, width)
}

// RenderPlain is Render without colours, for non-terminal output.
func RenderPlain(c optics.Content, ch optics.Chrome, width int) string {
	return renderer{plain: true}.lesson(c, ch, width)
}

func (r renderer) lesson(c optics.Content, ch optics.Chrome, width int) string {
	if width < diagram.MinWidth {
		width = diagram.MinWidth
	}

	sections := []string{
		r.header(ch, width),
		r.modeBar(c, ch, width),
		r.infoCard(c, width),
		r.figures(c, width),
		r.uses(c),
		r.realWorld(ch, width),
		r.footer(ch, width),
	}
	return strings.Join(sections, "\n\n")
}

func (r renderer) footer(ch optics.Chrome, width int) string {
	lines := utils.WrapText(ch.DiagramFooter, width)
	for i, l := range lines {
		lines[i] = r.style(styles.FooterStyle, l)
	}
	return strings.Join(lines, "\n")
}

func (r renderer) header(ch optics.Chrome, width int) string {
	lines := []string{
		flow([]string{r.style(styles.HeadingStyle, ch.AppTitle), r.style(styles.TagStyle, ch.Tagline)}, width),
		r.style(styles.TitleStyle, ch.Subtitle),
	}
	for _, l := range utils.WrapText(ch.Intro, width) {
		lines = append(lines, r.style(styles.TextStyle, l))
	}
	return strings.Join(lines, "\n")
}

func (r renderer) modeBar(c optics.Content, ch optics.Chrome, width int) string {
	parts := []string{r.style(styles.TextMutedStyle, ch.ModeHeading+":")}
	for i, mode := range optics.Modes() {
		label := optics.ModeLabel(mode, c.Language)
		switch {
		case r.plain && mode == c.Mode:
			parts = append(parts, "[*] "+label)
		case r.plain:
			parts = append(parts, "[ ] "+label)
		case mode == c.Mode:
			parts = append(parts, styles.SelectedStyle.Render(modeKey(i)+" "+label))
		default:
			parts = append(parts, styles.UnselectedStyle.Render(modeKey(i)+" "+label))
		}
	}
	parts = append(parts, r.style(styles.FooterStyle, "[l] "+ch.LanguageName))
	return flow(parts, width)
}

// flow joins parts with spaces, starting a new line when the next part
// would overflow width.
func flow(parts []string, width int) string {
	var sb strings.Builder
	lineWidth := 0
	for _, part := range parts {
		w := lipgloss.Width(part)
		if lineWidth > 0 && lineWidth+1+w > width {
			sb.WriteString("\n")
			lineWidth = 0
		}
		if lineWidth > 0 {
			sb.WriteString(" ")
			lineWidth++
		}
		sb.WriteString(part)
		lineWidth += w
	}
	return sb.String()
}

func modeKey(i int) string {
	return string(rune('1' + i))
}

func (r renderer) infoCard(c optics.Content, width int) string {
	lines := []string{r.style(styles.TitleStyle, c.Title)}
	for _, l := range utils.WrapText(c.Description, width) {
		lines = append(lines, r.style(styles.TextStyle, l))
	}
	return strings.Join(lines, "\n")
}

func (r renderer) figures(c optics.Content, width int) string {
	if width >= sideBySideWidth {
		diagramWidth := width - cameraColumn - columnGap
		left := r.diagram(c.Diagram, diagramWidth)
		right := r.camera(c.Output, cameraColumn)
		gap := strings.Repeat(" ", columnGap)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
	}
	return r.diagram(c.Diagram, width) + "\n\n" + r.camera(c.Output, width)
}

func (r renderer) diagram(d optics.Diagram, width int) string {
	if r.plain {
		return diagram.RenderPlain(d, width)
	}
	return diagram.Render(d, width)
}

func (r renderer) camera(out optics.SimulatedOutput, width int) string {
	if r.plain {
		return camera.RenderPlain(out, width)
	}
	return camera.Render(out, width)
}

func (r renderer) uses(c optics.Content) string {
	lines := []string{r.style(styles.TextBoldStyle, c.UsesHeading)}
	for _, u := range c.Uses {
		if u.Suitable {
			lines = append(lines, " "+r.style(styles.SuitableStyle, "✓")+" "+r.style(styles.TextStyle, u.Text))
		} else {
			lines = append(lines, " "+r.style(styles.UnsuitableStyle, "✗")+" "+r.style(styles.TextMutedStyle, u.Text))
		}
	}
	return strings.Join(lines, "\n")
}

func (r renderer) realWorld(ch optics.Chrome, width int) string {
	rw := ch.RealWorld
	lines := []string{r.style(styles.TitleStyle, rw.Title)}
	for _, l := range utils.WrapText(rw.Intro, width) {
		lines = append(lines, r.style(styles.TextStyle, l))
	}
	lines = append(lines, "")
	lines = append(lines, r.paragraph(rw.BrightHeader, rw.BrightText, width)...)
	lines = append(lines, "")
	lines = append(lines, r.paragraph(rw.DarkHeader, rw.DarkText, width)...)
	return strings.Join(lines, "\n")
}

func (r renderer) paragraph(header, text string, width int) []string {
	lines := []string{r.style(styles.TextBoldStyle, header)}
	for _, l := range utils.WrapText(text, width-2) {
		lines = append(lines, "  "+r.style(styles.TextStyle, l))
	}
	return lines
}
