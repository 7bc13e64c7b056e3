// Package camera renders the simulated camera image for a lighting mode.
package camera

import (
	"image/color"
	"strings"

	"visionoptics/pkg/optics"
	"visionoptics/pkg/ui/components/utils"
	"visionoptics/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const (
	feature    = "5¢"
	featureBar = "━━━━"

	maxInnerWidth = 24
	minInnerWidth = 8
	innerHeight   = 7
)

// Frame returns the inner rows of the image, unstyled. Rows are filled with
// the background rune; the feature and its bar sit in the middle.
func Frame(out optics.SimulatedOutput, width int) []string {
	iw := innerWidth(width)
	fill := fillRune(out.Background)

	rows := make([]string, innerHeight)
	mid := innerHeight / 2
	for y := range rows {
		switch y {
		case mid:
			rows[y] = centerOn(feature, iw, fill)
		case mid + 1:
			rows[y] = centerOn(featureBar, iw, fill)
		default:
			rows[y] = strings.Repeat(string(fill), iw)
		}
	}
	return rows
}

// Render draws the heading, framed image and caption.
func Render(out optics.SimulatedOutput, width int) string {
	iw := innerWidth(width)

	bg := shadeColor(out.Background)
	fillStyle := lipgloss.NewStyle().Background(bg)
	featureStyle := lipgloss.NewStyle().Background(bg).Foreground(featureColor(out)).Bold(true)

	rows := make([]string, innerHeight)
	mid := innerHeight / 2
	for y := range rows {
		switch y {
		case mid:
			rows[y] = styledCenter(feature, iw, fillStyle, featureStyle)
		case mid + 1:
			rows[y] = styledCenter(featureBar, iw, fillStyle, featureStyle)
		default:
			rows[y] = fillStyle.Render(strings.Repeat(" ", iw))
		}
	}

	box := frameStyle.Render(strings.Join(rows, "\n"))
	boxWidth := lipgloss.Width(box)

	heading := styles.FooterStyle.Render(utils.CenterPlain(out.Heading, boxWidth))
	caption := make([]string, 0, 2)
	for _, l := range utils.WrapText(out.Caption, boxWidth) {
		caption = append(caption, captionStyle.Render(utils.CenterPlain(l, boxWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		box,
		strings.Join(caption, "\n"),
	)
}

// RenderPlain is Render without colours. Dark areas are shaded so the
// contrast survives.
func RenderPlain(out optics.SimulatedOutput, width int) string {
	rows := Frame(out, width)
	iw := innerWidth(width)

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, utils.CenterPlain(out.Heading, iw+2))
	lines = append(lines, "╭"+strings.Repeat("─", iw)+"╮")
	for _, r := range rows {
		lines = append(lines, "│"+r+"│")
	}
	lines = append(lines, "╰"+strings.Repeat("─", iw)+"╯")
	for _, l := range utils.WrapText(out.Caption, iw+2) {
		lines = append(lines, utils.CenterPlain(l, iw+2))
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

func innerWidth(width int) int {
	iw := width - 2
	if iw > maxInnerWidth {
		iw = maxInnerWidth
	}
	if iw < minInnerWidth {
		iw = minInnerWidth
	}
	return iw
}

func fillRune(s optics.Shade) rune {
	if s == optics.ShadeDark {
		return '▒'
	}
	return ' '
}

func centerOn(text string, width int, fill rune) string {
	tw := runewidth.StringWidth(text)
	left := (width - tw) / 2
	right := width - tw - left
	return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), right)
}

func styledCenter(text string, width int, fill, fg lipgloss.Style) string {
	tw := runewidth.StringWidth(text)
	left := (width - tw) / 2
	right := width - tw - left
	return fill.Render(strings.Repeat(" ", left)) + fg.Render(text) + fill.Render(strings.Repeat(" ", right))
}

func shadeColor(s optics.Shade) color.Color {
	if s == optics.ShadeDark {
		return styles.ColorShadeDark
	}
	return styles.ColorShadeLight
}

func featureColor(out optics.SimulatedOutput) color.Color {
	if out.Feature == optics.ShadeDark {
		return styles.ColorInk
	}
	if out.Glow {
		return styles.ColorGlow
	}
	return styles.ColorShadeLight
}

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBorderMuted)

	captionStyle = lipgloss.NewStyle().
			Foreground(styles.ColorAccent).
			Bold(true)
)
