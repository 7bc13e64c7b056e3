// Package diagram rasterises the lesson's ray diagram onto a character grid.
package diagram

import (
	"strings"

	"visionoptics/pkg/optics"
	"visionoptics/pkg/ui/components/utils"
	"visionoptics/pkg/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const (
	MinWidth  = 24
	minHeight = 10

	cameraGlyph = '▣'
	sourceGlyph = '☼'
)

// Layout returns the grid size used for a pane width.
func Layout(width int) (int, int) {
	if width < MinWidth {
		width = MinWidth
	}
	// 400x300 logical units on cells roughly twice as tall as wide.
	height := width * 3 / 8
	if height < minHeight {
		height = minHeight
	}
	return width, height
}

// Draw rasterises d onto a canvas sized for width.
func Draw(d optics.Diagram, width int) *Canvas {
	w, h := Layout(width)
	c := NewCanvas(w, h)

	for _, seg := range d.SurfaceSegments() {
		k := inkSurface
		if seg.From.Y != seg.To.Y {
			k = inkDefect
		}
		x0, y0 := c.Project(seg.From)
		x1, y1 := c.Project(seg.To)
		c.Line(x0, y0, x1, y1, false, k)
	}

	for _, ray := range d.Rays {
		k := inkRayLit
		if ray.Dashed {
			k = inkRayDim
		}
		segs := ray.Segments()
		for _, seg := range segs {
			x0, y0 := c.Project(seg.From)
			x1, y1 := c.Project(seg.To)
			c.Line(x0, y0, x1, y1, ray.Dashed, k)
		}
		if len(segs) > 0 {
			last := segs[len(segs)-1]
			x0, y0 := c.Project(last.From)
			x1, y1 := c.Project(last.To)
			c.set(x1, y1, arrowGlyph(x1-x0, y1-y0), k)
		}
	}

	drawFixture(c, d.Camera, cameraGlyph, inkCamera)
	drawFixture(c, d.Source, sourceGlyph, inkSource)

	for _, l := range d.Features {
		drawLabel(c, l)
	}
	for _, ray := range d.Rays {
		drawLabel(c, ray.Label)
	}

	return c
}

// Render draws the diagram with heading, legend and result line.
func Render(d optics.Diagram, width int) string {
	return render(d, width, inkStyle)
}

// RenderPlain is Render without colours.
func RenderPlain(d optics.Diagram, width int) string {
	return render(d, width, nil)
}

func render(d optics.Diagram, width int, style func(ink) lipgloss.Style) string {
	c := Draw(d, width)
	w, _ := c.Size()

	heading := d.Heading
	legend := "─── " + d.LegendRay + "   ▀▀ " + d.LegendPart
	if style != nil {
		heading = styles.TitleStyle.Render(heading)
		legend = styles.FooterStyle.Render(legend)
	}

	lines := []string{
		heading,
		c.String(style),
		legend,
	}
	for _, l := range utils.WrapText(d.Result, w) {
		if style != nil {
			l = styles.TextBoldStyle.Render(l)
		}
		lines = append(lines, l)
	}
	return strings.Join(lines, "\n")
}

func drawFixture(c *Canvas, f optics.Fixture, glyph rune, k ink) {
	x, y := c.Project(f.At)
	c.set(x, y, glyph, k)
	c.Text(x+2, y, f.Label.Text, k)
}

func drawLabel(c *Canvas, l optics.Label) {
	x, y := c.Project(l.At)
	w := runewidth.StringWidth(l.Text)
	switch l.Anchor {
	case optics.AnchorMiddle:
		x -= w / 2
	case optics.AnchorEnd:
		x -= w
	}
	c.Text(x, y, l.Text, toneInk(l.Tone))
}

func toneInk(t optics.Tone) ink {
	switch t {
	case optics.ToneBright:
		return inkLabelBright
	case optics.ToneMuted:
		return inkLabelMuted
	case optics.ToneSurface:
		return inkSurface
	case optics.ToneDefect:
		return inkDefect
	case optics.ToneCamera:
		return inkCamera
	case optics.ToneSource:
		return inkSource
	default:
		return inkNone
	}
}

var (
	rayLitStyle      = lipgloss.NewStyle().Foreground(styles.ColorLight).Bold(true)
	rayDimStyle      = lipgloss.NewStyle().Foreground(styles.ColorRayDim)
	surfaceStyle     = lipgloss.NewStyle().Foreground(styles.ColorSurface)
	defectStyle      = lipgloss.NewStyle().Foreground(styles.ColorDefect).Bold(true)
	cameraStyle      = lipgloss.NewStyle().Foreground(styles.ColorCamera).Bold(true)
	sourceStyle      = lipgloss.NewStyle().Foreground(styles.ColorLight)
	labelBrightStyle = lipgloss.NewStyle().Foreground(styles.ColorTextBright).Bold(true)
	labelMutedStyle  = lipgloss.NewStyle().Foreground(styles.ColorTextMuted)
)

func inkStyle(k ink) lipgloss.Style {
	switch k {
	case inkRayLit:
		return rayLitStyle
	case inkRayDim:
		return rayDimStyle
	case inkSurface:
		return surfaceStyle
	case inkDefect:
		return defectStyle
	case inkCamera:
		return cameraStyle
	case inkSource:
		return sourceStyle
	case inkLabelBright:
		return labelBrightStyle
	case inkLabelMuted:
		return labelMutedStyle
	default:
		return lipgloss.NewStyle()
	}
}
