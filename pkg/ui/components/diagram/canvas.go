package diagram

import (
	"math"
	"strings"

	"visionoptics/pkg/optics"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// ink is what a cell is drawn with. inkNone leaves the cell unstyled.
type ink int

const (
	inkNone ink = iota
	inkRayLit
	inkRayDim
	inkSurface
	inkDefect
	inkCamera
	inkSource
	inkLabelBright
	inkLabelMuted
)

type cell struct {
	r   rune
	ink ink
	// cont marks the right half of a double-width rune.
	cont bool
}

// Canvas is a character grid the diagram is rasterised onto.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas creates a blank grid.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Project maps a logical point onto grid coordinates.
func (c *Canvas) Project(p optics.Point) (int, int) {
	x := int(math.Round(p.X / optics.CanvasWidth * float64(c.width-1)))
	y := int(math.Round(p.Y / optics.CanvasHeight * float64(c.height-1)))
	return clamp(x, 0, c.width-1), clamp(y, 0, c.height-1)
}

// At returns the rune drawn at x, y.
func (c *Canvas) At(x, y int) rune {
	if !c.inside(x, y) {
		return 0
	}
	return c.cells[y][x].r
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) set(x, y int, r rune, k ink) {
	if !c.inside(x, y) {
		return
	}
	c.clearWide(x, y)
	c.cells[y][x] = cell{r: r, ink: k}
}

// clearWide blanks a double-width rune that x, y is part of, so a
// half-overwritten glyph never reaches the output.
func (c *Canvas) clearWide(x, y int) {
	row := c.cells[y]
	if row[x].cont && x > 0 {
		row[x-1] = cell{r: ' '}
	}
	if x+1 < c.width && row[x+1].cont {
		row[x+1] = cell{r: ' '}
	}
}

// Line draws a straight line with Bresenham's algorithm. When dashed, only
// every other cell is drawn.
func (c *Canvas) Line(x0, y0, x1, y1 int, dashed bool, k ink) {
	glyph := lineGlyph(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for step := 0; ; step++ {
		if !dashed || step%2 == 0 {
			c.set(x0, y0, glyph, k)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Text writes s starting at x, y. Double-width runes take two cells. Text
// that would run off the right edge is shifted left.
func (c *Canvas) Text(x, y int, s string, k ink) {
	if y < 0 || y >= c.height || s == "" {
		return
	}
	w := runewidth.StringWidth(s)
	if w > c.width {
		s = runewidth.Truncate(s, c.width, "")
		w = runewidth.StringWidth(s)
	}
	if x+w > c.width {
		x = c.width - w
	}
	if x < 0 {
		x = 0
	}

	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		c.set(x, y, r, k)
		if rw == 2 {
			if x+1 < c.width {
				c.clearWide(x+1, y)
				c.cells[y][x+1] = cell{ink: k, cont: true}
			}
		}
		x += rw
	}
}

// String renders the grid. style may be nil for plain output.
func (c *Canvas) String(style func(ink) lipgloss.Style) string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var sb strings.Builder
		var run strings.Builder
		current := inkNone

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style != nil && current != inkNone {
				sb.WriteString(style(current).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}

		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.ink != current {
				flush()
				current = cl.ink
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// lineGlyph picks a box-drawing character that follows the slope of a line.
// Terminal cells are about twice as tall as wide, so rows count double.
func lineGlyph(dx, dy int) rune {
	ax, ay := abs(dx), 2*abs(dy)
	switch {
	case ay == 0 && ax == 0:
		return '•'
	case ay == 0 || ax > 2*ay:
		return '─'
	case ax == 0 || ay > 2*ax:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// arrowGlyph picks the arrowhead for a line ending in direction dx, dy.
func arrowGlyph(dx, dy int) rune {
	ax, ay := abs(dx), 2*abs(dy)
	switch {
	case ay == 0 && ax == 0:
		return '•'
	case ay == 0 || ax > 2*ay:
		if dx > 0 {
			return '→'
		}
		return '←'
	case ax == 0 || ay > 2*ax:
		if dy > 0 {
			return '↓'
		}
		return '↑'
	case dx > 0 && dy > 0:
		return '↘'
	case dx > 0:
		return '↗'
	case dy > 0:
		return '↙'
	default:
		return '↖'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
