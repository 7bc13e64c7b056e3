package lesson

import (
	"visionoptics/pkg/optics"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// Pane wraps Bubble Tea's viewport for scrolling the lesson.
type Pane struct {
	Viewport viewport.Model
	content  optics.Content
	chrome   optics.Chrome
	hasData  bool
	ready    bool
}

// NewPane creates an empty lesson pane.
func NewPane() Pane {
	return Pane{
		Viewport: viewport.New(),
	}
}

// SetSize updates the pane dimensions and re-lays out the lesson.
func (p *Pane) SetSize(width, height int) {
	p.Viewport.SetWidth(width)
	p.Viewport.SetHeight(height)
	p.ready = true
	p.refresh()
}

// SetLesson replaces the displayed lesson. The scroll position is kept so
// switching modes does not jump back to the top.
func (p *Pane) SetLesson(c optics.Content, ch optics.Chrome) {
	p.content = c
	p.chrome = ch
	p.hasData = true
	p.refresh()
}

func (p *Pane) refresh() {
	if !p.hasData || !p.ready {
		return
	}
	offset := p.Viewport.YOffset()
	p.Viewport.SetContent(Render(p.content, p.chrome, p.Viewport.Width()))
	p.Viewport.SetYOffset(offset)
}

// Update handles viewport updates (scrolling, etc)
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.Viewport, cmd = p.Viewport.Update(msg)
	return cmd
}

// View renders the pane
func (p *Pane) View() string {
	if !p.ready {
		return "Loading..."
	}
	return p.Viewport.View()
}

// ScrollUp scrolls the pane up one line
func (p *Pane) ScrollUp() {
	p.Viewport.ScrollUp(1)
}

// ScrollDown scrolls the pane down one line
func (p *Pane) ScrollDown() {
	p.Viewport.ScrollDown(1)
}

// PageUp scrolls up one page
func (p *Pane) PageUp() {
	p.Viewport.PageUp()
}

// PageDown scrolls down one page
func (p *Pane) PageDown() {
	p.Viewport.PageDown()
}

// GotoTop scrolls to the top
func (p *Pane) GotoTop() {
	p.Viewport.GotoTop()
}

// Offset returns the current scroll offset.
func (p *Pane) Offset() int {
	return p.Viewport.YOffset()
}

// GotoBottom scrolls to the end of the lesson
func (p *Pane) GotoBottom() {
	p.Viewport.GotoBottom()
}
