package chatpanel

import (
	"fmt"
	"io"
	"strings"

	"visionoptics/pkg/chat"
	"visionoptics/pkg/ui/components/utils"
	"visionoptics/pkg/ui/styles"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

const (
	borderSize     = 1
	paddingH       = 1
	inputHeight    = 3
	chromeLines    = 3 // title, separator, footer
	pageScroll     = 10
	inputCharLimit = 500
	turnSeparator  = "───────────────────────"
)

// SubmitMsg is returned when the user sends a question.
type SubmitMsg struct {
	Query string
}

// CopiedMsg reports that the transcript went to the clipboard.
type CopiedMsg struct {
	Bytes int
}

// Labels are the localized strings the panel shows.
type Labels struct {
	Title    string
	Hint     string
	Footer   string
	Pending  string
	Disabled string
	You      string
	Tutor    string
}

// Panel renders a chat transcript above a text input.
type Panel struct {
	labels  Labels
	width   int
	height  int
	scrollY int
	lines   []string
	follow  bool

	messages []chat.Message
	pending  bool
	focused  bool

	textarea textarea.Model
	spinner  spinner.Model
}

// New creates an unfocused panel.
func New() *Panel {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = inputCharLimit
	ta.SetHeight(inputHeight)
	ta.Blur()

	return &Panel{
		follow:   true,
		textarea: ta,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(spinnerStyle),
		),
	}
}

// SetLabels swaps the localized strings and re-renders the transcript.
func (p *Panel) SetLabels(labels Labels) {
	p.labels = labels
	p.textarea.Placeholder = labels.Hint
	p.reflow()
}

// SetSize sets the outer dimensions, border included.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.textarea.SetWidth(p.contentWidth())
	p.reflow()
}

// SetMessages replaces the transcript. The view sticks to the newest
// message unless the user scrolled up.
func (p *Panel) SetMessages(messages []chat.Message) {
	p.messages = append(p.messages[:0], messages...)
	p.reflow()
}

// SetPending marks a request in flight. While pending the input is
// replaced by a spinner and keystrokes other than scrolling are dropped.
func (p *Panel) SetPending(pending bool) tea.Cmd {
	p.pending = pending
	if pending {
		p.follow = true
		p.scrollY = p.maxScroll()
		return p.spinner.Tick
	}
	return nil
}

// Pending reports whether a request is in flight.
func (p *Panel) Pending() bool {
	return p.pending
}

// Focus gives the panel keyboard focus.
func (p *Panel) Focus() tea.Cmd {
	p.focused = true
	return p.textarea.Focus()
}

// Blur releases keyboard focus.
func (p *Panel) Blur() {
	p.focused = false
	p.textarea.Blur()
}

// Focused reports whether the panel has keyboard focus.
func (p *Panel) Focused() bool {
	return p.focused
}

// Input returns the current draft.
func (p *Panel) Input() string {
	return p.textarea.Value()
}

// Update handles keys while focused plus spinner ticks, paste and mouse
// wheel events.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.pending {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			p.scroll(-3)
		case tea.MouseWheelDown:
			p.scroll(3)
		}
		return nil

	case tea.PasteMsg:
		if p.focused && !p.pending {
			p.textarea.InsertString(msg.Content)
		}
		return nil

	case tea.KeyPressMsg:
		if !p.focused {
			return nil
		}
		return p.handleKey(msg)
	}
	return nil
}

func (p *Panel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if p.pending {
			return nil
		}
		query, ok := p.submit()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			return SubmitMsg{Query: query}
		}
	case "up":
		p.scroll(-1)
		return nil
	case "down":
		p.scroll(1)
		return nil
	case "pgup":
		p.scroll(-pageScroll)
		return nil
	case "pgdown":
		p.scroll(pageScroll)
		return nil
	}

	if p.pending {
		return nil
	}
	var cmd tea.Cmd
	p.textarea, cmd = p.textarea.Update(msg)
	return cmd
}

// submit takes the draft as typed. Blank drafts stay in the input.
func (p *Panel) submit() (string, bool) {
	query := p.textarea.Value()
	if strings.TrimSpace(query) == "" {
		return "", false
	}
	p.textarea.Reset()
	return query, true
}

func (p *Panel) scroll(delta int) {
	p.scrollY += delta
	if p.scrollY < 0 {
		p.scrollY = 0
	}
	if maxScroll := p.maxScroll(); p.scrollY >= maxScroll {
		p.scrollY = maxScroll
		p.follow = true
		return
	}
	p.follow = false
}

// Copy writes text to the terminal clipboard as an OSC 52 sequence on w.
func Copy(w io.Writer, text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return func() tea.Msg {
		_, _ = fmt.Fprint(w, osc52.New(text))
		return CopiedMsg{Bytes: len(text)}
	}
}

func (p *Panel) roleLabel(role chat.Role) string {
	if role == chat.RoleUser {
		return p.labels.You
	}
	return p.labels.Tutor
}

func (p *Panel) renderMessages() string {
	var sb strings.Builder
	for i, msg := range p.messages {
		if i > 0 {
			sb.WriteString("\n\n")
			if msg.Role == chat.RoleUser {
				sb.WriteString(turnSeparator + "\n\n")
			}
		}
		sb.WriteString("**" + p.roleLabel(msg.Role) + ":** ")
		sb.WriteString(msg.Text)
	}
	return sb.String()
}

func (p *Panel) reflow() {
	if p.width <= 0 {
		p.lines = nil
		p.scrollY = 0
		return
	}
	p.lines = renderMarkdown(p.renderMessages(), p.contentWidth())
	if p.follow || p.scrollY > p.maxScroll() {
		p.scrollY = p.maxScroll()
	}
}

// View renders the bordered panel.
func (p *Panel) View() string {
	contentWidth := p.contentWidth()
	contentHeight := p.contentHeight()
	bodyHeight := p.bodyHeight()

	lines := make([]string, 0, contentHeight)
	lines = append(lines, utils.PadStyled(titleStyle.Render(utils.TruncateToWidth(p.labels.Title, contentWidth)), contentWidth))

	end := min(p.scrollY+bodyHeight, len(p.lines))
	for i := p.scrollY; i < end; i++ {
		lines = append(lines, utils.PadStyled(p.lines[i], contentWidth))
	}
	for len(lines) < 1+bodyHeight {
		lines = append(lines, strings.Repeat(" ", contentWidth))
	}

	lines = append(lines, separatorStyle.Render(strings.Repeat("─", contentWidth)))
	lines = append(lines, p.inputLines(contentWidth)...)

	footer := p.labels.Footer
	if p.pending {
		footer = p.labels.Disabled
	}
	lines = append(lines, utils.PadStyled(footerStyle.Render(utils.TruncateToWidth(footer, contentWidth)), contentWidth))

	box := boxStyle
	if !p.focused {
		box = boxStyleMuted
	}
	return box.
		Width(max(p.width, 1)).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) inputLines(width int) []string {
	lines := make([]string, 0, inputHeight)
	if p.pending {
		label := p.spinner.View() + " " + pendingStyle.Render(p.labels.Pending)
		lines = append(lines, utils.PadStyled(label, width))
	} else {
		for i, line := range strings.Split(p.textarea.View(), "\n") {
			if i >= inputHeight {
				break
			}
			lines = append(lines, utils.PadStyled(line, width))
		}
	}
	for len(lines) < inputHeight {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

func (p *Panel) contentWidth() int {
	return max(p.width-2*(borderSize+paddingH), 1)
}

func (p *Panel) contentHeight() int {
	return max(p.height-2*borderSize, 1)
}

// bodyHeight is the number of transcript lines on screen.
func (p *Panel) bodyHeight() int {
	return max(p.contentHeight()-chromeLines-inputHeight, 1)
}

func (p *Panel) maxScroll() int {
	return max(len(p.lines)-p.bodyHeight(), 0)
}

var (
	boxStyle      = styles.BoxStyle
	boxStyleMuted = styles.BoxStyleMuted

	titleStyle     = styles.TitleStyle
	textStyle      = styles.TextStyle
	boldStyle      = styles.TextBoldStyle
	codeStyle      = styles.CodeStyle
	footerStyle    = styles.FooterStyle
	pendingStyle   = styles.TextMutedStyle
	separatorStyle = lipgloss.NewStyle().Foreground(styles.ColorBorderMuted)
	spinnerStyle   = lipgloss.NewStyle().Foreground(styles.ColorAccent)
)
