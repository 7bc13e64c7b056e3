package statusbar

import (
	"strings"

	"visionoptics/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
)

const (
	minGap         = 2
	contentPadding = 2
	unknownModel   = "offline"
)

// StatusBarView renders the one-line bar at the bottom of the screen.
type StatusBarView struct {
	title    string
	hints    string
	message  string
	model    string
	language string
	width    int
}

// NewStatusBarView creates a new status bar view
func NewStatusBarView() *StatusBarView {
	return &StatusBarView{width: 80}
}

// SetTitle sets the app name shown on the left.
func (s *StatusBarView) SetTitle(title string) {
	s.title = strings.TrimSpace(title)
}

// SetHints sets the key hints shown when there is no message.
func (s *StatusBarView) SetHints(hints string) {
	s.hints = hints
}

// SetMessage sets a temporary message that replaces the key hints.
func (s *StatusBarView) SetMessage(msg string) {
	s.message = msg
}

// Message returns the temporary message, if any.
func (s *StatusBarView) Message() string {
	return s.message
}

// SetModel updates the active model displayed.
func (s *StatusBarView) SetModel(model string) {
	s.model = strings.TrimSpace(model)
}

// SetLanguage updates the language name displayed.
func (s *StatusBarView) SetLanguage(language string) {
	s.language = strings.TrimSpace(language)
}

// SetWidth updates the width for rendering
func (s *StatusBarView) SetWidth(width int) {
	s.width = width
}

// Render returns the styled status bar, exactly width cells wide.
func (s *StatusBarView) Render() string {
	innerWidth := s.width - contentPadding
	if innerWidth <= 0 {
		return strings.Repeat(" ", max(s.width, 0))
	}

	right := s.rightContent()
	rightWidth := ansi.StringWidth(right)

	var inner string
	if rightWidth+minGap >= innerWidth {
		inner = ansi.Truncate(right, innerWidth, "")
	} else {
		left := s.leftContent()
		leftAvailable := innerWidth - rightWidth - minGap
		if ansi.StringWidth(left) > leftAvailable {
			left = ansi.Truncate(left, leftAvailable, "...")
		}
		gap := innerWidth - ansi.StringWidth(left) - rightWidth
		inner = left + strings.Repeat(" ", gap) + right
	}

	if w := ansi.StringWidth(inner); w < innerWidth {
		inner += strings.Repeat(" ", innerWidth-w)
	}

	return styles.StatusBarStyle.Render(inner)
}

func (s *StatusBarView) leftContent() string {
	text := s.hints
	if s.message != "" {
		text = s.message
	}
	if s.title == "" {
		return text
	}
	if text == "" {
		return "[" + s.title + "]"
	}
	return "[" + s.title + "] " + text
}

func (s *StatusBarView) rightContent() string {
	model := s.model
	if model == "" {
		model = unknownModel
	}
	right := "[llm]: " + model
	if s.language != "" {
		right += " | " + s.language
	}
	return right
}
