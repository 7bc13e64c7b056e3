package ui

import (
	"charm.land/lipgloss/v2"
)

const (
	sideBySideMinWidth = 100
	statusBarHeight    = 1
	minChatWidth       = 36
	maxChatWidth       = 56
	minChatHeight      = 10
	maxChatHeight      = 16
	minLessonHeight    = 3
)

// Layout is the split of the screen between the lesson pane, the chat
// panel and the status bar.
type Layout struct {
	Width      int
	Height     int
	SideBySide bool

	LessonWidth  int
	LessonHeight int
	ChatWidth    int
	ChatHeight   int
}

// ComputeLayout places the chat panel to the right of the lesson on wide
// terminals and below it otherwise.
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	body := max(height-statusBarHeight, 1)

	if width >= sideBySideMinWidth {
		l.SideBySide = true
		l.ChatWidth = clamp(width*2/5, minChatWidth, maxChatWidth)
		l.LessonWidth = width - l.ChatWidth
		l.LessonHeight = body
		l.ChatHeight = body
		return l
	}

	l.LessonWidth = max(width, 1)
	l.ChatWidth = max(width, 1)
	l.ChatHeight = clamp(body*2/5, minChatHeight, maxChatHeight)
	if body-l.ChatHeight < minLessonHeight {
		l.ChatHeight = max(body-minLessonHeight, 1)
	}
	l.LessonHeight = max(body-l.ChatHeight, 1)
	return l
}

// InChat reports whether screen cell (x, y) belongs to the chat panel.
func (l Layout) InChat(x, y int) bool {
	if l.SideBySide {
		return x >= l.LessonWidth
	}
	return y >= l.LessonHeight && y < l.LessonHeight+l.ChatHeight
}

// Render joins the panes and the status bar.
func (l Layout) Render(lessonView, chatView, statusView string) string {
	lessonView = lipgloss.NewStyle().
		Width(l.LessonWidth).
		Height(l.LessonHeight).
		MaxHeight(l.LessonHeight).
		Render(lessonView)

	var body string
	if l.SideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, lessonView, chatView)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, lessonView, chatView)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusView)
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
