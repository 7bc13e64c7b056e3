package chatpanel

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"visionoptics/pkg/chat"
	"visionoptics/pkg/ui/components/testutils"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

var testLabels = Labels{
	Title:    "AI Optics Consultant",
	Hint:     "Ask about lighting",
	Footer:   "enter send | esc back",
	Pending:  "Thinking...",
	Disabled: "Waiting for the tutor...",
	You:      "You",
	Tutor:    "Tutor",
}

func newTestPanel(width, height int) *Panel {
	p := New()
	p.SetLabels(testLabels)
	p.SetSize(width, height)
	return p
}

func typeText(p *Panel, text string) {
	for _, msg := range testutils.TypeKeys(text) {
		p.Update(msg)
	}
}

func TestPanel_SubmitReturnsQuery(t *testing.T) {
	p := newTestPanel(40, 20)
	p.Focus()
	typeText(p, "why low angle?")

	cmd := p.Update(testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected submit command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("Expected SubmitMsg, got %T", cmd())
	}
	if msg.Query != "why low angle?" {
		t.Errorf("Expected query 'why low angle?', got %q", msg.Query)
	}
	if p.Input() != "" {
		t.Errorf("Expected input cleared after submit, got %q", p.Input())
	}
}

func TestPanel_SubmitKeepsDraftAsTyped(t *testing.T) {
	p := newTestPanel(40, 20)
	p.Focus()
	typeText(p, "  Why low angle?  ")

	cmd := p.Update(testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected submit command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatal("Expected SubmitMsg")
	}
	if msg.Query != "  Why low angle?  " {
		t.Errorf("Expected surrounding spaces kept, got %q", msg.Query)
	}
}

func TestPanel_SubmitIgnoresBlankInput(t *testing.T) {
	p := newTestPanel(40, 20)
	p.Focus()
	typeText(p, "   ")

	if cmd := p.Update(testutils.TestKeyEnter); cmd != nil {
		t.Error("Expected no command for blank input")
	}
}

func TestPanel_PendingDisablesInput(t *testing.T) {
	p := newTestPanel(40, 20)
	p.Focus()
	typeText(p, "draft")

	if cmd := p.SetPending(true); cmd == nil {
		t.Error("Expected spinner tick when pending starts")
	}
	typeText(p, "more")
	if p.Input() != "draft" {
		t.Errorf("Expected typing ignored while pending, got %q", p.Input())
	}
	if cmd := p.Update(testutils.TestKeyEnter); cmd != nil {
		t.Error("Expected enter ignored while pending")
	}

	view := ansi.Strip(p.View())
	if !strings.Contains(view, "Thinking...") {
		t.Error("Expected pending label in view")
	}
	if !strings.Contains(view, "Waiting for the tutor...") {
		t.Error("Expected disabled footer while pending")
	}

	p.SetPending(false)
	typeText(p, "!")
	if p.Input() != "draft!" {
		t.Errorf("Expected typing restored, got %q", p.Input())
	}
}

func TestPanel_IgnoresKeysWhenBlurred(t *testing.T) {
	p := newTestPanel(40, 20)
	typeText(p, "hello")

	if p.Input() != "" {
		t.Errorf("Expected no input while blurred, got %q", p.Input())
	}
	if p.Focused() {
		t.Error("Expected panel unfocused by default")
	}
}

func TestPanel_PasteInsertsText(t *testing.T) {
	p := newTestPanel(40, 20)
	p.Focus()
	p.Update(tea.PasteMsg{Content: "pasted question"})

	if p.Input() != "pasted question" {
		t.Errorf("Expected pasted text, got %q", p.Input())
	}
}

func TestPanel_RendersMessagesWithLabels(t *testing.T) {
	p := newTestPanel(50, 20)
	p.SetMessages([]chat.Message{
		{Role: chat.RoleModel, Text: "Hi! Ask me anything."},
		{Role: chat.RoleUser, Text: "What is dark field?"},
	})

	view := ansi.Strip(p.View())
	for _, want := range []string{"AI Optics Consultant", "Tutor: Hi! Ask me anything.", "You: What is dark field?", turnSeparator} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view:\n%s", want, view)
		}
	}
}

func TestPanel_ViewSize(t *testing.T) {
	p := newTestPanel(36, 16)
	p.SetMessages([]chat.Message{{Role: chat.RoleModel, Text: strings.Repeat("light ", 60)}})

	lines := strings.Split(p.View(), "\n")
	if len(lines) != 16 {
		t.Fatalf("Expected 16 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 36 {
			t.Errorf("line %d: expected width at most 36, got %d", i, w)
		}
	}
}

func TestPanel_FollowsNewMessages(t *testing.T) {
	p := newTestPanel(30, 12)
	var msgs []chat.Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs, chat.Message{Role: chat.RoleModel, Text: fmt.Sprintf("answer %d", i)})
	}
	p.SetMessages(msgs)

	if p.scrollY != p.maxScroll() || p.maxScroll() == 0 {
		t.Fatalf("Expected view pinned to the bottom, scrollY=%d max=%d", p.scrollY, p.maxScroll())
	}
	if !strings.Contains(ansi.Strip(p.View()), "answer 9") {
		t.Error("Expected newest message visible")
	}
}

func TestPanel_ScrollUpStopsFollowing(t *testing.T) {
	p := newTestPanel(30, 12)
	var msgs []chat.Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs, chat.Message{Role: chat.RoleModel, Text: fmt.Sprintf("answer %d", i)})
	}
	p.SetMessages(msgs)
	p.Focus()

	p.Update(testutils.TestKeyPgUp)
	offset := p.scrollY
	if p.follow {
		t.Fatal("Expected follow off after scrolling up")
	}

	p.SetMessages(append(msgs, chat.Message{Role: chat.RoleUser, Text: "new"}))
	if p.scrollY != offset {
		t.Errorf("Expected offset %d kept, got %d", offset, p.scrollY)
	}

	p.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	for i := 0; i < 20; i++ {
		p.Update(testutils.TestKeyDown)
	}
	if !p.follow || p.scrollY != p.maxScroll() {
		t.Errorf("Expected follow restored at the bottom, scrollY=%d max=%d", p.scrollY, p.maxScroll())
	}
}

func TestPanel_SpinnerTickIgnoredWhenIdle(t *testing.T) {
	p := newTestPanel(30, 12)
	tick := p.spinner.Tick()
	if cmd := p.Update(tick); cmd != nil {
		t.Error("Expected idle panel to drop spinner ticks")
	}

	p.SetPending(true)
	if cmd := p.Update(tick); cmd == nil {
		t.Error("Expected pending panel to keep the spinner running")
	}
}

func TestCopy_WritesOSC52(t *testing.T) {
	var buf bytes.Buffer
	text := "Tutor: Hello\n\nYou: Hi"

	cmd := Copy(&buf, text)
	if cmd == nil {
		t.Fatal("Expected copy command")
	}
	copied, ok := cmd().(CopiedMsg)
	if !ok {
		t.Fatal("Expected CopiedMsg")
	}
	if copied.Bytes != len(text) {
		t.Errorf("Expected %d bytes copied, got %d", len(text), copied.Bytes)
	}
	if !strings.Contains(buf.String(), base64.StdEncoding.EncodeToString([]byte(text))) {
		t.Errorf("Expected OSC 52 payload, got %q", buf.String())
	}
}

func TestCopy_EmptyText(t *testing.T) {
	var buf bytes.Buffer
	if cmd := Copy(&buf, ""); cmd != nil {
		t.Error("Expected no copy command for empty text")
	}
}

func TestPanel_CtrlYLeavesDraft(t *testing.T) {
	p := newTestPanel(40, 20)
	p.Focus()
	p.textarea.SetValue("draft")

	p.Update(testutils.TestKeyCtrlY)
	if p.Input() != "draft" {
		t.Errorf("Expected draft kept, got %q", p.Input())
	}
}
}
