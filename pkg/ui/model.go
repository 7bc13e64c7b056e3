package ui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"visionoptics/pkg/chat"
	"visionoptics/pkg/optics"
	"visionoptics/pkg/ui/components/chatpanel"
	"visionoptics/pkg/ui/components/lesson"
	"visionoptics/pkg/ui/components/statusbar"

	tea "charm.land/bubbletea/v2"
)

const noticeDuration = 2 * time.Second

type focusTarget int

const (
	focusLesson focusTarget = iota
	focusChat
)

// tutorReplyMsg carries the tutor's answer back to the event loop.
type tutorReplyMsg struct {
	reply string
}

type clearNoticeMsg struct {
	seq int
}

// Model is the Bubble Tea application state.
type Model struct {
	vm      *optics.ViewModel
	session *chat.Session
	asker   chat.Asker

	lesson    lesson.Pane
	chat      *chatpanel.Panel
	statusBar *statusbar.StatusBarView

	focus  focusTarget
	layout Layout
	ready  bool

	ctx       context.Context
	cancel    context.CancelFunc
	noticeSeq int
	// clipboard receives OSC 52 copy sequences.
	clipboard io.Writer
}

// NewModel wires the view model and a fresh chat session to the tutor.
// modelName is only displayed.
func NewModel(ctx context.Context, vm *optics.ViewModel, asker chat.Asker, modelName string) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	m := Model{
		vm:        vm,
		session:   chat.NewSession(vm.Language()),
		asker:     asker,
		lesson:    lesson.NewPane(),
		chat:      chatpanel.New(),
		statusBar: statusbar.NewStatusBarView(),
		ctx:       ctx,
		cancel:    cancel,
		clipboard: os.Stdout,
	}
	m.statusBar.SetModel(modelName)
	m.chat.SetMessages(m.session.Messages())
	m.refresh()
	return m
}

// Init initializes the model (Bubble Tea lifecycle method)
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		if m.layout.InChat(msg.X, msg.Y) {
			return m, m.chat.Update(msg)
		}
		return m, m.lesson.Update(msg)

	case tea.PasteMsg:
		return m, m.chat.Update(msg)

	case chatpanel.SubmitMsg:
		return m, m.submit(msg.Query)

	case tutorReplyMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.session.Resolve(msg.reply)
		m.chat.SetMessages(m.session.Messages())
		m.chat.SetPending(false)
		return m, nil

	case chatpanel.CopiedMsg:
		slog.Info("transcript_copied", "bytes", msg.Bytes)
		return m, m.notify(m.vm.Chrome().CopiedNotice)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.statusBar.SetMessage("")
		}
		return m, nil
	}

	return m, m.chat.Update(msg)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+l":
		m.toggleLanguage()
		return m, nil
	case "ctrl+y":
		return m, m.copyTranscript()
	}

	if m.focus == focusChat {
		switch msg.String() {
		case "esc", "tab":
			m.setFocus(focusLesson)
			return m, nil
		}
		return m, m.chat.Update(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "b", "1":
		m.setMode(optics.BrightField)
	case "d", "2":
		m.setMode(optics.DarkField)
	case "m":
		m.vm.ToggleMode()
		m.refresh()
	case "l":
		m.toggleLanguage()
	case "tab", "enter", "i":
		return m, m.setFocus(focusChat)
	case "up", "k":
		m.lesson.ScrollUp()
	case "down", "j":
		m.lesson.ScrollDown()
	case "pgup":
		m.lesson.PageUp()
	case "pgdown":
		m.lesson.PageDown()
	case "home", "g":
		m.lesson.GotoTop()
	case "end", "G":
		m.lesson.GotoBottom()
	}
	return m, nil
}

// copyTranscript puts the session transcript, labeled in the current
// language, on the clipboard.
func (m Model) copyTranscript() tea.Cmd {
	ch := m.vm.Chrome()
	return chatpanel.Copy(m.clipboard, m.session.Transcript(ch.ChatYou, ch.ChatTutor))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.session.Pending() {
		slog.Info("tutor_request_abandoned")
	}
	m.cancel()
	return m, tea.Quit
}

// submit starts a tutor request. Submissions while a request is pending or
// with a blank query are dropped by the session.
func (m *Model) submit(query string) tea.Cmd {
	req, ok := m.session.Submit(query)
	if !ok {
		return nil
	}
	m.chat.SetMessages(m.session.Messages())

	ctx, asker := chat.ContextWithSession(m.ctx, req.SessionID), m.asker
	ask := func() tea.Msg {
		return tutorReplyMsg{reply: asker.Ask(ctx, req.Query, req.History, req.Language)}
	}
	return tea.Batch(m.chat.SetPending(true), ask)
}

func (m *Model) setMode(mode optics.Mode) {
	m.vm.SetMode(mode)
	m.refresh()
}

func (m *Model) toggleLanguage() {
	m.vm.ToggleLanguage()
	m.session.SetLanguage(m.vm.Language())
	slog.Debug("language_changed", "lang", m.vm.Language().String())
	m.refresh()
}

func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	m.refreshStatus()
	if target == focusChat {
		return m.chat.Focus()
	}
	m.chat.Blur()
	return nil
}

func (m *Model) notify(text string) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.statusBar.SetMessage(text)
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m *Model) resize(width, height int) {
	m.layout = ComputeLayout(width, height)
	m.lesson.SetSize(m.layout.LessonWidth, m.layout.LessonHeight)
	m.chat.SetSize(m.layout.ChatWidth, m.layout.ChatHeight)
	m.statusBar.SetWidth(width)
	m.ready = true
}

// refresh re-derives everything on screen from the view model.
func (m *Model) refresh() {
	ch := m.vm.Chrome()
	m.lesson.SetLesson(m.vm.Content(), ch)
	m.chat.SetLabels(chatpanel.Labels{
		Title:    ch.ChatTitle,
		Hint:     ch.ChatHint,
		Footer:   ch.ChatHeading,
		Pending:  ch.ChatPending,
		Disabled: ch.ChatDisabled,
		You:      ch.ChatYou,
		Tutor:    ch.ChatTutor,
	})
	m.statusBar.SetTitle(ch.AppTitle)
	m.statusBar.SetLanguage(ch.LanguageName)
	m.refreshStatus()
}

func (m *Model) refreshStatus() {
	ch := m.vm.Chrome()
	if m.focus == focusChat {
		m.statusBar.SetHints(ch.ChatKeyHints)
	} else {
		m.statusBar.SetHints(ch.KeyHints)
	}
}

// View renders the UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	content := "Loading..."
	if m.ready {
		content = m.layout.Render(m.lesson.View(), m.chat.View(), m.statusBar.Render())
	}

	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.WindowTitle = m.vm.Chrome().AppTitle
	return v
}

// Session exposes the transcript, mainly for tests.
func (m Model) Session() *chat.Session {
	return m.session
}
