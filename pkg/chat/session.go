// Package chat holds the tutor conversation: an append-only transcript with
// at most one request in flight.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"visionoptics/pkg/optics"

	"github.com/google/uuid"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one transcript entry. Messages are never edited once appended.
type Message struct {
	Role Role
	Text string
}

// Asker answers a question given the conversation so far. Implementations
// must not fail: errors are turned into a reply text.
type Asker interface {
	Ask(ctx context.Context, query string, history []Message, lang optics.Language) string
}

// Request is a submitted question waiting for its reply.
type Request struct {
	SessionID string
	Query     string
	History   []Message
	Language  optics.Language
}

// Session is the transcript plus the pending flag. It is not safe for
// concurrent use; the UI loop owns it.
type Session struct {
	id       string
	messages []Message
	lang     optics.Language
	pending  bool
}

// NewSession starts a transcript holding the welcome message in lang.
func NewSession(lang optics.Language) *Session {
	if !lang.Valid() {
		lang = optics.Chinese
	}
	return &Session{
		id:       uuid.New().String(),
		messages: []Message{{Role: RoleModel, Text: optics.WelcomeMessage(lang)}},
		lang:     lang,
	}
}

// Submit appends the user's query and marks the session pending. It returns
// false without touching the transcript when the query is blank or another
// request is still pending.
func (s *Session) Submit(query string) (Request, bool) {
	if s.pending {
		slog.Debug("chat_submit_rejected", "session_id", s.id, "reason", "pending")
		return Request{}, false
	}
	if strings.TrimSpace(query) == "" {
		return Request{}, false
	}

	history := s.Messages()
	s.messages = append(s.messages, Message{Role: RoleUser, Text: query})
	s.pending = true

	slog.Debug("chat_submit",
		"session_id", s.id,
		"history_len", len(history),
		"lang", s.lang.String(),
	)
	return Request{SessionID: s.id, Query: query, History: history, Language: s.lang}, true
}

// Resolve appends the reply to the pending request. It is a no-op when
// nothing is pending.
func (s *Session) Resolve(reply string) bool {
	if !s.pending {
		return false
	}
	s.messages = append(s.messages, Message{Role: RoleModel, Text: reply})
	s.pending = false
	return true
}

// Send submits query, blocks on asker and appends its reply.
func (s *Session) Send(ctx context.Context, asker Asker, query string) bool {
	req, ok := s.Submit(query)
	if !ok {
		return false
	}
	return s.Resolve(asker.Ask(ContextWithSession(ctx, req.SessionID), req.Query, req.History, req.Language))
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Pending reports whether a request is in flight.
func (s *Session) Pending() bool {
	return s.pending
}

// Language is the language used for the next request.
func (s *Session) Language() optics.Language {
	return s.lang
}

// SetLanguage changes the language of later requests. Messages already in
// the transcript, the welcome message included, keep their original text.
func (s *Session) SetLanguage(lang optics.Language) {
	if lang.Valid() {
		s.lang = lang
	}
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	return len(s.messages)
}

// Last returns the most recent message.
func (s *Session) Last() Message {
	return s.messages[len(s.messages)-1]
}

// Transcript renders the conversation as plain text, one turn per paragraph.
func (s *Session) Transcript(userLabel, modelLabel string) string {
	var sb strings.Builder
	for i, msg := range s.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		label := modelLabel
		if msg.Role == RoleUser {
			label = userLabel
		}
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(msg.Text)
	}
	return sb.String()
}

type sessionKey struct{}

// ContextWithSession tags ctx with a session ID so the tutor can log it.
func ContextWithSession(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionFromContext returns the session ID carried by ctx, or "".
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
