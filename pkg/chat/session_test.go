package chat

import (
	"context"
	"strings"
	"testing"

	"visionoptics/pkg/optics"
)

type stubAsker struct {
	reply      string
	calls      int
	gotQuery   string
	gotHistory []Message
	gotLang    optics.Language
	gotID      string
}

func (s *stubAsker) Ask(ctx context.Context, query string, history []Message, lang optics.Language) string {
	s.calls++
	s.gotQuery = query
	s.gotHistory = history
	s.gotLang = lang
	s.gotID = SessionFromContext(ctx)
	return s.reply
}

func TestNewSession_WelcomeMessage(t *testing.T) {
	for _, lang := range []optics.Language{optics.English, optics.Chinese} {
		s := NewSession(lang)
		msgs := s.Messages()
		if len(msgs) != 1 {
			t.Fatalf("%s: expected 1 message, got %d", lang, len(msgs))
		}
		if msgs[0].Role != RoleModel {
			t.Errorf("%s: expected model role, got %q", lang, msgs[0].Role)
		}
		if msgs[0].Text != optics.WelcomeMessage(lang) {
			t.Errorf("%s: unexpected welcome %q", lang, msgs[0].Text)
		}
		if s.Pending() {
			t.Errorf("%s: new session should not be pending", lang)
		}
	}
}

func TestSession_SendBlankIsIgnored(t *testing.T) {
	for _, query := range []string{"", "   ", "\n\t"} {
		s := NewSession(optics.English)
		asker := &stubAsker{reply: "unused"}

		if s.Send(context.Background(), asker, query) {
			t.Errorf("Send(%q) should be rejected", query)
		}
		if s.Len() != 1 {
			t.Errorf("Send(%q) changed transcript length to %d", query, s.Len())
		}
		if asker.calls != 0 {
			t.Errorf("Send(%q) should not call the tutor", query)
		}
	}
}

func TestSession_SubmitWhilePendingIsIgnored(t *testing.T) {
	s := NewSession(optics.English)

	if _, ok := s.Submit("first"); !ok {
		t.Fatal("first submit should be accepted")
	}
	before := s.Len()

	if _, ok := s.Submit("second"); ok {
		t.Fatal("submit while pending should be rejected")
	}
	asker := &stubAsker{reply: "unused"}
	if s.Send(context.Background(), asker, "third") {
		t.Fatal("send while pending should be rejected")
	}
	if s.Len() != before {
		t.Fatalf("transcript length changed from %d to %d", before, s.Len())
	}
	if asker.calls != 0 {
		t.Fatal("tutor should not be called while pending")
	}

	s.Resolve("answer")
	if _, ok := s.Submit("fourth"); !ok {
		t.Fatal("submit after resolve should be accepted")
	}
}

func TestSession_SendAppendsPair(t *testing.T) {
	s := NewSession(optics.Chinese)
	asker := &stubAsker{reply: "Because edges scatter light."}

	if !s.Send(context.Background(), asker, "Why low angle?") {
		t.Fatal("Send should succeed")
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 messages, got %d", s.Len())
	}

	msgs := s.Messages()
	if msgs[1].Role != RoleUser || msgs[1].Text != "Why low angle?" {
		t.Errorf("unexpected user message %+v", msgs[1])
	}
	if last := s.Last(); last.Role != RoleModel || last.Text != asker.reply {
		t.Errorf("unexpected last message %+v", last)
	}
	if s.Pending() {
		t.Error("session should not be pending after send")
	}
}

func TestSession_RequestCarriesPriorHistory(t *testing.T) {
	s := NewSession(optics.English)
	asker := &stubAsker{reply: "one"}
	s.Send(context.Background(), asker, "first question")

	asker.reply = "two"
	s.Send(context.Background(), asker, "second question")

	if asker.gotQuery != "second question" {
		t.Fatalf("expected query forwarded, got %q", asker.gotQuery)
	}
	if len(asker.gotHistory) != 3 {
		t.Fatalf("expected history of 3 prior messages, got %d", len(asker.gotHistory))
	}
	if asker.gotHistory[1].Text != "first question" || asker.gotHistory[2].Text != "one" {
		t.Errorf("unexpected history %+v", asker.gotHistory)
	}
	if asker.gotLang != optics.English {
		t.Errorf("expected English, got %s", asker.gotLang)
	}
}

func TestSession_HistoryIsACopy(t *testing.T) {
	s := NewSession(optics.English)
	req, ok := s.Submit("question")
	if !ok {
		t.Fatal("submit should be accepted")
	}
	req.History[0].Text = "mutated"

	if s.Messages()[0].Text == "mutated" {
		t.Error("request history must not alias the transcript")
	}
}

func TestSession_ResolveWithoutPending(t *testing.T) {
	s := NewSession(optics.English)
	if s.Resolve("stray") {
		t.Fatal("resolve without pending should be a no-op")
	}
	if s.Len() != 1 {
		t.Fatalf("expected transcript unchanged, got %d", s.Len())
	}
}

func TestSession_SetLanguageKeepsWelcome(t *testing.T) {
	s := NewSession(optics.Chinese)
	s.SetLanguage(optics.English)

	if s.Language() != optics.English {
		t.Fatalf("expected English, got %s", s.Language())
	}
	if s.Messages()[0].Text != optics.WelcomeMessage(optics.Chinese) {
		t.Error("welcome message should keep the language it was created in")
	}

	req, _ := s.Submit("hello")
	if req.Language != optics.English {
		t.Errorf("expected request in English, got %s", req.Language)
	}
}

func TestSession_Transcript(t *testing.T) {
	s := NewSession(optics.English)
	s.Send(context.Background(), &stubAsker{reply: "answer"}, "question")

	got := s.Transcript("You", "Tutor")
	if !strings.HasPrefix(got, "Tutor: "+optics.WelcomeMessage(optics.English)) {
		t.Errorf("transcript should start with the welcome, got %q", got)
	}
	if !strings.Contains(got, "\n\nYou: question\n\nTutor: answer") {
		t.Errorf("unexpected transcript %q", got)
	}
}

func TestSession_IDIsUniqueAndPropagated(t *testing.T) {
	a := NewSession(optics.English)
	b := NewSession(optics.English)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("Expected distinct non-empty IDs, got %q and %q", a.ID(), b.ID())
	}

	asker := &stubAsker{reply: "answer"}
	a.Send(context.Background(), asker, "question")
	if asker.gotID != a.ID() {
		t.Errorf("Expected session ID %q in context, got %q", a.ID(), asker.gotID)
	}
}

func TestSessionFromContext_Empty(t *testing.T) {
	if id := SessionFromContext(context.Background()); id != "" {
		t.Errorf("Expected empty ID, got %q", id)
	}
	if ctx := ContextWithSession(context.Background(), ""); SessionFromContext(ctx) != "" {
		t.Error("Expected blank ID not to be stored")
	}
}
