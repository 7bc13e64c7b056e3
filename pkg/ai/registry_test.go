package ai

import (
	"context"
	"testing"

	"visionoptics/pkg/config"
)

type fakeProvider struct{ name string }

func (f *fakeProvider) CreateChatCompletion(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	return ChatResponse{Content: f.name}, nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected registry, got nil")
	}
	if r.factories == nil {
		t.Fatal("expected factories map, got nil")
	}
	if r.info == nil {
		t.Fatal("expected info map, got nil")
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	info := ProviderInfo{
		Type:        "test-provider",
		Name:        "Test Provider",
		Description: "A test provider",
		RequiresKey: true,
	}

	factory := func(cfg ProviderConfig) (Provider, error) {
		return &fakeProvider{name: "test"}, nil
	}

	r.Register(info, factory)

	list := r.ListProviders()
	if len(list) != 1 {
		t.Fatalf("expected 1 registered provider, got %d", len(list))
	}
	if list[0].Name != "Test Provider" {
		t.Fatalf("expected name 'Test Provider', got %q", list[0].Name)
	}

	p, err := r.GetProvider(ProviderConfig{Type: "test-provider"})
	if err != nil {
		t.Fatalf("GetProvider() error: %v", err)
	}
	resp, _ := p.CreateChatCompletion(context.Background(), ChatRequest{})
	if resp.Content != "test" {
		t.Fatalf("expected provider from factory, got %q", resp.Content)
	}
}

func TestRegistry_GetProvider_UnknownType(t *testing.T) {
	r := NewRegistry()

	_, err := r.GetProvider(ProviderConfig{Type: "unknown"})
	if err == nil {
		t.Fatal("expected error for unknown provider type")
	}
}

func TestRegistry_ListProviders_Sorted(t *testing.T) {
	r := NewRegistry()
	r.Register(ProviderInfo{Type: "zeta"}, nil)
	r.Register(ProviderInfo{Type: "alpha"}, nil)

	list := r.ListProviders()
	if len(list) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(list))
	}
	if list[0].Type != "alpha" || list[1].Type != "zeta" {
		t.Fatalf("expected sorted providers, got %v", list)
	}
}

func TestValidateProviderType(t *testing.T) {
	if pt, ok := ValidateProviderType("google"); !ok || pt != ProviderGoogle {
		t.Errorf("expected google to be valid, got %q %v", pt, ok)
	}
	if pt, ok := ValidateProviderType("openai"); !ok || pt != ProviderOpenAI {
		t.Errorf("expected openai to be valid, got %q %v", pt, ok)
	}
	if _, ok := ValidateProviderType("copilot"); ok {
		t.Error("expected copilot to be rejected")
	}
}

func TestGetProviderFromConfig_FallsBackToGoogle(t *testing.T) {
	orig := DefaultRegistry
	defer func() { DefaultRegistry = orig }()

	DefaultRegistry = NewRegistry()
	var gotType ProviderType
	DefaultRegistry.Register(ProviderInfo{Type: ProviderGoogle}, func(cfg ProviderConfig) (Provider, error) {
		gotType = cfg.Type
		return &fakeProvider{}, nil
	})

	cfg := config.Default()
	cfg.LLMProvider = "something-else"
	if _, err := GetProviderFromConfig(cfg); err != nil {
		t.Fatalf("GetProviderFromConfig() error: %v", err)
	}
	if gotType != ProviderGoogle {
		t.Fatalf("expected google fallback, got %q", gotType)
	}
}
