package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	if cfg.App.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.App.Port, "8080")
	}
	if cfg.Rag.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.Rag.TopK)
	}
	if cfg.Rag.ChunkSize != 1000 {
		t.Errorf("ChunkSize = %d, want 1000", cfg.Rag.ChunkSize)
	}
	if cfg.Rag.ChunkOverlap != 200 {
		t.Errorf("ChunkOverlap = %d, want 200", cfg.Rag.ChunkOverlap)
	}
	if cfg.Rag.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", cfg.Rag.TimeoutSeconds)
	}
	if cfg.Ai.LLMModel != "gpt-4o" {
		t.Errorf("LLMModel = %q, want %q", cfg.Ai.LLMModel, "gpt-4o")
	}
	if cfg.Ai.SummaryModel != "gpt-4o-mini" {
		t.Errorf("SummaryModel = %q, want %q", cfg.Ai.SummaryModel, "gpt-4o-mini")
	}
	if cfg.LiveKit.ApiKey != "" {
		t.Errorf("LiveKit ApiKey should default to empty, got %q", cfg.LiveKit.ApiKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("TOP_K_RESULTS", "3")
	t.Setenv("LIVEKIT_API_KEY", "devkey")
	t.Setenv("EMBEDDING_PROVIDER", "ollama")

	cfg := Load()

	if cfg.Rag.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.Rag.TopK)
	}
	if cfg.LiveKit.ApiKey != "devkey" {
		t.Errorf("ApiKey = %q, want %q", cfg.LiveKit.ApiKey, "devkey")
	}
	if cfg.Ai.EmbeddingProvider != "ollama" {
		t.Errorf("EmbeddingProvider = %q, want %q", cfg.Ai.EmbeddingProvider, "ollama")
	}
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("TOP_K_RESULTS", "not-a-number")

	cfg := Load()
	if cfg.Rag.TopK != 5 {
		t.Errorf("TopK = %d, want fallback 5", cfg.Rag.TopK)
	}
}
