package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hadith-voice-be/internal/model"
	"hadith-voice-be/internal/repository/contract"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	task   string
}

func (f *fakeEmbedder) Generate(_ context.Context, _ string, taskType string) ([]float32, error) {
	f.task = taskType
	return f.vector, f.err
}

type fakeChunkRepo struct {
	hits      []*contract.ScoredChunk
	err       error
	lastLimit int
}

func (f *fakeChunkRepo) CreateBatch(context.Context, []*model.DocumentChunk) error { return nil }
func (f *fakeChunkRepo) DeleteBySource(context.Context, string) error              { return nil }
func (f *fakeChunkRepo) ReplaceSource(context.Context, string, []*model.DocumentChunk) error {
	return nil
}
func (f *fakeChunkRepo) Count(context.Context) (int64, error) { return int64(len(f.hits)), nil }

func (f *fakeChunkRepo) SearchSimilar(_ context.Context, _ []float32, limit int) ([]*contract.ScoredChunk, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.hits) {
		return f.hits[:limit], nil
	}
	return f.hits, nil
}

func scoredChunk(content string, page int, score float64) *contract.ScoredChunk {
	return &contract.ScoredChunk{
		DocumentChunk: model.DocumentChunk{Content: content, Page: page},
		Score:         score,
	}
}

func TestRetrieveUsesQueryTaskAndTopK(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	repo := &fakeChunkRepo{hits: []*contract.ScoredChunk{
		scoredChunk("first", 3, 0.95),
		scoredChunk("second", 7, 0.80),
	}}

	r := NewRetriever(embedder, repo, 5)
	results, err := r.Retrieve(context.Background(), "what is isnad?", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if embedder.task != "RETRIEVAL_QUERY" {
		t.Errorf("expected query task type, got %q", embedder.task)
	}
	if repo.lastLimit != 5 {
		t.Errorf("expected default top-k 5, got %d", repo.lastLimit)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Text != "first" || results[0].Page != 3 || results[0].Score != 0.95 {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[0].Score < results[1].Score {
		t.Error("results should arrive highest score first")
	}
}

func TestRetrieveEmptyIndex(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{vector: []float32{1}}, &fakeChunkRepo{}, 5)

	results, err := r.Retrieve(context.Background(), "anything", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestRetrieveEmbedderFailure(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{err: errors.New("api down")}, &fakeChunkRepo{}, 5)

	if _, err := r.Retrieve(context.Background(), "anything", 0); err == nil {
		t.Fatal("expected error when embedding fails")
	}
}

func TestFormatContext(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{}, &fakeChunkRepo{}, 5)

	formatted := r.FormatContext([]Result{
		{Text: "A sahih hadith requires an unbroken chain.", Page: 12},
		{Text: "Hasan hadith falls below sahih.", Page: 15},
	})

	if !strings.Contains(formatted, "[Source 1 - Page 12]:") {
		t.Errorf("missing first source header: %q", formatted)
	}
	if !strings.Contains(formatted, "[Source 2 - Page 15]:") {
		t.Errorf("missing second source header: %q", formatted)
	}
	if !strings.Contains(formatted, "unbroken chain") {
		t.Errorf("missing chunk text: %q", formatted)
	}
}

func TestFormatContextEmpty(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{}, &fakeChunkRepo{}, 5)

	if got := r.FormatContext(nil); got != NoRelevantContextMessage {
		t.Errorf("expected placeholder message, got %q", got)
	}
}
