package contract

import (
	"context"

	"hadith-voice-be/internal/model"
)

// ScoredChunk is a retrieval hit: the chunk plus its cosine similarity
// against the query vector (1.0 = identical direction).
type ScoredChunk struct {
	model.DocumentChunk
	Score float64
}

type ChunkRepository interface {
	CreateBatch(ctx context.Context, chunks []*model.DocumentChunk) error
	DeleteBySource(ctx context.Context, source string) error
	// ReplaceSource atomically swaps all chunks for a source document.
	ReplaceSource(ctx context.Context, source string, chunks []*model.DocumentChunk) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilar returns up to limit chunks ordered by descending
	// cosine similarity. An empty index yields an empty slice, not an error.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredChunk, error)
}
