package rag

import (
	"context"
	"fmt"
	"strings"

	"hadith-voice-be/internal/repository/contract"
	"hadith-voice-be/pkg/embedding"
)

// NoRelevantContextMessage is the formatted-context placeholder for an
// empty result set. Callers treat it as "no relevant information", not an error.
const NoRelevantContextMessage = "No relevant information found in the Usool al-Hadith book."

// Result is one retrieval hit in similarity order.
type Result struct {
	Text  string
	Page  int
	Score float64
}

// Retriever answers queries against the chunk index via embedding
// similarity. It holds no state between queries.
type Retriever struct {
	embedder embedding.Provider
	chunks   contract.ChunkRepository
	topK     int
}

func NewRetriever(embedder embedding.Provider, chunks contract.ChunkRepository, topK int) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{
		embedder: embedder,
		chunks:   chunks,
		topK:     topK,
	}
}

// Retrieve returns the k most similar chunks for the query, highest
// score first. k <= 0 uses the configured default. An empty index
// yields an empty slice.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]Result, error) {
	if k <= 0 {
		k = r.topK
	}

	vector, err := r.embedder.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.chunks.SearchSimilar(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	results := make([]Result, len(scored))
	for i, s := range scored {
		results[i] = Result{
			Text:  s.Content,
			Page:  s.Page,
			Score: s.Score,
		}
	}
	return results, nil
}

// FormatContext renders retrieval results into the context block handed
// to the summarizer.
func (r *Retriever) FormatContext(results []Result) string {
	if len(results) == 0 {
		return NoRelevantContextMessage
	}

	parts := make([]string, len(results))
	for i, res := range results {
		parts[i] = fmt.Sprintf("[Source %d - Page %d]:\n%s", i+1, res.Page, strings.TrimSpace(res.Text))
	}
	return strings.Join(parts, "\n\n")
}

// Query retrieves and formats in one step.
func (r *Retriever) Query(ctx context.Context, question string) (string, error) {
	results, err := r.Retrieve(ctx, question, 0)
	if err != nil {
		return "", err
	}
	return r.FormatContext(results), nil
}
