package rag

import (
	"context"
	"fmt"
	"strings"

	"hadith-voice-be/internal/constant"
	"hadith-voice-be/pkg/llm"
)

// SentinelNoRelevantInfo is the summarizer's signal that the retrieved
// context does not answer the question.
const SentinelNoRelevantInfo = "NO_RELEVANT_INFO"

const (
	summaryMaxTokens   = 200 // keep it short for voice
	summaryTemperature = 0.3 // lower temperature for factual accuracy
	fallbackMaxChars   = 500
)

// Summarizer condenses retrieved context into a short, voice-friendly
// excerpt, or reports that nothing relevant was found.
type Summarizer struct {
	provider llm.LLMProvider
	model    string
}

func NewSummarizer(provider llm.LLMProvider, model string) *Summarizer {
	return &Summarizer{
		provider: provider,
		model:    model,
	}
}

// Condense returns (excerpt, relevant). relevant=false means the
// sentinel path: the caller must not inject anything for this turn.
// A summarizer failure falls back to the truncated raw context rather
// than failing the turn.
func (s *Summarizer) Condense(ctx context.Context, retrievedContext, question string) (string, bool) {
	prompt := fmt.Sprintf(constant.SummaryPromptTemplate, retrievedContext, question)

	summary, err := s.provider.Generate(ctx, prompt,
		llm.WithModel(s.model),
		llm.WithMaxTokens(summaryMaxTokens),
		llm.WithTemperature(summaryTemperature),
	)
	if err != nil {
		// Fallback to truncated original context if summarization fails.
		// Truncate in runes so Arabic text is never cut mid-character.
		truncated := retrievedContext
		if runes := []rune(truncated); len(runes) > fallbackMaxChars {
			truncated = string(runes[:fallbackMaxChars]) + "..."
		}
		return truncated, true
	}

	summary = strings.TrimSpace(summary)
	if strings.Contains(summary, SentinelNoRelevantInfo) {
		return "", false
	}

	return summary, true
}
