package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"hadith-voice-be/internal/constant"
	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/pkg/logger"
	"hadith-voice-be/pkg/llm"
	"hadith-voice-be/pkg/rag"
	"hadith-voice-be/pkg/store"
)

// ContextRetriever is the slice of the retriever the agent needs.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]rag.Result, error)
	FormatContext(results []rag.Result) string
}

// ContextSummarizer condenses retrieved context for voice output.
type ContextSummarizer interface {
	Condense(ctx context.Context, retrievedContext, question string) (string, bool)
}

type IAgentService interface {
	// Greeting seeds a fresh conversation for the room and returns the
	// line the agent speaks on join.
	Greeting(room string) string

	// HandleTurn runs the full per-utterance flow: classify, retrieve,
	// condense, inject, reply.
	HandleTurn(ctx context.Context, room, utterance string) (*dto.AgentTurnResponse, error)

	// ShouldUseRag reports whether an utterance warrants a book lookup.
	ShouldUseRag(utterance string) bool

	// EndConversation drops the room's history.
	EndConversation(room string)
}

type agentService struct {
	retriever  ContextRetriever
	summarizer ContextSummarizer
	provider   llm.LLMProvider
	history    *store.HistoryStore
	publisher  IPublisherService
	log        logger.ILogger

	agentName        string
	agentPersonality string
	model            string
	temperature      string
	ragTimeout       time.Duration
}

func NewAgentService(
	retriever ContextRetriever,
	summarizer ContextSummarizer,
	provider llm.LLMProvider,
	history *store.HistoryStore,
	publisher IPublisherService,
	log logger.ILogger,
	agentName string,
	agentPersonality string,
	model string,
	temperature string,
	ragTimeoutSeconds int,
) IAgentService {
	if ragTimeoutSeconds <= 0 {
		ragTimeoutSeconds = 10
	}
	return &agentService{
		retriever:        retriever,
		summarizer:       summarizer,
		provider:         provider,
		history:          history,
		publisher:        publisher,
		log:              log,
		agentName:        agentName,
		agentPersonality: agentPersonality,
		model:            model,
		temperature:      temperature,
		ragTimeout:       time.Duration(ragTimeoutSeconds) * time.Second,
	}
}

// greetingPhrases are matched as whole words against short utterances.
// Anything of five words or more is treated as a real question.
var greetingPhrases = []string{"thank you", "hello", "hi", "thanks", "bye", "goodbye"}

const greetingMaxWords = 5

func (s *agentService) ShouldUseRag(utterance string) bool {
	words := strings.Fields(normalizeUtterance(utterance))
	if len(words) == 0 {
		return false
	}
	if len(words) >= greetingMaxWords {
		return true
	}

	padded := " " + strings.Join(words, " ") + " "
	for _, phrase := range greetingPhrases {
		if strings.Contains(padded, " "+phrase+" ") {
			return false
		}
	}
	return true
}

func normalizeUtterance(utterance string) string {
	lower := strings.ToLower(utterance)
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '\'' {
			return r
		}
		return ' '
	}, lower)
}

func (s *agentService) Greeting(room string) string {
	s.history.Clear(room)
	s.seedPersona(room)

	greeting := constant.InitialGreeting(s.agentName)
	s.history.Append(room, llm.Message{Role: constant.ChatRoleAssistant, Content: greeting})
	return greeting
}

func (s *agentService) HandleTurn(ctx context.Context, room, utterance string) (*dto.AgentTurnResponse, error) {
	s.seedPersona(room)
	s.history.Append(room, llm.Message{Role: constant.ChatRoleUser, Content: utterance})

	augmented := false
	if s.ShouldUseRag(utterance) {
		if reference, ok := s.lookupReference(ctx, room, utterance); ok {
			s.history.Append(room, llm.Message{Role: constant.ChatRoleAssistant, Content: reference})
			augmented = true
		}
	}

	reply, err := s.provider.Chat(ctx, s.history.Get(room), s.chatOptions()...)
	if err != nil {
		s.log.Error("agent", "Reply generation failed", map[string]interface{}{
			"room":  room,
			"error": err.Error(),
		})
		return nil, err
	}
	reply = strings.TrimSpace(reply)
	s.history.Append(room, llm.Message{Role: constant.ChatRoleAssistant, Content: reply})

	s.publishTurn(ctx, room, utterance, reply, augmented)

	return &dto.AgentTurnResponse{
		Reply:     reply,
		Augmented: augmented,
	}, nil
}

// lookupReference retrieves and condenses book context for one
// utterance, bounded by the RAG timeout. Any failure degrades to
// answering without the book.
func (s *agentService) lookupReference(ctx context.Context, room, utterance string) (string, bool) {
	ragCtx, cancel := context.WithTimeout(ctx, s.ragTimeout)
	defer cancel()

	results, err := s.retriever.Retrieve(ragCtx, utterance, 0)
	if err != nil {
		s.log.Warn("agent", "Retrieval failed, answering without book context", map[string]interface{}{
			"room":  room,
			"error": err.Error(),
		})
		return "", false
	}
	if len(results) == 0 {
		return "", false
	}

	formatted := s.retriever.FormatContext(results)
	summary, relevant := s.summarizer.Condense(ragCtx, formatted, utterance)
	if !relevant || summary == "" {
		return "", false
	}

	reference := "[Book Reference]: " + summary +
		"\n\nNow answer the student's question using this information. " +
		"If this doesn't fully answer the question, supplement with your own knowledge."
	return reference, true
}

func (s *agentService) EndConversation(room string) {
	s.history.Clear(room)
}

func (s *agentService) seedPersona(room string) {
	if len(s.history.Get(room)) > 0 {
		return
	}
	s.history.Append(room, llm.Message{
		Role:    constant.ChatRoleSystem,
		Content: constant.AgentInstructions(s.agentName, s.agentPersonality),
	})
}

func (s *agentService) chatOptions() []llm.Option {
	opts := []llm.Option{llm.WithModel(s.model)}
	if s.temperature != "" {
		if temp, err := strconv.ParseFloat(s.temperature, 64); err == nil {
			opts = append(opts, llm.WithTemperature(temp))
		}
	}
	return opts
}

func (s *agentService) publishTurn(ctx context.Context, room, utterance, reply string, augmented bool) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(dto.TurnCompletedMessage{
		Room:      room,
		Utterance: utterance,
		Reply:     reply,
		Augmented: augmented,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Warn("agent", "Turn event publish failed", map[string]interface{}{
			"room":  room,
			"error": err.Error(),
		})
	}
}
