package dto

import "time"

// TranscriptSegmentEvent is pushed to room watchers for every
// transcription segment, interim or final.
type TranscriptSegmentEvent struct {
	Room      string    `json:"room"`
	Speaker   string    `json:"speaker"` // "user" | "assistant"
	Text      string    `json:"text"`
	IsFinal   bool      `json:"is_final"`
	Timestamp time.Time `json:"timestamp"`
}

// AgentStateEvent signals the assistant activity indicator.
type AgentStateEvent struct {
	Room  string `json:"room"`
	State string `json:"state"` // "listening" | "thinking" | "speaking"
}

// TurnCompletedMessage rides the internal event bus once per finalized
// user utterance.
type TurnCompletedMessage struct {
	Room      string    `json:"room"`
	Utterance string    `json:"utterance"`
	Reply     string    `json:"reply"`
	Augmented bool      `json:"augmented"`
	Timestamp time.Time `json:"timestamp"`
}
