package dto

type AgentTurnRequest struct {
	RoomName  string `json:"room_name" validate:"required"`
	Utterance string `json:"utterance" validate:"required"`
}

type AgentTurnResponse struct {
	Reply     string `json:"reply"`
	Augmented bool   `json:"augmented"`
}

type AgentGreetingResponse struct {
	Greeting string `json:"greeting"`
}

type PushSegmentRequest struct {
	Speaker string `json:"speaker" validate:"required,oneof=user assistant"`
	Text    string `json:"text" validate:"required"`
	IsFinal bool   `json:"is_final"`
}

type RoomTranscriptResponse struct {
	Messages []TranscriptMessage `json:"messages"`
	Interim  *TranscriptMessage  `json:"interim,omitempty"`
}

type TranscriptMessage struct {
	Speaker   string `json:"speaker"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	IsFinal   bool   `json:"is_final"`
}
