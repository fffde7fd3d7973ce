package service

import (
	"sync"
	"time"

	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/transcript"
	"hadith-voice-be/internal/websocket"
)

type ITranscriptService interface {
	// ApplySegment folds one transcription segment into the room's
	// transcript and fans it out to room watchers.
	ApplySegment(room string, speaker transcript.Speaker, text string, isFinal bool)

	// Transcript returns the finalized log plus the current interim
	// line, if any.
	Transcript(room string) *dto.RoomTranscriptResponse

	// BroadcastAgentState pushes the activity indicator to watchers.
	BroadcastAgentState(room, state string)

	// Drop forgets a room's transcript (session teardown).
	Drop(room string)
}

type transcriptService struct {
	mu       sync.Mutex
	reducers map[string]*transcript.Reducer
	hub      *websocket.Hub
}

func NewTranscriptService(hub *websocket.Hub) ITranscriptService {
	return &transcriptService{
		reducers: make(map[string]*transcript.Reducer),
		hub:      hub,
	}
}

func (ts *transcriptService) ApplySegment(room string, speaker transcript.Speaker, text string, isFinal bool) {
	ts.reducer(room).Apply(transcript.Segment{
		Speaker: speaker,
		Text:    text,
		IsFinal: isFinal,
	})

	if ts.hub != nil {
		ts.hub.SendToRoom(room, "transcript_segment", dto.TranscriptSegmentEvent{
			Room:      room,
			Speaker:   string(speaker),
			Text:      text,
			IsFinal:   isFinal,
			Timestamp: time.Now(),
		})
	}
}

func (ts *transcriptService) Transcript(room string) *dto.RoomTranscriptResponse {
	r := ts.reducer(room)

	res := &dto.RoomTranscriptResponse{
		Messages: make([]dto.TranscriptMessage, 0),
	}
	for _, msg := range r.Log() {
		res.Messages = append(res.Messages, toTranscriptMessage(msg))
	}
	if interim := r.Current(); interim != nil {
		m := toTranscriptMessage(*interim)
		res.Interim = &m
	}
	return res
}

func (ts *transcriptService) BroadcastAgentState(room, state string) {
	if ts.hub == nil {
		return
	}
	ts.hub.SendToRoom(room, "agent_state", dto.AgentStateEvent{
		Room:  room,
		State: state,
	})
}

func (ts *transcriptService) Drop(room string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	delete(ts.reducers, room)
}

func (ts *transcriptService) reducer(room string) *transcript.Reducer {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	r, ok := ts.reducers[room]
	if !ok {
		r = transcript.NewReducer()
		ts.reducers[room] = r
	}
	return r
}

func toTranscriptMessage(msg transcript.Message) dto.TranscriptMessage {
	return dto.TranscriptMessage{
		Speaker:   string(msg.Speaker),
		Content:   msg.Content,
		Timestamp: msg.Timestamp.Format(time.RFC3339),
		IsFinal:   msg.IsFinal,
	}
}
