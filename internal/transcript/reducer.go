package transcript

import (
	"sync"
	"time"
)

// Speaker identifies who produced an utterance.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Message is one transcript entry. Interim messages are replaced
// wholesale when their final segment arrives; final messages are
// immutable and appended in arrival order.
type Message struct {
	Speaker   Speaker   `json:"speaker"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsFinal   bool      `json:"is_final"`
}

// Segment is one transcription event from the voice pipeline.
type Segment struct {
	Speaker Speaker
	Text    string
	IsFinal bool
}

// Reducer accumulates transcription segments into one append-only log
// of finalized messages plus one mutable interim cell per speaker.
// Finalization is a one-way transition: a final segment clears that
// speaker's interim cell and can never be reverted.
//
// Safe for concurrent use; the user and assistant streams arrive
// independently.
type Reducer struct {
	mu sync.Mutex

	log     []Message
	interim map[Speaker]*Message

	// lastInterim tracks which speaker most recently produced an
	// interim segment; that one is displayed prominently.
	lastInterim Speaker

	now func() time.Time
}

func NewReducer() *Reducer {
	return &Reducer{
		interim: make(map[Speaker]*Message),
		now:     time.Now,
	}
}

// Apply processes one segment: replace-interim, or append-final and
// clear-interim for that speaker.
func (r *Reducer) Apply(seg Segment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := Message{
		Speaker:   seg.Speaker,
		Content:   seg.Text,
		Timestamp: r.now(),
		IsFinal:   seg.IsFinal,
	}

	if !seg.IsFinal {
		r.interim[seg.Speaker] = &msg
		r.lastInterim = seg.Speaker
		return
	}

	r.log = append(r.log, msg)
	delete(r.interim, seg.Speaker)
	if r.lastInterim == seg.Speaker {
		// Fall back to the other speaker's pending interim, if any
		r.lastInterim = ""
		for speaker := range r.interim {
			r.lastInterim = speaker
		}
	}
}

// Interim returns the pending interim message for a speaker, or nil if
// that speaker's last segment was final.
func (r *Reducer) Interim(speaker Speaker) *Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg, ok := r.interim[speaker]; ok {
		copied := *msg
		return &copied
	}
	return nil
}

// Current returns the most recent interim message across all speakers,
// the one the renderer displays prominently. nil when nothing is pending.
func (r *Reducer) Current() *Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastInterim == "" {
		return nil
	}
	if msg, ok := r.interim[r.lastInterim]; ok {
		copied := *msg
		return &copied
	}
	return nil
}

// Log returns a copy of the finalized messages in arrival order.
func (r *Reducer) Log() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Message, len(r.log))
	copy(out, r.log)
	return out
}
