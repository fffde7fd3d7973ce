package transcript

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestReducer() *Reducer {
	r := NewReducer()
	var tick int64
	r.now = func() time.Time {
		tick++
		return time.Unix(tick, 0)
	}
	return r
}

func TestInterimSlotReflectsLastNonFinalSegment(t *testing.T) {
	tests := []struct {
		name        string
		segments    []Segment
		wantInterim string // "" means empty slot
	}{
		{
			name: "single interim",
			segments: []Segment{
				{Speaker: SpeakerUser, Text: "what", IsFinal: false},
			},
			wantInterim: "what",
		},
		{
			name: "interim replaced wholesale",
			segments: []Segment{
				{Speaker: SpeakerUser, Text: "what", IsFinal: false},
				{Speaker: SpeakerUser, Text: "what does", IsFinal: false},
				{Speaker: SpeakerUser, Text: "what does sahih", IsFinal: false},
			},
			wantInterim: "what does sahih",
		},
		{
			name: "final clears slot",
			segments: []Segment{
				{Speaker: SpeakerUser, Text: "what does", IsFinal: false},
				{Speaker: SpeakerUser, Text: "what does sahih mean", IsFinal: true},
			},
			wantInterim: "",
		},
		{
			name: "new interim after final",
			segments: []Segment{
				{Speaker: SpeakerUser, Text: "first", IsFinal: true},
				{Speaker: SpeakerUser, Text: "sec", IsFinal: false},
			},
			wantInterim: "sec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReducer()
			for _, seg := range tt.segments {
				r.Apply(seg)
			}

			got := r.Interim(SpeakerUser)
			if tt.wantInterim == "" {
				if got != nil {
					t.Errorf("interim slot = %q, want empty", got.Content)
				}
				return
			}
			if got == nil || got.Content != tt.wantInterim {
				t.Errorf("interim slot = %v, want %q", got, tt.wantInterim)
			}
		})
	}
}

func TestFinalizationIsMonotonic(t *testing.T) {
	r := newTestReducer()

	r.Apply(Segment{Speaker: SpeakerUser, Text: "what does sahih mean", IsFinal: true})
	// A later interim belongs to a NEW utterance; it must not touch the log.
	r.Apply(Segment{Speaker: SpeakerUser, Text: "and what", IsFinal: false})

	log := r.Log()
	if len(log) != 1 {
		t.Fatalf("log size = %d, want 1", len(log))
	}
	if !log[0].IsFinal {
		t.Error("finalized message reverted to interim")
	}
	if log[0].Content != "what does sahih mean" {
		t.Errorf("finalized content = %q, changed after later segment", log[0].Content)
	}
}

func TestFinalLogAppendOrder(t *testing.T) {
	r := newTestReducer()

	r.Apply(Segment{Speaker: SpeakerUser, Text: "u1", IsFinal: true})
	r.Apply(Segment{Speaker: SpeakerAssistant, Text: "a1", IsFinal: true})
	r.Apply(Segment{Speaker: SpeakerUser, Text: "u2", IsFinal: true})

	log := r.Log()
	want := []string{"u1", "a1", "u2"}
	if len(log) != len(want) {
		t.Fatalf("log size = %d, want %d", len(log), len(want))
	}
	for i, w := range want {
		if log[i].Content != w {
			t.Errorf("log[%d] = %q, want %q", i, log[i].Content, w)
		}
	}
}

func TestPerSpeakerInterimSlotsAreIndependent(t *testing.T) {
	r := newTestReducer()

	r.Apply(Segment{Speaker: SpeakerUser, Text: "user pending", IsFinal: false})
	r.Apply(Segment{Speaker: SpeakerAssistant, Text: "assistant pending", IsFinal: false})

	// Assistant spoke last, its interim is the prominent one
	if cur := r.Current(); cur == nil || cur.Speaker != SpeakerAssistant {
		t.Fatalf("Current() = %v, want assistant interim", cur)
	}

	// User's slot is untouched by the assistant stream
	if got := r.Interim(SpeakerUser); got == nil || got.Content != "user pending" {
		t.Errorf("user interim = %v, want %q", got, "user pending")
	}

	// Finalizing the assistant falls back to the user's pending interim
	r.Apply(Segment{Speaker: SpeakerAssistant, Text: "assistant done", IsFinal: true})
	if cur := r.Current(); cur == nil || cur.Speaker != SpeakerUser {
		t.Errorf("Current() after assistant final = %v, want user interim", cur)
	}
}

func TestCurrentEmptyWhenNothingPending(t *testing.T) {
	r := newTestReducer()
	if cur := r.Current(); cur != nil {
		t.Errorf("Current() on fresh reducer = %v, want nil", cur)
	}

	r.Apply(Segment{Speaker: SpeakerUser, Text: "done", IsFinal: true})
	if cur := r.Current(); cur != nil {
		t.Errorf("Current() after only finals = %v, want nil", cur)
	}
}

func TestConcurrentStreams(t *testing.T) {
	r := NewReducer()

	var wg sync.WaitGroup
	for _, speaker := range []Speaker{SpeakerUser, SpeakerAssistant} {
		wg.Add(1)
		go func(sp Speaker) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				r.Apply(Segment{Speaker: sp, Text: fmt.Sprintf("%s-%d", sp, i), IsFinal: false})
				r.Apply(Segment{Speaker: sp, Text: fmt.Sprintf("%s-%d", sp, i), IsFinal: true})
			}
		}(speaker)
	}
	wg.Wait()

	log := r.Log()
	if len(log) != 100 {
		t.Errorf("log size = %d, want 100", len(log))
	}
	if cur := r.Current(); cur != nil {
		t.Errorf("Current() after all finals = %v, want nil", cur)
	}
}
