package voice

import (
	"errors"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession("hadith-voice-room", "user-abc123")

	if s.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", s.State())
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if s.State() != StateConnecting {
		t.Errorf("state after Start = %v, want connecting", s.State())
	}

	if err := s.Connected(); err != nil {
		t.Fatalf("Connected() = %v", err)
	}
	if s.State() != StateConnected {
		t.Errorf("state after Connected = %v, want connected", s.State())
	}

	s.Disconnect()
	if s.State() != StateIdle {
		t.Errorf("state after Disconnect = %v, want idle", s.State())
	}
}

func TestStartIsNotReentrant(t *testing.T) {
	s := NewSession("room", "id")

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second Start while connecting = %v, want ErrAlreadyActive", err)
	}

	if err := s.Connected(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("Start while connected = %v, want ErrAlreadyActive", err)
	}
}

func TestFailReturnsToIdleWithError(t *testing.T) {
	s := NewSession("room", "id")
	_ = s.Start()

	s.Fail("could not join room")

	if s.State() != StateIdle {
		t.Errorf("state after Fail = %v, want idle", s.State())
	}
	if s.LastError() != "could not join room" {
		t.Errorf("LastError = %q", s.LastError())
	}

	// A new Start clears the surfaced error; no automatic retry happened meanwhile
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.LastError() != "" {
		t.Errorf("LastError after restart = %q, want empty", s.LastError())
	}
}

func TestConnectedRequiresConnecting(t *testing.T) {
	s := NewSession("room", "id")
	if err := s.Connected(); !errors.Is(err, ErrNotConnecting) {
		t.Errorf("Connected from idle = %v, want ErrNotConnecting", err)
	}
}

func TestAgentStateOnlyWhileConnected(t *testing.T) {
	s := NewSession("room", "id")

	s.SetAgentState(AgentStateSpeaking)
	if s.AgentState() != AgentStateListening {
		t.Errorf("agent state changed while idle")
	}

	_ = s.Start()
	_ = s.Connected()
	s.SetAgentState(AgentStateSpeaking)
	if s.AgentState() != AgentStateSpeaking {
		t.Errorf("agent state = %v, want speaking", s.AgentState())
	}

	s.Disconnect()
	if s.AgentState() != AgentStateListening {
		t.Errorf("agent state after disconnect = %v, want listening", s.AgentState())
	}
}
