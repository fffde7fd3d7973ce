package voice

import (
	"errors"
	"sync"
)

// State is the connection lifecycle of a voice session.
type State string

const (
	StateIdle       State = "idle"
	StateConnecting State = "connecting"
	StateConnected  State = "connected"
)

// AgentState drives the visual audio-level indicator in the UI.
type AgentState string

const (
	AgentStateListening AgentState = "listening"
	AgentStateThinking  AgentState = "thinking"
	AgentStateSpeaking  AgentState = "speaking"
)

var (
	// ErrAlreadyActive rejects a second start while connecting or connected.
	ErrAlreadyActive = errors.New("session already connecting or connected")
	// ErrNotConnecting rejects completion events outside the connecting state.
	ErrNotConnecting = errors.New("session is not connecting")
)

// Session models one room's connection lifecycle:
// idle -> connecting -> connected -> idle. Transitions are guarded and
// not reentrant. There is no automatic retry; a failed connect surfaces
// its error and returns to idle.
type Session struct {
	mu sync.Mutex

	room       string
	identity   string
	state      State
	agentState AgentState
	lastError  string
}

func NewSession(room, identity string) *Session {
	return &Session{
		room:       room,
		identity:   identity,
		state:      StateIdle,
		agentState: AgentStateListening,
	}
}

func (s *Session) Room() string     { return s.room }
func (s *Session) Identity() string { return s.identity }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the error string surfaced by the most recent failed
// connect, cleared by the next Start.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Start moves idle -> connecting. Any other starting state is rejected.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return ErrAlreadyActive
	}
	s.state = StateConnecting
	s.lastError = ""
	return nil
}

// Connected moves connecting -> connected.
func (s *Session) Connected() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateConnecting {
		return ErrNotConnecting
	}
	s.state = StateConnected
	return nil
}

// Fail records a connect failure and returns the session to idle.
func (s *Session) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.agentState = AgentStateListening
	s.lastError = message
}

// Disconnect tears down the session and clears its state.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.agentState = AgentStateListening
	s.lastError = ""
}

// SetAgentState updates the assistant activity signal. Only meaningful
// while connected; ignored otherwise.
func (s *Session) SetAgentState(state AgentState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateConnected {
		return
	}
	s.agentState = state
}

func (s *Session) AgentState() AgentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agentState
}
