package service

import (
	"sync"

	"hadith-voice-be/internal/pkg/logger"
	"hadith-voice-be/internal/voice"

	"github.com/gofiber/fiber/v2"
)

type ISessionService interface {
	// Start registers a connecting session for the room. Fails while
	// another session for the room is still active.
	Start(room, identity string) (*voice.Session, error)

	// Connected flips the room's session to connected and returns the
	// agent's spoken greeting.
	Connected(room string) (string, error)

	// Fail records a connection failure so the UI can surface it.
	Fail(room, message string)

	// Disconnect tears the session down and clears conversation state.
	Disconnect(room string)

	// Session returns the room's current session, or nil.
	Session(room string) *voice.Session
}

type sessionService struct {
	mu       sync.Mutex
	sessions map[string]*voice.Session

	agent       IAgentService
	transcripts ITranscriptService
	log         logger.ILogger
}

func NewSessionService(agent IAgentService, transcripts ITranscriptService, log logger.ILogger) ISessionService {
	return &sessionService{
		sessions:    make(map[string]*voice.Session),
		agent:       agent,
		transcripts: transcripts,
		log:         log,
	}
}

func (ss *sessionService) Start(room, identity string) (*voice.Session, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if existing, ok := ss.sessions[room]; ok && existing.State() != voice.StateIdle {
		return nil, fiber.NewError(fiber.StatusConflict, "session already active for this room")
	}

	session := voice.NewSession(room, identity)
	if err := session.Start(); err != nil {
		return nil, err
	}
	ss.sessions[room] = session

	ss.log.Info("session", "Session connecting", map[string]interface{}{
		"room":     room,
		"identity": identity,
	})
	return session, nil
}

func (ss *sessionService) Connected(room string) (string, error) {
	ss.mu.Lock()
	session, ok := ss.sessions[room]
	ss.mu.Unlock()

	if !ok {
		return "", fiber.NewError(fiber.StatusNotFound, "no session for this room")
	}
	if err := session.Connected(); err != nil {
		return "", fiber.NewError(fiber.StatusConflict, err.Error())
	}

	session.SetAgentState(voice.AgentStateListening)
	ss.transcripts.BroadcastAgentState(room, string(voice.AgentStateListening))

	return ss.agent.Greeting(room), nil
}

func (ss *sessionService) Fail(room, message string) {
	ss.mu.Lock()
	session, ok := ss.sessions[room]
	ss.mu.Unlock()

	if !ok {
		return
	}
	session.Fail(message)
	ss.log.Warn("session", "Session failed", map[string]interface{}{
		"room":  room,
		"error": message,
	})
}

func (ss *sessionService) Disconnect(room string) {
	ss.mu.Lock()
	session, ok := ss.sessions[room]
	if ok {
		delete(ss.sessions, room)
	}
	ss.mu.Unlock()

	if !ok {
		return
	}
	session.Disconnect()
	ss.agent.EndConversation(room)
	ss.transcripts.Drop(room)

	ss.log.Info("session", "Session disconnected", map[string]interface{}{
		"room": room,
	})
}

func (ss *sessionService) Session(room string) *voice.Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.sessions[room]
}
