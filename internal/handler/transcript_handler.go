package handler

import (
	"hadith-voice-be/internal/config"
	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/pkg/logger"
	"hadith-voice-be/internal/pkg/serverutils"
	"hadith-voice-be/internal/service"
	"hadith-voice-be/internal/transcript"
	internalWS "hadith-voice-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TranscriptHandler serves the transcript surface: the live websocket
// feed per room plus the HTTP snapshot and ingest endpoints the voice
// pipeline calls.
type TranscriptHandler struct {
	transcripts service.ITranscriptService
	hub         *internalWS.Hub
	livekit     config.LiveKitConfig
	logger      logger.ILogger
}

func NewTranscriptHandler(
	transcripts service.ITranscriptService,
	hub *internalWS.Hub,
	livekit config.LiveKitConfig,
	log logger.ILogger,
) *TranscriptHandler {
	return &TranscriptHandler{
		transcripts: transcripts,
		hub:         hub,
		livekit:     livekit,
		logger:      log,
	}
}

// ServeWs upgrades a watcher onto the room's live transcript feed. The
// handshake reuses the room access token: the same credential that
// joins the voice room opens its transcript stream.
func (h *TranscriptHandler) ServeWs(c *fiber.Ctx) error {
	room := c.Params("room")
	if room == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing room"})
	}

	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(h.livekit.ApiSecret), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("TranscriptHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	if grant, ok := claims["video"].(map[string]interface{}); !ok || grant["room"] != room {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Token not valid for this room"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("TranscriptHandler", "Starting transcript stream", map[string]interface{}{"room": room})
			internalWS.ServeWs(h.hub, conn, room)
			h.logger.Info("TranscriptHandler", "Transcript stream ended", map[string]interface{}{"room": room})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// PushSegment ingests one transcription segment from the voice
// pipeline, interim or final.
func (h *TranscriptHandler) PushSegment(c *fiber.Ctx) error {
	room := c.Params("room")

	var req dto.PushSegmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid segment payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	h.transcripts.ApplySegment(room, transcript.Speaker(req.Speaker), req.Text, req.IsFinal)
	return c.JSON(serverutils.SuccessResponse("Segment applied", nil))
}

// GetTranscript returns the room's finalized log plus the live interim
// line, for late joiners and page reloads.
func (h *TranscriptHandler) GetTranscript(c *fiber.Ctx) error {
	room := c.Params("room")
	return c.JSON(serverutils.SuccessResponse("Success get transcript", h.transcripts.Transcript(room)))
}

func (h *TranscriptHandler) RegisterRoutes(router fiber.Router) {
	rooms := router.Group("/rooms")
	rooms.Post("/:room/segments", h.PushSegment)
	rooms.Get("/:room/transcript", h.GetTranscript)
}

// RegisterWebSocket attaches the stream route at the app root, outside
// the /api group, so ws:// clients use a stable path.
func (h *TranscriptHandler) RegisterWebSocket(app *fiber.App) {
	app.Get("/ws/transcript/:room", h.ServeWs)
}
