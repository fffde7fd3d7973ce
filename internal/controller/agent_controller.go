package controller

import (
	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/pkg/serverutils"
	"hadith-voice-be/internal/service"
	"hadith-voice-be/internal/voice"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Turn(ctx *fiber.Ctx) error
}

type agentController struct {
	agentService   service.IAgentService
	sessionService service.ISessionService
	transcripts    service.ITranscriptService
}

func NewAgentController(
	agentService service.IAgentService,
	sessionService service.ISessionService,
	transcripts service.ITranscriptService,
) IAgentController {
	return &agentController{
		agentService:   agentService,
		sessionService: sessionService,
		transcripts:    transcripts,
	}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Post("turn", c.Turn)
}

// Turn is the completed-utterance hook. The voice pipeline calls it
// once per finalized user turn and speaks the reply it returns.
func (c *agentController) Turn(ctx *fiber.Ctx) error {
	var req dto.AgentTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid turn payload")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.setAgentState(req.RoomName, voice.AgentStateThinking)

	res, err := c.agentService.HandleTurn(ctx.Context(), req.RoomName, req.Utterance)
	if err != nil {
		c.setAgentState(req.RoomName, voice.AgentStateListening)
		return err
	}

	c.setAgentState(req.RoomName, voice.AgentStateSpeaking)

	return ctx.JSON(serverutils.SuccessResponse("Success handle turn", res))
}

func (c *agentController) setAgentState(room string, state voice.AgentState) {
	if session := c.sessionService.Session(room); session != nil {
		session.SetAgentState(state)
	}
	c.transcripts.BroadcastAgentState(room, string(state))
}
