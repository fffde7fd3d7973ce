package controller

import (
	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/pkg/serverutils"
	"hadith-voice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Connected(ctx *fiber.Ctx) error
	Fail(ctx *fiber.Ctx) error
	Disconnect(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("start", c.Start)
	h.Post(":room/connected", c.Connected)
	h.Post(":room/fail", c.Fail)
	h.Post(":room/disconnect", c.Disconnect)
	h.Get(":room", c.Show)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session payload")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	session, err := c.sessionService.Start(req.RoomName, req.Identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session connecting", dto.SessionResponse{
		RoomName: session.Room(),
		Identity: session.Identity(),
		State:    string(session.State()),
	}))
}

func (c *sessionController) Connected(ctx *fiber.Ctx) error {
	room := ctx.Params("room")

	greeting, err := c.sessionService.Connected(room)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session connected", dto.AgentGreetingResponse{
		Greeting: greeting,
	}))
}

func (c *sessionController) Fail(ctx *fiber.Ctx) error {
	room := ctx.Params("room")

	var req dto.FailSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	c.sessionService.Fail(room, req.Message)
	return ctx.JSON(serverutils.SuccessResponse("Failure recorded", nil))
}

func (c *sessionController) Disconnect(ctx *fiber.Ctx) error {
	room := ctx.Params("room")
	c.sessionService.Disconnect(room)
	return ctx.JSON(serverutils.SuccessResponse("Session disconnected", nil))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	room := ctx.Params("room")

	session := c.sessionService.Session(room)
	if session == nil {
		return fiber.NewError(fiber.StatusNotFound, "No session for this room")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", dto.SessionResponse{
		RoomName:   session.Room(),
		Identity:   session.Identity(),
		State:      string(session.State()),
		AgentState: string(session.AgentState()),
		LastError:  session.LastError(),
	}))
}
