package controller

import (
	"hadith-voice-be/internal/dto"
	"hadith-voice-be/internal/pkg/serverutils"
	"hadith-voice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITokenController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type tokenController struct {
	tokenService service.ITokenService
}

func NewTokenController(tokenService service.ITokenService) ITokenController {
	return &tokenController{
		tokenService: tokenService,
	}
}

func (c *tokenController) RegisterRoutes(r fiber.Router) {
	r.Post("/token", c.Create)
	r.Get("/health", c.Health)
}

func (c *tokenController) Create(ctx *fiber.Ctx) error {
	// Body is optional; identity and room both have server-side defaults.
	var req dto.CreateTokenRequest
	_ = ctx.BodyParser(&req)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tokenService.CreateToken(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *tokenController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
