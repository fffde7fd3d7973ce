package controller

import (
	"hadith-voice-be/internal/pkg/serverutils"
	"hadith-voice-be/pkg/lookup"

	"github.com/gofiber/fiber/v2"
)

type ILookupController interface {
	RegisterRoutes(r fiber.Router)
	Narrator(ctx *fiber.Ctx) error
	Classification(ctx *fiber.Ctx) error
}

// lookupController exposes the agent's reference tables over HTTP so
// non-voice clients can query them directly.
type lookupController struct{}

func NewLookupController() ILookupController {
	return &lookupController{}
}

func (c *lookupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lookup/v1")
	h.Get("narrator", c.Narrator)
	h.Get("classification", c.Classification)
}

func (c *lookupController) Narrator(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter 'name' is required")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success lookup narrator", fiber.Map{
		"name":   name,
		"result": lookup.Narrator(name),
	}))
}

func (c *lookupController) Classification(ctx *fiber.Ctx) error {
	term := ctx.Query("term")
	if term == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter 'term' is required")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success lookup classification", fiber.Map{
		"term":   term,
		"result": lookup.Classification(term),
	}))
}
