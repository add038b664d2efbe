// FILE: internal/controller/conversation_controller.go
package controller

import (
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/pkg/serverutils"
	"digital-sales-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	StartConversation(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	EndSession(ctx *fiber.Ctx) error
	SetMute(ctx *fiber.Ctx) error
	GetMute(ctx *fiber.Ctx) error
}

type conversationController struct {
	service service.IConversationService
	// forceDemo runs every session against the simulator, regardless of
	// what the client asked for. Set via DEMO_MODE for upstream-less demos.
	forceDemo bool
}

func NewConversationController(service service.IConversationService, forceDemo bool) IConversationController {
	return &conversationController{service: service, forceDemo: forceDemo}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations")
	h.Post("/", c.StartConversation)
	h.Get("/mute", c.GetMute)
	h.Post("/mute", c.SetMute)
	h.Post("/:sessionId/messages", c.SendMessage)
	h.Get("/:sessionId", c.GetSession)
	h.Delete("/:sessionId", c.EndSession)
}

func (c *conversationController) StartConversation(ctx *fiber.Ctx) error {
	var req dto.StartConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if c.forceDemo {
		req.DemoMode = true
	}

	res, err := c.service.StartConversation(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *conversationController) SendMessage(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SendMessage(ctx.Context(), sessionId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *conversationController) GetSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	res, err := c.service.GetSession(ctx.Context(), sessionId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session retrieved", res))
}

func (c *conversationController) EndSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")

	if err := c.service.EndSession(ctx.Context(), sessionId); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session ended", nil))
}

// SetMute toggles audio playback globally, not per session. Muting cuts off
// an agent turn already being spoken.
func (c *conversationController) SetMute(ctx *fiber.Ctx) error {
	var req dto.MuteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	c.service.SetMuted(req.Muted)
	return ctx.JSON(dto.MuteResponse{Status: "success", Muted: c.service.Muted()})
}

func (c *conversationController) GetMute(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.MuteResponse{Status: "success", Muted: c.service.Muted()})
}
