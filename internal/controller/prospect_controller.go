// FILE: internal/controller/prospect_controller.go
package controller

import (
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/pkg/serverutils"
	"digital-sales-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProspectController interface {
	RegisterRoutes(r fiber.Router)
	ResearchProspects(ctx *fiber.Ctx) error
	QualifyLead(ctx *fiber.Ctx) error
	ListProspects(ctx *fiber.Ctx) error
	GetProspect(ctx *fiber.Ctx) error
}

type prospectController struct {
	service service.IProspectService
}

func NewProspectController(service service.IProspectService) IProspectController {
	return &prospectController{service: service}
}

func (c *prospectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prospects")
	h.Post("/research", c.ResearchProspects)
	h.Post("/qualify", c.QualifyLead)
	h.Get("/", c.ListProspects)
	h.Get("/:id", c.GetProspect)
}

func (c *prospectController) ResearchProspects(ctx *fiber.Ctx) error {
	var req dto.ResearchProspectsRequest
	// Every field is optional; an empty body means "research my default market".
	_ = ctx.BodyParser(&req)

	res, err := c.service.ResearchProspects(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *prospectController) QualifyLead(ctx *fiber.Ctx) error {
	var req dto.QualifyLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.QualifyLead(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *prospectController) ListProspects(ctx *fiber.Ctx) error {
	res, err := c.service.ListProspects(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Prospects retrieved", res))
}

func (c *prospectController) GetProspect(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid prospect ID"))
	}

	res, err := c.service.GetProspect(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Prospect retrieved", res))
}
