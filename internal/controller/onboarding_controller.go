// FILE: internal/controller/onboarding_controller.go
package controller

import (
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/pkg/serverutils"
	"digital-sales-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOnboardingController interface {
	RegisterRoutes(r fiber.Router)
	Converse(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
}

type onboardingController struct {
	service service.IOnboardingService
}

func NewOnboardingController(service service.IOnboardingService) IOnboardingController {
	return &onboardingController{service: service}
}

func (c *onboardingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/onboarding")
	h.Post("/conversation", c.Converse)
	h.Post("/complete", c.Complete)
	h.Get("/profile", c.GetProfile)
	h.Get("/status", c.GetStatus)
}

// Converse advances the scripted interview one turn. The frontend replays its
// whole history each call, so the endpoint itself stays stateless.
func (c *onboardingController) Converse(ctx *fiber.Ctx) error {
	var req dto.OnboardingTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Converse(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *onboardingController) Complete(ctx *fiber.Ctx) error {
	var req dto.CompleteOnboardingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Complete(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *onboardingController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.service.CurrentProfile(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Business profile retrieved", res))
}

// GetStatus is polled by the dashboard on entry to decide whether the user
// still needs the onboarding interview.
func (c *onboardingController) GetStatus(ctx *fiber.Ctx) error {
	res, err := c.service.Status(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
