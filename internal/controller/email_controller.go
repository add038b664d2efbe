// FILE: internal/controller/email_controller.go
package controller

import (
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/pkg/serverutils"
	"digital-sales-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEmailController interface {
	RegisterRoutes(r fiber.Router)
	GenerateEmail(ctx *fiber.Ctx) error
	SendEmail(ctx *fiber.Ctx) error
}

type emailController struct {
	service service.IColdEmailService
}

func NewEmailController(service service.IColdEmailService) IEmailController {
	return &emailController{service: service}
}

func (c *emailController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/emails")
	h.Post("/generate", c.GenerateEmail)
	h.Post("/send", c.SendEmail)
}

func (c *emailController) GenerateEmail(ctx *fiber.Ctx) error {
	var req dto.GenerateEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.GenerateEmail(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *emailController) SendEmail(ctx *fiber.Ctx) error {
	var req dto.SendEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SendEmail(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
