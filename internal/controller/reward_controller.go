// FILE: internal/controller/reward_controller.go
package controller

import (
	"digital-sales-be/internal/dto"
	"digital-sales-be/internal/pkg/serverutils"
	"digital-sales-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRewardController interface {
	RegisterRoutes(r fiber.Router)
	ProcessDealPayment(ctx *fiber.Ctx) error
}

type rewardController struct {
	service service.IRewardService
}

func NewRewardController(service service.IRewardService) IRewardController {
	return &rewardController{service: service}
}

func (c *rewardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/deals")
	h.Post("/payment", c.ProcessDealPayment)
}

// ProcessDealPayment is the manual entry point for deal settlement. Closures
// detected in live conversations settle automatically via the event stream.
func (c *rewardController) ProcessDealPayment(ctx *fiber.Ctx) error {
	var req dto.DealPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.ProcessDealPayment(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
