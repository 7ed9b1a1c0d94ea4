package controller

import (
	"voicemart-be/internal/dto"
	"voicemart-be/internal/pkg/serverutils"
	"voicemart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFraudController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	LoadCase(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
	GetDetails(ctx *fiber.Ctx) error
	Dispose(ctx *fiber.Ctx) error
	EndCall(ctx *fiber.Ctx) error
}

type fraudController struct {
	service service.IFraudService
}

func NewFraudController(service service.IFraudService) IFraudController {
	return &fraudController{service: service}
}

func (c *fraudController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/fraud/v1")
	h.Post("session", c.CreateSession)
	h.Post(":sessionId/case", c.LoadCase)
	h.Post(":sessionId/verify", c.Verify)
	h.Get(":sessionId/details", c.GetDetails)
	h.Post(":sessionId/disposition", c.Dispose)
	h.Post(":sessionId/end", c.EndCall)
}

func (c *fraudController) CreateSession(ctx *fiber.Ctx) error {
	res := c.service.CreateSession()
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *fraudController) LoadCase(ctx *fiber.Ctx) error {
	var req dto.LoadCaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.LoadCase(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *fraudController) Verify(ctx *fiber.Ctx) error {
	var req dto.VerifyCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Verify(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *fraudController) GetDetails(ctx *fiber.Ctx) error {
	res, err := c.service.GetDetails(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *fraudController) Dispose(ctx *fiber.Ctx) error {
	var req dto.DisposeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Dispose(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *fraudController) EndCall(ctx *fiber.Ctx) error {
	res, err := c.service.EndCall(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
