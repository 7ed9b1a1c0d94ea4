package controller

import (
	"voicemart-be/internal/dto"
	"voicemart-be/internal/pkg/serverutils"
	"voicemart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	PlaceDirect(ctx *fiber.Ctx) error
	Track(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	LastOrder(ctx *fiber.Ctx) error
}

type orderController struct {
	service service.IOrderService
}

func NewOrderController(service service.IOrderService) IOrderController {
	return &orderController{service: service}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/order/v1")
	h.Post("", c.PlaceDirect)
	h.Post("checkout/:sessionId", c.Checkout)
	h.Get("track/:orderId?", c.Track)
	h.Get("history", c.History)
	h.Get("last", c.LastOrder)
}

func (c *orderController) Checkout(ctx *fiber.Ctx) error {
	var req dto.PlaceOrderRequest
	// Buyer name is optional, so an empty body is fine.
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	res, err := c.service.Place(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *orderController) PlaceDirect(ctx *fiber.Ctx) error {
	var req dto.DirectOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.PlaceDirect(&req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *orderController) Track(ctx *fiber.Ctx) error {
	res, err := c.service.Track(ctx.Params("orderId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *orderController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *orderController) LastOrder(ctx *fiber.Ctx) error {
	res, err := c.service.LastOrderSummary()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
