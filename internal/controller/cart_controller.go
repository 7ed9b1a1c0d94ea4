package controller

import (
	"net/url"

	"voicemart-be/internal/dto"
	"voicemart-be/internal/pkg/serverutils"
	"voicemart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	AddDish(ctx *fiber.Ctx) error
	UpdateQuantity(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	SetBudget(ctx *fiber.Ctx) error
	SetRestrictions(ctx *fiber.Ctx) error
	ReorderLast(ctx *fiber.Ctx) error
}

type cartController struct {
	service service.ICartService
}

func NewCartController(service service.ICartService) ICartController {
	return &cartController{service: service}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart/v1")
	h.Post("session", c.CreateSession)
	h.Get(":sessionId", c.View)
	h.Post(":sessionId/items", c.Add)
	h.Put(":sessionId/items", c.UpdateQuantity)
	h.Delete(":sessionId/items/:name", c.Remove)
	h.Post(":sessionId/dish", c.AddDish)
	h.Post(":sessionId/budget", c.SetBudget)
	h.Post(":sessionId/restrictions", c.SetRestrictions)
	h.Post(":sessionId/reorder", c.ReorderLast)
}

func (c *cartController) CreateSession(ctx *fiber.Ctx) error {
	res := c.service.CreateSession()
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) View(ctx *fiber.Ctx) error {
	res, err := c.service.View(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) Add(ctx *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) AddDish(ctx *fiber.Ctx) error {
	var req dto.AddDishRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddDish(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) UpdateQuantity(ctx *fiber.Ctx) error {
	var req dto.UpdateQuantityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateQuantity(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) Remove(ctx *fiber.Ctx) error {
	// Item names can contain spaces, so the path segment arrives escaped.
	itemName, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		itemName = ctx.Params("name")
	}

	res, err := c.service.Remove(ctx.Params("sessionId"), itemName)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) SetBudget(ctx *fiber.Ctx) error {
	var req dto.SetBudgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetBudget(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) SetRestrictions(ctx *fiber.Ctx) error {
	var req dto.SetRestrictionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetRestrictions(ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *cartController) ReorderLast(ctx *fiber.Ctx) error {
	res, err := c.service.ReorderLast(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
