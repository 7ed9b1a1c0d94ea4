package controller

import (
	"voicemart-be/internal/dto"
	"voicemart-be/internal/pkg/serverutils"
	"voicemart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("", c.Search)
	h.Get(":id", c.Show)
}

func (c *catalogController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchItemsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.service.Search(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
