package controller

import (
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Weekly(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService service.IInsightService
}

func NewInsightController(insightService service.IInsightService) IInsightController {
	return &insightController{
		insightService: insightService,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insights/v1")
	h.Get(":userId", c.Weekly)
}

func (c *insightController) Weekly(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.NewHttpError(400, "Invalid user id")
	}

	res, err := c.insightService.Weekly(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch weekly insights", res))
}
