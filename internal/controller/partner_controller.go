package controller

import (
	"bloompath-be/internal/dto"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPartnerController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type partnerController struct {
	partnerService service.IPartnerService
}

func NewPartnerController(partnerService service.IPartnerService) IPartnerController {
	return &partnerController{
		partnerService: partnerService,
	}
}

func (c *partnerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/partner/v1")
	h.Post("", c.Generate)
}

func (c *partnerController) Generate(ctx *fiber.Ctx) error {
	var req dto.PartnerMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.partnerService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate partner message", res))
}
