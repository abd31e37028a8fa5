package controller

import (
	"bloompath-be/internal/dto"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEPDSController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Latest(ctx *fiber.Ctx) error
}

type epdsController struct {
	screeningService service.IScreeningService
}

func NewEPDSController(screeningService service.IScreeningService) IEPDSController {
	return &epdsController{
		screeningService: screeningService,
	}
}

func (c *epdsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/epds/v1")
	h.Post("", c.Submit)
	h.Get(":userId/latest", c.Latest)
	h.Get(":userId", c.History)
}

func (c *epdsController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitScreeningRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.screeningService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit screening", res))
}

func (c *epdsController) History(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.NewHttpError(400, "Invalid user id")
	}

	res, err := c.screeningService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch screening history", res))
}

func (c *epdsController) Latest(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.NewHttpError(400, "Invalid user id")
	}

	res, err := c.screeningService.Latest(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch latest screening", res))
}
