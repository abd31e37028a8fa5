package controller

import (
	"bloompath-be/internal/dto"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Today(ctx *fiber.Ctx) error
}

type moodController struct {
	moodService service.IMoodService
}

func NewMoodController(moodService service.IMoodService) IMoodController {
	return &moodController{
		moodService: moodService,
	}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mood/v1")
	h.Post("", c.Submit)
	h.Get(":userId/today", c.Today)
	h.Get(":userId", c.History)
}

func (c *moodController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitMoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.moodService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit mood entry", res))
}

func (c *moodController) History(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.NewHttpError(400, "Invalid user id")
	}
	days := ctx.QueryInt("days", 7)

	res, err := c.moodService.History(ctx.Context(), userId, days)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch mood history", res))
}

func (c *moodController) Today(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.NewHttpError(400, "Invalid user id")
	}

	res, err := c.moodService.Today(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch today's mood entry", res))
}
