package controller

import (
	"bloompath-be/internal/dto"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type chatController struct {
	chatbotService service.IChatbotService
}

func NewChatController(chatbotService service.IChatbotService) IChatController {
	return &chatController{
		chatbotService: chatbotService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Send)
	h.Get(":userId", c.History)
	h.Delete(":userId", c.Clear)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.chatbotService.Send(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat message", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.NewHttpError(400, "Invalid user id")
	}

	res, err := c.chatbotService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch chat history", res))
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return serverutils.NewHttpError(400, "Invalid user id")
	}

	if err := c.chatbotService.Clear(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear chat history", nil))
}
