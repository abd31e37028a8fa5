package controller

import (
	"bloompath-be/internal/dto"
	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISpeechController interface {
	RegisterRoutes(r fiber.Router)
	Synthesize(ctx *fiber.Ctx) error
}

type speechController struct {
	speechService service.ISpeechService
}

func NewSpeechController(speechService service.ISpeechService) ISpeechController {
	return &speechController{
		speechService: speechService,
	}
}

func (c *speechController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tts/v1")
	h.Post("", c.Synthesize)
}

// Synthesize responds with raw audio rather than the JSON envelope so
// clients can feed the body straight into playback.
func (c *speechController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.SynthesizeSpeechRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	audio, contentType, err := c.speechService.Synthesize(ctx.Context(), req.Text)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(audio)
}
