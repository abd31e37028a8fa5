package service

import (
	"context"
	"errors"

	"bloompath-be/internal/pkg/serverutils"
	"bloompath-be/pkg/speech/elevenlabs"
)

type ISpeechService interface {
	Synthesize(ctx context.Context, text string) (audio []byte, contentType string, err error)
}

type speechService struct {
	tts *elevenlabs.Client
}

func NewSpeechService(tts *elevenlabs.Client) ISpeechService {
	return &speechService{
		tts: tts,
	}
}

func (c *speechService) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	audio, contentType, err := c.tts.Synthesize(ctx, text)
	if err != nil {
		if errors.Is(err, elevenlabs.ErrNotConfigured) {
			return nil, "", serverutils.NewHttpError(503, "Text-to-speech is not configured")
		}
		return nil, "", err
	}
	return audio, contentType, nil
}
