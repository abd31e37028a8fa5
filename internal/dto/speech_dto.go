package dto

type SynthesizeSpeechRequest struct {
	Text string `json:"text" validate:"required"`
}
