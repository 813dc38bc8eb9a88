package agents

import (
	"context"
	"errors"

	"ContentCrewAI/app/models"
)

// stubModel lets tests script completions and inspect the prompts that
// reached the generation service.
type stubModel struct {
	generate func(messages []models.Message, temperature float64, maxTokens int) (string, error)
	prompts  []string
}

func (s *stubModel) Generate(_ context.Context, messages []models.Message, temperature float64, maxTokens int) (string, error) {
	for _, m := range messages {
		if m.Role == "user" {
			s.prompts = append(s.prompts, m.Content)
		}
	}
	return s.generate(messages, temperature, maxTokens)
}

func (s *stubModel) EmbedText(context.Context, string) ([]float32, error) {
	return nil, errors.New("embeddings not stubbed")
}

func fixedModel(text string) *stubModel {
	return &stubModel{generate: func([]models.Message, float64, int) (string, error) {
		return text, nil
	}}
}

func failingModel(err error) *stubModel {
	return &stubModel{generate: func([]models.Message, float64, int) (string, error) {
		return "", err
	}}
}
