package models

import "context"

type Interface interface {
	Generate(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error)
	EmbedText(ctx context.Context, input string) ([]float32, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
