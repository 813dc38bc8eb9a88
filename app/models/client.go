package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"ContentCrewAI/app/utils/restclient"
)

const (
	endpoint          = "/v1/chat/completions"
	embeddingEndpoint = "/v1/embeddings"

	DefaultModel = "gpt-4o-mini"
)

var _ Interface = &LLMClient{}

type LLMClient struct {
	restClient      restclient.Interface
	cache           sync.Map
	model           string
	embeddingsModel string
}

// NewLLMClient binds a chat-completions client to the configured service.
// apiKey falls back to OPENAI_API_KEY, the base URL to LLM_BASE_URL.
func NewLLMClient(apiKey, model, embModel string) *LLMClient {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	if model == "" {
		model = DefaultModel
	}
	var headers map[string]string
	if apiKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + apiKey}
	}
	return &LLMClient{
		restClient:      restclient.NewRestClient(baseURL, headers),
		model:           model,
		embeddingsModel: embModel,
	}
}

// Generate issues exactly one completion request and returns the first
// choice's text. Service failures are reported as-is, never retried.
func (mc *LLMClient) Generate(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	payload := requestPayload{
		Model:       mc.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, status, err := mc.restClient.Post(ctx, endpoint, payload, nil)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", fmt.Errorf("completion request: HTTP %d: %s", status, string(body))
	}

	var response ResponseLLM
	if err = json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("parse completion response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return response.Choices[0].Message.Content, nil
}

func (mc *LLMClient) EmbedText(ctx context.Context, input string) ([]float32, error) {
	if v, ok := mc.cache.Load(input); ok {
		if emb, ok2 := v.([]float32); ok2 {
			return emb, nil
		}
	}
	if mc.embeddingsModel == "" {
		return nil, errors.New("embeddings model is empty; configure LLMClient.embeddingsModel")
	}

	payload := embeddingRequestPayload{
		Model: mc.embeddingsModel,
		Input: input,
	}
	body, status, err := mc.restClient.Post(ctx, embeddingEndpoint, payload, nil)
	if err != nil {
		return nil, fmt.Errorf("embeddings request: %w", err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("embeddings request: HTTP %d: %s", status, string(body))
	}

	var response embeddingResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("parse embeddings response: %w", err)
	}
	if len(response.Data) == 0 {
		return nil, errors.New("no embedding data returned")
	}

	emb := response.Data[0].Embedding
	mc.cache.Store(input, emb)
	return emb, nil
}
