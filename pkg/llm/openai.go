package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider implements Provider against the OpenAI chat-completions API.
// Also serves any OpenAI-compatible endpoint via a custom base URL.
type OpenAIProvider struct {
	name       string
	apiKey     string
	baseURL    string
	embedModel string
	httpClient *http.Client
}

// NewOpenAIProvider creates an OpenAI (or compatible) adapter.
func NewOpenAIProvider(name, apiKey, baseURL, embedModel string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIProvider{
		name:       name,
		apiKey:     apiKey,
		baseURL:    baseURL,
		embedModel: embedModel,
		httpClient: &http.Client{Timeout: 3 * time.Minute},
	}
}

// Name returns the configured provider name.
func (p *OpenAIProvider) Name() string { return p.name }

type openAIChatRequest struct {
	Model          string         `json:"model"`
	Messages       []Message      `json:"messages"`
	Temperature    *float64       `json:"temperature,omitempty"`
	MaxTokens      int            `json:"max_completion_tokens,omitempty"`
	ResponseFormat *openAIRespFmt `json:"response_format,omitempty"`
}

type openAIRespFmt struct {
	Type string `json:"type"`
}

type openAIChatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete performs a single chat completion.
func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	temp := req.Temperature
	body := openAIChatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: &temp,
		MaxTokens:   req.MaxOutputTokens,
	}
	if req.ResponseFormat == ResponseFormatJSON {
		body.ResponseFormat = &openAIRespFmt{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: fmt.Sprintf("marshal request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(p.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(p.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Provider:   p.name,
			StatusCode: resp.StatusCode,
			Class:      classifyStatus(resp.StatusCode),
			Message:    truncate(string(raw), 512),
		}
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: fmt.Sprintf("decode response: %v", err)}
	}
	if len(parsed.Choices) == 0 {
		return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: "response has no choices"}
	}

	return &Completion{
		Content:      parsed.Choices[0].Message.Content,
		Model:        parsed.Model,
		InputTokens:  parsed.Usage.PromptTokens,
		OutputTokens: parsed.Usage.CompletionTokens,
		StopReason:   parsed.Choices[0].FinishReason,
	}, nil
}

type openAIEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type openAIEmbedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// Embed returns one vector per input text.
func (p *OpenAIProvider) Embed(ctx context.Context, req EmbedRequest) ([][]float32, error) {
	if p.embedModel == "" && req.Model == "" {
		return nil, ErrEmbeddingUnsupported
	}
	model := req.Model
	if model == "" {
		model = p.embedModel
	}

	payload, err := json.Marshal(openAIEmbedRequest{Model: model, Input: req.Texts})
	if err != nil {
		return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: err.Error()}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(p.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(p.name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Provider:   p.name,
			StatusCode: resp.StatusCode,
			Class:      classifyStatus(resp.StatusCode),
			Message:    truncate(string(raw), 512),
		}
	}

	var parsed openAIEmbedResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: fmt.Sprintf("decode response: %v", err)}
	}

	vectors := make([][]float32, len(parsed.Data))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, &APIError{Provider: p.name, Class: ClassInvalid, Message: "embedding index out of range"}
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

// truncate limits an error body for logs and messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
