// Package openai implements the inference client against the OpenAI chat
// completions API.
package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/at-ishikawa/etymora/internal/inference"
	"resty.dev/v3"
)

type Client struct {
	httpClient *resty.Client
	model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		model:      model,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

const systemPrompt = `You are an expert lexicographer and etymologist. Given a single English word, produce a complete linguistic breakdown of it.

STRICT OUTPUT: Respond ONLY with a single JSON object matching the schema below. No text outside the JSON, no markdown fences.

If the input is not a real English word, respond instead with exactly:
{"error": "<a short message explaining why the input is not a valid word>"}

Schema fields:

%s
Rules:
- "examples" must contain at least three items.
- "forms" lists each distinct part-of-speech form of the word, each with its own definition and example.
- Keep every string concise and factual. Do not invent citations.`

func (client *Client) getRequestBody(params inference.GenerateWordDetailsRequest) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: inference.DefaultTemperature,
		ResponseFormat: &ResponseFormat{
			Type: "json_object",
		},
		Messages: []Message{
			{
				Role:    RoleSystem,
				Content: fmt.Sprintf(systemPrompt, dictionary.RenderSchema(dictionary.WordDetailsSchema())),
			},
			{
				Role:    RoleUser,
				Content: params.Word,
			},
		},
	}
}

// GenerateWordDetails implements the inference.Client interface. It makes a
// single request per call; there is no retry policy.
func (client *Client) GenerateWordDetails(
	ctx context.Context,
	params inference.GenerateWordDetailsRequest,
) (inference.GenerateWordDetailsResponse, error) {
	requestBody := client.getRequestBody(params)

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.GenerateWordDetailsResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.GenerateWordDetailsResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.GenerateWordDetailsResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.GenerateWordDetailsResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"word", params.Word,
		"model", responseBody.Model,
		"usage", responseBody.Usage,
	)

	return inference.GenerateWordDetailsResponse{Content: []byte(content)}, nil
}
