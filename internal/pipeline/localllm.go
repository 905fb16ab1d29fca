package pipeline

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LocalLLMEngine sends the capture to a locally hosted OpenAI-compatible
// chat-completions server (ollama, LM Studio, llama.cpp). Same instruction
// and response shape as the cloud-vision engine; only the transport
// differs.
type LocalLLMEngine struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewLocalLLMEngine creates the engine for the given base URL, e.g.
// "http://localhost:11434/v1".
func NewLocalLLMEngine(baseURL, model string) *LocalLLMEngine {
	return &LocalLLMEngine{
		BaseURL: baseURL,
		Model:   model,
		Client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

// chatRequest is the OpenAI chat-completions request shape, with the image
// passed as an inline data-URL reference.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract implements the Engine interface.
func (e *LocalLLMEngine) Extract(ctx context.Context, image []byte) (*Result, error) {
	if e.BaseURL == "" {
		return nil, fmt.Errorf("local-llm: no base URL configured: %w", ErrMissingCredentials)
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(image)

	reqBody := chatRequest{
		Model: e.Model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: receiptPrompt},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				},
			},
		},
	}

	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("local-llm: encode request: %w", err)
	}

	endpoint := strings.TrimSuffix(e.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("local-llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("local-llm: %w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("local-llm: %w: %s", ErrTransport, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("local-llm: read response: %w: %v", ErrTransport, err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("local-llm: decode response: %w: %v", ErrMalformedResponse, err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("local-llm: empty completion: %w", ErrMalformedResponse)
	}

	payload, err := decodeReceipt(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("local-llm: %w", err)
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("local-llm: response has no items: %w", ErrNoItems)
	}

	return payload.toResult(), nil
}
