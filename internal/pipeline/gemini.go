package pipeline

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// CloudVisionEngine sends the capture to Gemini with the receipt
// extraction instruction and trusts the returned items verbatim.
type CloudVisionEngine struct {
	APIKey string
	Model  string
}

// NewCloudVisionEngine creates the engine. An empty API key is allowed
// here; Extract reports it as a missing-credentials failure.
func NewCloudVisionEngine(apiKey, model string) *CloudVisionEngine {
	return &CloudVisionEngine{APIKey: apiKey, Model: model}
}

// Extract implements the Engine interface.
func (e *CloudVisionEngine) Extract(ctx context.Context, image []byte) (*Result, error) {
	// Fail before any network call is attempted.
	if e.APIKey == "" {
		return nil, fmt.Errorf("cloud-vision: no API key configured: %w", ErrMissingCredentials)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      e.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("cloud-vision: create genai client: %w: %v", ErrTransport, err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: receiptPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: "image/png",
						Data:     image,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, e.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("cloud-vision: generate content: %w: %v", ErrTransport, err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("cloud-vision: empty response from model: %w", ErrMalformedResponse)
	}

	payload, err := decodeReceipt(rawText)
	if err != nil {
		return nil, fmt.Errorf("cloud-vision: %w", err)
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("cloud-vision: response has no items: %w", ErrNoItems)
	}

	return payload.toResult(), nil
}
