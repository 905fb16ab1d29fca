package pipeline

import (
	"context"
	"fmt"
)

// EngineID selects one of the extraction engines.
type EngineID string

const (
	// EngineLocalOCR runs an on-device OCR pass and a price-line heuristic.
	EngineLocalOCR EngineID = "local-ocr"
	// EngineCloudVision sends the capture to Gemini.
	EngineCloudVision EngineID = "cloud-vision"
	// EngineLocalLLM sends the capture to an OpenAI-compatible local server.
	EngineLocalLLM EngineID = "local-llm"
)

// ParseEngineID parses a string into an EngineID.
func ParseEngineID(s string) (EngineID, error) {
	switch EngineID(s) {
	case EngineLocalOCR, EngineCloudVision, EngineLocalLLM:
		return EngineID(s), nil
	default:
		return "", fmt.Errorf("unknown engine: %q", s)
	}
}

func (id EngineID) String() string { return string(id) }

// Engine turns a captured receipt image into candidate items. Adding an
// engine means adding an implementation and registering it; the
// coordinator's control flow never changes.
type Engine interface {
	Extract(ctx context.Context, image []byte) (*Result, error)
}
