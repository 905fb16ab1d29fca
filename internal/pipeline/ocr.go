package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TextRecognizer runs a generic OCR pass over a captured image and returns
// the raw multi-line text.
type TextRecognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// TesseractRecognizer is the default TextRecognizer backed by a local
// tesseract installation.
type TesseractRecognizer struct {
	// Languages passed to tesseract, e.g. "jpn", "eng".
	Languages []string
}

// NewTesseractRecognizer creates a recognizer for Japanese and English
// receipts.
func NewTesseractRecognizer() *TesseractRecognizer {
	return &TesseractRecognizer{Languages: []string{"jpn", "eng"}}
}

// Recognize runs tesseract over the image bytes.
func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if len(r.Languages) > 0 {
		if err := client.SetLanguage(r.Languages...); err != nil {
			return "", fmt.Errorf("tesseract: set language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("tesseract: set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: recognize: %w", err)
	}
	return text, nil
}

// LocalOCREngine extracts candidate items by OCR plus a price-line
// heuristic. OCR misses items routinely, so an empty parse is not an
// error: the engine synthesizes one blank editable row instead.
type LocalOCREngine struct {
	Recognizer TextRecognizer
}

// NewLocalOCREngine creates the engine with the default tesseract
// recognizer.
func NewLocalOCREngine() *LocalOCREngine {
	return &LocalOCREngine{Recognizer: NewTesseractRecognizer()}
}

// Extract implements the Engine interface.
func (e *LocalOCREngine) Extract(ctx context.Context, image []byte) (*Result, error) {
	text, err := e.Recognizer.Recognize(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("local-ocr: %w: %v", ErrTransport, err)
	}

	items := parsePriceLines(text)
	if len(items) == 0 {
		items = []Item{{Name: "", Price: 0, Category: defaultItemCategory}}
	}
	return &Result{Items: items}, nil
}

// priceLineRe matches a trailing price: an optional currency symbol,
// digits possibly containing thousands separators, an optional 円 suffix,
// anchored at line end. Digit count is checked after separator stripping.
var priceLineRe = regexp.MustCompile(`(?:[¥￥]\s*)?(\d[\d,，]*\d)\s*円?\s*$`)

const unknownItemName = "unknown item"

// parsePriceLines applies the trailing-price heuristic to each OCR line.
// Lines without a qualifying match are discarded; false negatives and
// false positives are reconciled by the user during review. Never emits
// an item with price <= 0.
func parsePriceLines(text string) []Item {
	var items []Item

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		loc := priceLineRe.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		digits := line[loc[2]:loc[3]]
		digits = strings.NewReplacer(",", "", "，", "").Replace(digits)
		if len(digits) < 2 || len(digits) > 10 {
			continue
		}

		price, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || price <= 0 {
			continue
		}

		name := strings.TrimSpace(line[:loc[0]])
		if name == "" {
			name = unknownItemName
		}

		items = append(items, Item{
			Name:     name,
			Price:    price,
			Category: defaultItemCategory,
		})
	}
	return items
}
