package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Default values used when the environment does not override them.
const (
	// DefaultEngine is the extraction engine used when KAKEIBO_ENGINE is unset.
	DefaultEngine = "local-ocr"

	// DefaultGeminiModel is the Gemini model used by the cloud-vision engine.
	DefaultGeminiModel = "gemini-2.5-flash"

	// DefaultLocalModel is the model name sent to a locally hosted LLM server.
	DefaultLocalModel = "llava"

	// DefaultDBPath is the sqlite file holding the ledger.
	DefaultDBPath = "kakeibo.db"
)

// Config carries everything the application reads from the environment.
// The pipeline itself never consults the environment; values are passed in.
type Config struct {
	// Engine selects the extraction engine: local-ocr, cloud-vision or local-llm.
	Engine string

	// GeminiAPIKey authenticates the cloud-vision engine. Empty means the
	// engine fails with a missing-credentials error before any network call.
	GeminiAPIKey string

	// GeminiModel is the Gemini model name for the cloud-vision engine.
	GeminiModel string

	// LocalLLMBaseURL is the base URL of an OpenAI-compatible local server,
	// e.g. "http://localhost:11434/v1".
	LocalLLMBaseURL string

	// LocalLLMModel is the model name sent to the local server.
	LocalLLMModel string

	// DBPath is the sqlite database file for the ledger store.
	DBPath string

	// ArchiveBucket, when set, is the GCS bucket captured receipt images
	// are archived to after extraction.
	ArchiveBucket string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present and silently skipped otherwise.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Engine:          getenv("KAKEIBO_ENGINE", DefaultEngine),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getenv("GEMINI_MODEL", DefaultGeminiModel),
		LocalLLMBaseURL: os.Getenv("LOCAL_LLM_BASE_URL"),
		LocalLLMModel:   getenv("LOCAL_LLM_MODEL", DefaultLocalModel),
		DBPath:          getenv("KAKEIBO_DB", DefaultDBPath),
		ArchiveBucket:   os.Getenv("RECEIPT_ARCHIVE_BUCKET"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
