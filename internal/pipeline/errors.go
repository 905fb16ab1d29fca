package pipeline

import "errors"

// Extraction failures an engine can report. Engines wrap these with
// fmt.Errorf("...: %w: %v", sentinel, cause) so callers classify with
// errors.Is while the raw cause stays in the message for the log.
var (
	// ErrMissingCredentials means a configuration gap: no API key or base
	// URL. Raised before any network call is attempted.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrTransport means the network call failed or returned a non-success
	// status.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse means the response body did not match the wire
	// contract (for example, not valid JSON after fence stripping).
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoItems means a well-formed response with an empty or absent
	// items array.
	ErrNoItems = errors.New("no items extracted")
)

// FailureKind is the user-facing classification of a failed extraction.
type FailureKind string

const (
	FailureMissingCredentials FailureKind = "missing-credentials"
	FailureNetworkOrParse     FailureKind = "network/parse-error"
	FailureNoItems            FailureKind = "no-items-found"
)

// ClassifyFailure buckets an extraction error. Transport and malformed
// response failures share a bucket; so does any unstructured engine error.
func ClassifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return FailureMissingCredentials
	case errors.Is(err, ErrNoItems):
		return FailureNoItems
	default:
		return FailureNetworkOrParse
	}
}

// Hint returns a short contextual hint for the user, keyed by engine and
// failure kind. All failures are recoverable by re-scan; the hint says
// what to fix first.
func Hint(engine EngineID, kind FailureKind) string {
	switch kind {
	case FailureMissingCredentials:
		switch engine {
		case EngineCloudVision:
			return "設定で Gemini API キーを入力してください"
		case EngineLocalLLM:
			return "設定でローカルLLMサーバーのURLを入力してください"
		}
	case FailureNetworkOrParse:
		if engine == EngineLocalLLM {
			return "ローカルLLMサーバーが起動しているか、CORS設定を確認してください"
		}
		return "ネットワーク接続を確認して、もう一度スキャンしてください"
	case FailureNoItems:
		return "項目を認識できませんでした。もう一度スキャンするか、手動で入力してください"
	}
	return ""
}
