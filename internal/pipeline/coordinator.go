package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"kakeibo/internal/archive"
)

// Coordinator dispatches a capture to the configured engine, normalizes
// the outcome and narrates progress into the session log. It never writes
// to the ledger store; that is the commit step's job.
type Coordinator struct {
	engines  map[EngineID]Engine
	archiver archive.Archiver
	log      zerolog.Logger
}

// NewCoordinator creates a coordinator with no engines registered.
func NewCoordinator(log zerolog.Logger) *Coordinator {
	return &Coordinator{
		engines: make(map[EngineID]Engine),
		log:     log,
	}
}

// Register adds an engine variant to the registry.
func (c *Coordinator) Register(id EngineID, e Engine) {
	c.engines[id] = e
}

// SetArchiver enables best-effort archiving of captured images after a
// successful extraction.
func (c *Coordinator) SetArchiver(a archive.Archiver) {
	c.archiver = a
}

// Extract runs one extraction for the given capture generation and stages
// the resulting items. The generation comes from Session.Begin, called on
// the capture press; a result whose generation has been superseded is
// discarded. All failures are recoverable by re-scan: the error is logged
// into the session with a contextual hint and returned.
func (c *Coordinator) Extract(ctx context.Context, session *Session, generation uint64, engineID EngineID, image []byte) error {
	session.Logf("レシート画像を解析中...")

	engine, ok := c.engines[engineID]
	if !ok {
		err := fmt.Errorf("extract: no engine registered for %q", engineID)
		session.Logf("解析に失敗しました: %v", err)
		return err
	}

	session.Logf("文字領域を特定...")
	c.log.Info().
		Str("engine", engineID.String()).
		Uint64("generation", generation).
		Int("image_bytes", len(image)).
		Msg("extraction started")

	res, err := engine.Extract(ctx, image)
	if err != nil {
		kind := ClassifyFailure(err)
		session.Logf("解析に失敗しました: %v", err)
		if hint := Hint(engineID, kind); hint != "" {
			session.Logf("%s", hint)
		}
		c.log.Error().
			Err(err).
			Str("engine", engineID.String()).
			Str("kind", string(kind)).
			Msg("extraction failed")
		return err
	}

	if res.StoreName != "" {
		session.Logf("店舗名を認識: %s", res.StoreName)
	}
	session.Logf("各項目の金額を紐付け...")

	if !session.ApplyResult(generation, res) {
		c.log.Warn().
			Uint64("generation", generation).
			Uint64("current", session.Generation()).
			Msg("discarding stale extraction result")
		return nil
	}

	session.Logf("%d件の項目を認識しました", len(res.Items))
	session.Logf("解析が完了しました。")
	c.log.Info().
		Str("engine", engineID.String()).
		Int("items", len(res.Items)).
		Float64("total_amount", res.TotalAmount).
		Msg("extraction completed")

	c.archiveCapture(ctx, image)
	return nil
}

// archiveCapture retains the raw capture when an archiver is configured.
// Failures are logged and otherwise ignored.
func (c *Coordinator) archiveCapture(ctx context.Context, image []byte) {
	if c.archiver == nil {
		return
	}
	uri, err := c.archiver.ArchiveCapture(ctx, image)
	if err != nil {
		c.log.Warn().Err(err).Msg("capture archive failed")
		return
	}
	c.log.Info().Str("uri", uri).Msg("capture archived")
}
