package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"kakeibo/internal/archive"
	"kakeibo/internal/config"
	"kakeibo/internal/logger"
	"kakeibo/internal/pipeline"
)

type scanCmd struct {
	image  string
	engine string
	commit bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "extract items from a receipt image" }
func (*scanCmd) Usage() string {
	return `kakeibo scan -image <path> [-engine local-ocr|cloud-vision|local-llm] [-commit]

  Runs the configured extraction engine over the receipt image, prints the
  progress log and the staged items, and with -commit records every item
  with a positive price as an expense dated today.
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.image, "image", "", "Path to the receipt image.")
	f.StringVar(&c.engine, "engine", "", "Extraction engine. Defaults to KAKEIBO_ENGINE.")
	f.BoolVar(&c.commit, "commit", false, "Commit the staged items after extraction.")
}

func (c *scanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.image == "" {
		return fail(fmt.Errorf("scan: -image is required"))
	}

	cfg := config.Load()
	log := logger.FromContext(ctx)

	image, err := os.ReadFile(c.image)
	if err != nil {
		return fail(fmt.Errorf("scan: %w", err))
	}

	engineName := c.engine
	if engineName == "" {
		engineName = cfg.Engine
	}
	engineID, err := pipeline.ParseEngineID(engineName)
	if err != nil {
		return fail(fmt.Errorf("scan: %w", err))
	}

	coordinator := pipeline.NewCoordinator(log)
	coordinator.Register(pipeline.EngineLocalOCR, pipeline.NewLocalOCREngine())
	coordinator.Register(pipeline.EngineCloudVision, pipeline.NewCloudVisionEngine(cfg.GeminiAPIKey, cfg.GeminiModel))
	coordinator.Register(pipeline.EngineLocalLLM, pipeline.NewLocalLLMEngine(cfg.LocalLLMBaseURL, cfg.LocalLLMModel))
	if cfg.ArchiveBucket != "" {
		coordinator.SetArchiver(archive.NewGCSArchiver(cfg.ArchiveBucket))
	}

	runner := pipeline.NewRunner(coordinator)
	runner.Start(ctx)

	session := pipeline.NewSession()
	done := make(chan error, 1)
	if err := runner.Submit(ctx, session, engineID, image, func(err error) { done <- err }); err != nil {
		return fail(fmt.Errorf("scan: %w", err))
	}
	scanErr := <-done

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := runner.Stop(stopCtx); err != nil {
		log.Warn().Err(err).Msg("runner did not stop cleanly")
	}

	for _, line := range session.Log() {
		fmt.Println(line)
	}
	if scanErr != nil {
		return subcommands.ExitFailure
	}

	fmt.Println()
	for _, item := range session.Items() {
		fmt.Printf("%s  %s %s  %s\n", item.ID, item.Category.Emoji(), item.Name, yen(float64(item.Price)))
	}

	if !c.commit {
		return subcommands.ExitSuccess
	}

	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	accepted, err := pipeline.Commit(ctx, session, store)
	if err != nil {
		return fail(fmt.Errorf("scan: %w", err))
	}
	fmt.Printf("\n%d件を記録しました\n", accepted)
	return subcommands.ExitSuccess
}
