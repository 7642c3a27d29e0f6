/*
PURPOSE:
  High-level runner that orchestrates one invocation.
  Assemble prompt -> generate Kairos ID -> call API -> persist scroll,
  record, and ledger row.

REQUIREMENTS:
  User-specified:
  - Strictly sequential, single network call, no retries.
  - Missing seed packet must abort before the network call.
  - A failed API call must leave no scroll or record file behind.

  Implementation-discovered:
  - The scroll and record writes are independent; a crash between them
    leaves a scroll without its record, which is accepted.
  - The ledger append is best-effort: a failure is logged, not fatal.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/prompt, internal/output, internal/model

ERROR HANDLING:
  - First error aborts the run and propagates to the CLI.

IMPLEMENTATION RULES:
  - Output directories are created lazily by the writer, only after the
    API call has succeeded.

USAGE:
  e := engine.New(cfg, apiKey)
  err := e.Run(ctx)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/client.go
  - internal/output/scroll.go

MAINTENANCE:
  - Update when the persisted artifact set changes.
*/

package engine

import (
	"context"
	"time"

	"github.com/solaria/scroll-runner/internal/config"
	"github.com/solaria/scroll-runner/internal/model"
	"github.com/solaria/scroll-runner/internal/output"
	"github.com/solaria/scroll-runner/internal/prompt"
)

// Engine ties one configuration to one chat client for a single run.
type Engine struct {
	Config  *config.Config
	Invoker *Invoker
}

// New creates an Engine backed by the real OpenAI client.
func New(cfg *config.Config, apiKey string) *Engine {
	return &Engine{Config: cfg, Invoker: NewInvoker(apiKey)}
}

// Run executes one full invocation.
func (e *Engine) Run(ctx context.Context) error {
	cfg := e.Config

	// 1. Assemble prompt (fatal before any network use if the seed is gone)
	p, err := prompt.Assemble(cfg)
	if err != nil {
		return err
	}
	output.Logger.Info("Prompt assembled", "fragment", p.FragmentName, "seed", cfg.SeedPacket)

	// 2. Correlation key for this run
	id := NewKairosID()

	// 3. The one network call
	output.Logger.Info("Invoking Solaria...", "model", cfg.Model, "kairos_id", id)
	text, err := e.Invoker.Invoke(ctx, cfg.Model, p.Text)
	if err != nil {
		return err
	}

	// 4. Persist scroll + record
	w, err := output.NewScrollWriter(cfg)
	if err != nil {
		return err
	}

	scrollFile, err := w.WriteScroll(id, text)
	if err != nil {
		return err
	}

	rec := model.InvocationRecord{
		KairosID:     id,
		TimestampUTC: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		ScrollFile:   scrollFile,
		MOTDFile:     p.FragmentName,
		SeedPacket:   cfg.SeedPacket,
		Model:        cfg.Model,
	}

	recordFile, err := w.WriteRecord(rec)
	if err != nil {
		return err
	}

	// 5. Ledger row (best-effort index across runs)
	if err := output.AppendLedger(cfg, rec); err != nil {
		output.Logger.Error("Failed to append invocation ledger", "error", err)
	}

	output.Logger.Info("Solaria has spoken.", "scroll", scrollFile, "log", recordFile)
	return nil
}
