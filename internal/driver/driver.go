// Package driver schedules and runs scoring passes (spec.md §2, §5):
// a ticker loop with exactly one pass in flight, each pass running its
// three phases (ingestion, scoring, ranking) in its own database
// transaction with rollback-and-continue error isolation (spec.md §7).
package driver

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/config"
	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/db"
	"github.com/namada-testnet/score-extractor/internal/log"
	"github.com/namada-testnet/score-extractor/internal/metrics"
	"github.com/namada-testnet/score-extractor/internal/ranker"
	"github.com/namada-testnet/score-extractor/internal/scorer"
)

var logger = log.NewModuleLogger(log.ModuleDriver)

// Run re-arms a ticker at cx.SleepDuration and runs one pass per tick,
// awaiting each pass to completion before the next, until ctx is
// cancelled (spec.md §5: "the driver awaits each pass to completion
// before re-arming the interval timer").
func Run(ctx context.Context, cx *config.Context) {
	ticker := time.NewTicker(cx.SleepDuration)
	defer ticker.Stop()

	runPass(ctx, cx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutdown signal received, exiting after current pass")
			return
		case <-ticker.C:
			runPass(ctx, cx)
		}
	}
}

// runPass runs the three phases in order; each is isolated in its own
// transaction, and a phase's failure never aborts the process — it is
// logged and the driver proceeds to the next phase or pass (spec.md §7).
func runPass(ctx context.Context, cx *config.Context) {
	start := time.Now()
	logger.Info("starting pass")

	ok := true
	if err := runPhase(cx.DB, "ingest", func(tx *gorm.DB) error {
		heights, err := ingestTasks(tx, cx)
		if err == nil {
			metrics.HeightsProcessedGauge.Update(heights)
		}
		return err
	}); err != nil {
		ok = false
	}

	if err := runPhase(cx.DB, "score", func(tx *gorm.DB) error {
		return scorer.RecomputeAll(tx)
	}); err != nil {
		ok = false
	}

	if err := runPhase(cx.DB, "rank", func(tx *gorm.DB) error {
		return ranker.RecomputeAll(tx)
	}); err != nil {
		ok = false
	}

	metrics.PassDurationGauge.Update(time.Since(start).Milliseconds())
	if ok {
		metrics.PassSuccessCounter.Inc(1)
	}
	logger.Info("pass complete", "duration", time.Since(start), "ok", ok)
}

func runPhase(conn *gorm.DB, name string, fn func(tx *gorm.DB) error) error {
	err := db.WithTx(conn, fn)
	if err != nil {
		metrics.PassFailureCounter.Inc(1)
		if class, known := corerr.ClassOf(err); known {
			logger.Error("phase failed, rolled back", "phase", name, "class", class, "err", err)
		} else {
			logger.Error("phase failed, rolled back", "phase", name, "err", err)
		}
	}
	return err
}
