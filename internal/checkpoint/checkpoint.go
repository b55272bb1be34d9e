// Package checkpoint computes the block-height window each ingestion
// pass should process and records progress, mirroring last_state.rs's
// compute_task_heights_to_process / update_last_processed_tasks_block.
package checkpoint

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
	"github.com/namada-testnet/score-extractor/internal/metrics"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

var logger = log.NewModuleLogger(log.ModuleCheckpoint)

// MaxHeightsPerPass caps the ingestion window to bound transaction size
// (spec.md §5: "caps each pass at 1000 block heights").
const MaxHeightsPerPass = 1000

// Window is an inclusive block-height range to process this pass.
type Window struct {
	Starting int64
	Ending   int64
}

// Compute returns the window to process, or ok=false if the crawler has
// not advanced past what was already processed.
func Compute(tx *gorm.DB) (Window, bool, error) {
	var state schema.TaskCompletionState
	err := tx.Where("id = 0").First(&state).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return Window{}, false, corerr.Wrap(corerr.ClassTransientInfra, err, "read task completion state")
	}
	ourHeight := state.LastProcessedHeight // zero value when no row exists yet

	var crawlerHeight int64
	row := tx.Table("crawler_state").Select("COALESCE(MAX(height), 0)").Row()
	if err := row.Scan(&crawlerHeight); err != nil {
		return Window{}, false, corerr.Wrap(corerr.ClassTransientInfra, err, "read crawler state")
	}

	return computeWindow(ourHeight, crawlerHeight)
}

// computeWindow is the pure height-arithmetic core of Compute, split out
// for testability.
func computeWindow(ourHeight, crawlerHeight int64) (Window, bool, error) {
	// crawlerHeight below ourHeight means the indexer was reset; the
	// checkpoint never moves backward, we just wait for it to catch up.
	if crawlerHeight <= ourHeight {
		return Window{}, false, nil
	}
	ending := crawlerHeight
	if ending-ourHeight > MaxHeightsPerPass {
		ending = ourHeight + MaxHeightsPerPass
	}
	return Window{Starting: ourHeight + 1, Ending: ending}, true, nil
}

// Advance upserts task_completion_state's single row (id=0), matching
// last_state.rs's ON CONFLICT(id) DO UPDATE.
func Advance(tx *gorm.DB, processedThrough int64) error {
	err := tx.Exec(
		`INSERT INTO task_completion_state (id, last_processed_height, last_processed_time)
		 VALUES (0, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET last_processed_height = excluded.last_processed_height,
		                                 last_processed_time = excluded.last_processed_time`,
		processedThrough, time.Now().UTC(),
	).Error
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "advance task completion state")
	}
	metrics.CheckpointGauge.Update(processedThrough)
	logger.Debug("checkpoint advanced", "height", processedThrough)
	return nil
}
