package driver

import (
	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/checkpoint"
	"github.com/namada-testnet/score-extractor/internal/classifier"
	"github.com/namada-testnet/score-extractor/internal/config"
	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/nontx"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

// progressLogInterval mirrors transactions.rs's "logs progress every 15
// txs" cadence.
const progressLogInterval = 15

// ingestTasks is phase one of a pass (spec.md §2, §4.1, §4.2): advance
// the height window, classify every transaction in range, copy manual
// tasks, and evaluate the non-transactional pilot tasks.
func ingestTasks(tx *gorm.DB, cx *config.Context) (int64, error) {
	window, ok, err := checkpoint.Compute(tx)
	if err != nil {
		return 0, err
	}
	if !ok {
		logger.Debug("no new heights to process")
		if err := classifier.CopyManualTasks(tx); err != nil {
			return 0, err
		}
		return 0, nontx.Evaluate(tx, cx)
	}

	var blocks []schema.Block
	err = tx.Where("height BETWEEN ? AND ?", window.Starting, window.Ending).Order("height ASC").Find(&blocks).Error
	if err != nil {
		return 0, corerr.Wrap(corerr.ClassTransientInfra, err, "list blocks in window")
	}

	blockIDs := make([]int64, len(blocks))
	for i, b := range blocks {
		blockIDs[i] = b.ID
	}

	var transactions []schema.Transaction
	if len(blockIDs) > 0 {
		err = tx.Where("block_id IN (?)", blockIDs).Order("id ASC").Find(&transactions).Error
		if err != nil {
			return 0, corerr.Wrap(corerr.ClassTransientInfra, err, "list transactions in window")
		}
	}

	for i, txn := range transactions {
		if err := classifyOne(tx, cx, txn); err != nil {
			return 0, err
		}
		if (i+1)%progressLogInterval == 0 {
			logger.Info("ingest progress", "processed", i+1, "total", len(transactions))
		}
	}

	if err := classifier.CopyManualTasks(tx); err != nil {
		return 0, err
	}
	if err := nontx.Evaluate(tx, cx); err != nil {
		return 0, err
	}
	if err := checkpoint.Advance(tx, window.Ending); err != nil {
		return 0, err
	}
	return window.Ending - window.Starting + 1, nil
}

// classifyOne classifies and persists a single transaction, downgrading
// a per-transaction deserialization/logic error (spec.md §7) to a
// logged skip instead of failing the whole phase.
func classifyOne(tx *gorm.DB, cx *config.Context, txn schema.Transaction) error {
	outcome, err := classifier.Classify(tx, cx, txn)
	if err != nil {
		if corerr.Skip(err) {
			logger.Warn("skipping transaction", "tx_id", txn.ID, "err", err)
			return nil
		}
		return err
	}
	return classifier.Persist(tx, outcome)
}
