// Package nontx evaluates the three non-transactional pilot tasks
// (spec.md §4.2): predicates over the commit/block/tm_addresses tables
// rather than over any single transaction.
package nontx

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/config"
	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

var logger = log.NewModuleLogger(log.ModuleNonTx)

// Evaluate runs all three predicates for every eligible pilot, inserting
// the task for each one whose predicate holds.
func Evaluate(tx *gorm.DB, cx *config.Context) error {
	genesis, err := resolveGenesisTime(tx, cx)
	if err != nil {
		return err
	}

	upgradeHeight, haveUpgradeHeight, err := firstHeightOfEpoch(tx, cx.Epochs.V1ToV2)
	if err != nil {
		return err
	}

	pilots, err := eligiblePilots(tx)
	if err != nil {
		return err
	}

	for _, pilot := range pilots {
		if pilot.NamadaValidatorAddress == nil {
			continue
		}
		if genesis != nil {
			if err := evaluateOne(tx, pilot, schema.TaskStartNode5MinFromGenesis, func() (bool, error) {
				return signedBeforeDeadline(tx, *pilot.NamadaValidatorAddress, genesis.Add(5*time.Minute))
			}); err != nil {
				return err
			}
		}
		if haveUpgradeHeight {
			if err := evaluateOne(tx, pilot, schema.TaskSignFirstBlockOfUpgradeToV2, func() (bool, error) {
				return signedBlock(tx, *pilot.NamadaValidatorAddress, upgradeHeight)
			}); err != nil {
				return err
			}
		}
		if err := evaluateOne(tx, pilot, schema.TaskInValidatorSetFor1Epoch, func() (bool, error) {
			return signedAnyBlock(tx, *pilot.NamadaValidatorAddress)
		}); err != nil {
			return err
		}
	}
	return nil
}

// eligiblePilots returns not-banned pilots with score > 0, mirroring
// players.rs's process_all_pilots_with_incomplete_tasks filter minus the
// per-task "does not already hold it" clause (checked per-task below).
func eligiblePilots(tx *gorm.DB) ([]schema.Player, error) {
	var pilots []schema.Player
	err := tx.Where("kind = ? AND score > 0 AND is_banned IS NOT TRUE", schema.PlayerKindPilot).Find(&pilots).Error
	if err != nil {
		return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "list eligible pilots")
	}
	return pilots, nil
}

func evaluateOne(tx *gorm.DB, pilot schema.Player, task schema.TaskType, predicate func() (bool, error)) error {
	var count int
	err := tx.Model(&schema.Task{}).Where("player_id = ? AND task = ?", pilot.ID, task).Count(&count).Error
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "check existing task")
	}
	if count > 0 {
		return nil
	}

	ok, err := predicate()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	err = tx.Exec(
		`INSERT INTO tasks (task, player_id) VALUES (?, ?) ON CONFLICT (player_id, task) DO NOTHING`,
		task, pilot.ID,
	).Error
	if err != nil {
		return corerr.Wrap(corerr.ClassDataIntegrity, err, "insert non-tx task")
	}
	logger.Debug("non-tx task completed", "player_id", pilot.ID, "task", task)
	return nil
}

// resolveGenesisTime uses the CLI flag if set, else falls back to
// blocks.included_at where height = 1 (returns nil, nil if no block 1
// has been indexed yet).
func resolveGenesisTime(tx *gorm.DB, cx *config.Context) (*time.Time, error) {
	if cx.GenesisTime != nil {
		return cx.GenesisTime, nil
	}
	var block schema.Block
	err := tx.Where("height = 1").First(&block).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "lookup genesis block")
	}
	return &block.IncludedAt, nil
}

func firstHeightOfEpoch(tx *gorm.DB, epoch int64) (int64, bool, error) {
	var height int64
	row := tx.Table("blocks").Where("epoch = ?", epoch).Select("COALESCE(MIN(height), 0)").Row()
	if err := row.Scan(&height); err != nil {
		return 0, false, corerr.Wrap(corerr.ClassTransientInfra, err, "lookup first height of epoch")
	}
	return height, height > 0, nil
}

// signedBeforeDeadline reports whether validatorAddr signed any block
// included at or before deadline. A tm_addresses row from any epoch
// counts: the mapping is written per validator-set change, not per
// signed block.
func signedBeforeDeadline(tx *gorm.DB, validatorAddr string, deadline time.Time) (bool, error) {
	var count int
	err := tx.Table("commits").
		Joins("JOIN blocks ON blocks.id = commits.block_id").
		Joins("JOIN tm_addresses ON tm_addresses.tm_address = commits.address").
		Where("tm_addresses.validator_namada_address = ? AND blocks.included_at <= ?", validatorAddr, deadline).
		Count(&count).Error
	if err != nil {
		return false, corerr.Wrap(corerr.ClassTransientInfra, err, "check signed-before-deadline")
	}
	return count > 0, nil
}

func signedBlock(tx *gorm.DB, validatorAddr string, height int64) (bool, error) {
	var count int
	err := tx.Table("commits").
		Joins("JOIN blocks ON blocks.id = commits.block_id").
		Joins("JOIN tm_addresses ON tm_addresses.tm_address = commits.address").
		Where("tm_addresses.validator_namada_address = ? AND blocks.height = ?", validatorAddr, height).
		Count(&count).Error
	if err != nil {
		return false, corerr.Wrap(corerr.ClassTransientInfra, err, "check signed-block")
	}
	return count > 0, nil
}

func signedAnyBlock(tx *gorm.DB, validatorAddr string) (bool, error) {
	var count int
	err := tx.Table("commits").
		Joins("JOIN tm_addresses ON tm_addresses.tm_address = commits.address").
		Where("tm_addresses.validator_namada_address = ?", validatorAddr).
		Count(&count).Error
	if err != nil {
		return false, corerr.Wrap(corerr.ClassTransientInfra, err, "check signed-any-block")
	}
	return count > 0, nil
}
