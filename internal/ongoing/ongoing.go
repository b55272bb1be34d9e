// Package ongoing evaluates the two threshold-based pilot tasks that are
// not tied to any single transaction (spec.md §4.3): governance
// participation rate and validator uptime. Their assignments are fed to
// the scorer directly rather than persisted, since the thresholds (and
// therefore the assignment) can change from pass to pass.
package ongoing

import (
	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

var logger = log.NewModuleLogger(log.ModuleOngoing)

// TotalBlocks is the fixed chain-final block height uptime is measured
// against (spec.md §9, §4.3).
const TotalBlocks = 355_326

// Assignment is a synthetic task credit the scorer should treat exactly
// like a row from the identified-task ledger.
type Assignment struct {
	PlayerID string
	Task     schema.TaskType
}

// EvaluateGovernance computes the (intentionally non-distinct, see
// spec.md §9) participation rate for every non-banned pilot.
func EvaluateGovernance(tx *gorm.DB) ([]Assignment, error) {
	var proposalCount int
	if err := tx.Model(&schema.GovernanceProposal{}).Count(&proposalCount).Error; err != nil {
		return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "count governance proposals")
	}
	if proposalCount == 0 {
		return nil, nil
	}

	var pilots []schema.Player
	err := tx.Where("kind = ? AND is_banned IS NOT TRUE", schema.PlayerKindPilot).Find(&pilots).Error
	if err != nil {
		return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "list pilots for governance evaluation")
	}

	var assignments []Assignment
	for _, pilot := range pilots {
		var voteCount int
		// Counts raw vote rows, not distinct proposals — preserved as-is
		// per the documented open question (spec.md §9): a player voting
		// twice on one proposal inflates their own rate above what a
		// distinct-proposal count would give.
		err := tx.Model(&schema.GovernanceVote{}).Where("player_id = ?", pilot.ID).Count(&voteCount).Error
		if err != nil {
			return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "count governance votes")
		}
		rate := float64(voteCount) / float64(proposalCount)
		for _, task := range governanceTasksFor(rate) {
			assignments = append(assignments, Assignment{PlayerID: pilot.ID, Task: task})
		}
	}
	logger.Debug("governance participation evaluated", "pilots", len(pilots), "assignments", len(assignments))
	return assignments, nil
}

// EvaluateUptime computes validator uptime for pilots that both have a
// validator address and were part of the pre-reset nonzero-score
// snapshot (spec.md §4.3: "as measured at the start of the scoring
// pass"), passed in as snapshotPlayerIDs.
func EvaluateUptime(tx *gorm.DB, snapshotPlayerIDs map[string]bool) ([]Assignment, error) {
	var pilots []schema.Player
	err := tx.Where("kind = ? AND is_banned IS NOT TRUE AND namada_validator_address IS NOT NULL", schema.PlayerKindPilot).
		Find(&pilots).Error
	if err != nil {
		return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "list pilots for uptime evaluation")
	}

	var assignments []Assignment
	for _, pilot := range pilots {
		if !snapshotPlayerIDs[pilot.ID] {
			continue
		}
		var signed int
		err := tx.Table("commits").
			Joins("JOIN tm_addresses ON tm_addresses.tm_address = commits.address").
			Where("tm_addresses.validator_namada_address = ?", *pilot.NamadaValidatorAddress).
			Count(&signed).Error
		if err != nil {
			return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "count signed blocks")
		}
		rate := float64(signed) / float64(TotalBlocks)
		for _, task := range uptimeTasksFor(rate) {
			assignments = append(assignments, Assignment{PlayerID: pilot.ID, Task: task})
		}
	}
	logger.Debug("uptime evaluated", "candidates", len(pilots), "assignments", len(assignments))
	return assignments, nil
}

// governanceTasksFor maps a participation rate onto the threshold tasks
// it earns; a rate of 0.99 or more earns both tiers.
func governanceTasksFor(rate float64) []schema.TaskType {
	var tasks []schema.TaskType
	if rate >= 0.90 {
		tasks = append(tasks, schema.TaskKeep90PerCentGovParticipationRate)
	}
	if rate >= 0.99 {
		tasks = append(tasks, schema.TaskKeep99PerCentGovParticipationRate)
	}
	return tasks
}

// uptimeTasksFor maps an uptime rate onto its threshold tasks.
func uptimeTasksFor(rate float64) []schema.TaskType {
	var tasks []schema.TaskType
	if rate >= 0.95 {
		tasks = append(tasks, schema.TaskKeep95PerCentUptime)
	}
	if rate >= 0.99 {
		tasks = append(tasks, schema.TaskKeep99PerCentUptime)
	}
	return tasks
}

// NonzeroScorePilotIDs snapshots the pilots with a positive score,
// intended to be called before ResetScores in the scorer so uptime
// eligibility reflects the pre-pass state (spec.md §4.3).
func NonzeroScorePilotIDs(tx *gorm.DB) (map[string]bool, error) {
	var pilots []schema.Player
	err := tx.Select("id").Where("kind = ? AND score > 0", schema.PlayerKindPilot).Find(&pilots).Error
	if err != nil {
		return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "snapshot nonzero-score pilots")
	}
	ids := make(map[string]bool, len(pilots))
	for _, p := range pilots {
		ids[p.ID] = true
	}
	return ids, nil
}
