// Package scorer recomputes every player's score from scratch each pass
// (spec.md §4.4): the identified-task ledger, the unidentified-task
// ledger, and the synthetic ongoing-task assignments are all replayed
// through the same pool-prize share computation.
package scorer

import (
	"math"

	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
	"github.com/namada-testnet/score-extractor/internal/metrics"
	"github.com/namada-testnet/score-extractor/internal/ongoing"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

var logger = log.NewModuleLogger(log.ModuleScorer)

type taskKey struct {
	task schema.TaskType
	kind schema.PlayerKind
}

type txKindKey struct {
	kind       schema.TransactionKind
	playerKind schema.PlayerKind
}

// RecomputeAll implements the whole of §4.4: snapshot the pilots needed
// for uptime eligibility, zero every score, then replay the identified
// ledger, the unidentified ledger, and the ongoing-task evaluators.
func RecomputeAll(tx *gorm.DB) error {
	snapshot, err := ongoing.NonzeroScorePilotIDs(tx)
	if err != nil {
		return err
	}

	if err := resetScores(tx); err != nil {
		return err
	}

	if err := recomputeIdentifiedTasks(tx); err != nil {
		return err
	}
	if err := recomputeUnidentifiedTasks(tx); err != nil {
		return err
	}
	if err := recomputeGovernanceTasks(tx); err != nil {
		return err
	}
	if err := recomputeUptimeTasks(tx, snapshot); err != nil {
		return err
	}

	var scored int
	if err := tx.Model(&schema.Player{}).Where("score > 0").Count(&scored).Error; err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "count scored players")
	}
	metrics.PlayersScoredGauge.Update(int64(scored))
	logger.Info("scores recomputed", "players_scored", scored)
	return nil
}

func resetScores(tx *gorm.DB) error {
	if err := tx.Exec(`UPDATE players SET score = 0`).Error; err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "reset player scores")
	}
	return nil
}

// completionRow is the minimal projection needed to price a ledger row.
type completionRow struct {
	PlayerID string
	Kind     schema.PlayerKind
}

func recomputeIdentifiedTasks(tx *gorm.DB) error {
	rows, err := tx.Table("tasks").
		Select("tasks.task, tasks.player_id, players.kind").
		Joins("JOIN players ON players.id = tasks.player_id").
		Where("players.is_banned IS NOT TRUE").
		Rows()
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "scan identified tasks")
	}
	defer rows.Close()

	counts := make(map[taskKey]int)
	type pending struct {
		task     schema.TaskType
		playerID string
		kind     schema.PlayerKind
	}
	var pendings []pending
	for rows.Next() {
		var task schema.TaskType
		var playerID string
		var kind schema.PlayerKind
		if err := rows.Scan(&task, &playerID, &kind); err != nil {
			return corerr.Wrap(corerr.ClassTransientInfra, err, "scan identified task row")
		}
		counts[taskKey{task: task, kind: kind}]++
		pendings = append(pendings, pending{task: task, playerID: playerID, kind: kind})
	}

	for _, p := range pendings {
		pl, ok := poolFor(p.kind, p.task)
		if !ok {
			continue
		}
		n := counts[taskKey{task: p.task, kind: p.kind}]
		if pl.mode == fixedShare {
			n = populationOf(p.kind)
		}
		if err := assignShare(tx, p.playerID, shareOf(pl, n)); err != nil {
			return err
		}
	}
	return nil
}

func recomputeUnidentifiedTasks(tx *gorm.DB) error {
	rows, err := tx.Table("unidentified_tasks").
		Select("unidentified_tasks.tx_kind, unidentified_tasks.player_id, players.kind").
		Joins("JOIN players ON players.id = unidentified_tasks.player_id").
		Where("players.is_banned IS NOT TRUE").
		Rows()
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "scan unidentified tasks")
	}
	defer rows.Close()

	counts := make(map[txKindKey]int)
	type pending struct {
		txKind   schema.TransactionKind
		playerID string
		kind     schema.PlayerKind
	}
	var pendings []pending
	for rows.Next() {
		var txKind schema.TransactionKind
		var playerID string
		var kind schema.PlayerKind
		if err := rows.Scan(&txKind, &playerID, &kind); err != nil {
			return corerr.Wrap(corerr.ClassTransientInfra, err, "scan unidentified task row")
		}
		counts[txKindKey{kind: txKind, playerKind: kind}]++
		pendings = append(pendings, pending{txKind: txKind, playerID: playerID, kind: kind})
	}

	for _, p := range pendings {
		pl, ok := unidentifiedPoolFor(p.kind, p.txKind)
		if !ok {
			continue
		}
		n := counts[txKindKey{kind: p.txKind, playerKind: p.kind}]
		if err := assignShare(tx, p.playerID, shareOf(pl, n)); err != nil {
			return err
		}
	}
	return nil
}

func recomputeGovernanceTasks(tx *gorm.DB) error {
	assignments, err := ongoing.EvaluateGovernance(tx)
	if err != nil {
		return err
	}
	return applyOngoing(tx, assignments)
}

func recomputeUptimeTasks(tx *gorm.DB, snapshot map[string]bool) error {
	assignments, err := ongoing.EvaluateUptime(tx, snapshot)
	if err != nil {
		return err
	}
	return applyOngoing(tx, assignments)
}

// applyOngoing prices synthetic ongoing-task assignments the same way
// as ledger rows, with a completion count scoped to this batch of
// assignments (they are always pilot-only, fixed-threshold tasks).
func applyOngoing(tx *gorm.DB, assignments []ongoing.Assignment) error {
	counts := make(map[schema.TaskType]int)
	for _, a := range assignments {
		counts[a.Task]++
	}
	for _, a := range assignments {
		pl, ok := poolFor(schema.PlayerKindPilot, a.Task)
		if !ok {
			continue
		}
		if err := assignShare(tx, a.PlayerID, shareOf(pl, counts[a.Task])); err != nil {
			return err
		}
	}
	return nil
}

func populationOf(kind schema.PlayerKind) int {
	if kind == schema.PlayerKindCrew {
		return NumberCrewMembers
	}
	return NumberPilots
}

// shareOf truncates the floating-point division into an i64, per
// spec.md §4.4 ("Points are accumulated as i64 after truncating the
// floating division result").
func shareOf(pl pool, n int) int64 {
	if n <= 0 {
		return 0
	}
	return int64(math.Trunc(pl.total / float64(n)))
}

func assignShare(tx *gorm.DB, playerID string, share int64) error {
	if share == 0 {
		return nil
	}
	err := tx.Exec(
		`UPDATE players SET score = score + ? WHERE id = ? AND is_banned IS NOT TRUE`,
		share, playerID,
	).Error
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "assign player score")
	}
	return nil
}
