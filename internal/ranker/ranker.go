// Package ranker rebuilds player_ranks from scratch every pass
// (spec.md §4.5): delete and restart the sequence, then insert one
// densely-numbered row per player class ordered by score then
// internal_id.
package ranker

import (
	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

var logger = log.NewModuleLogger(log.ModuleRanker)

// RecomputeAll resets player_ranks and reinserts it for both classes.
//
// The ranking query filters `is_banned IS NOT TRUE`, so a player whose
// is_banned is NULL is ranked like a non-banned one; this settles the
// banned-filter open question in spec.md §9. A banned player never
// accrues score (scorer.assignShare already excludes them), but without
// this filter their zero-score row would still occupy a ranking slot at
// the tail of their class; excluding them keeps player_ranks to exactly
// the non-banned population, matching invariant 5 in spec.md §3.
func RecomputeAll(tx *gorm.DB) error {
	if err := reset(tx); err != nil {
		return err
	}
	for _, kind := range []schema.PlayerKind{schema.PlayerKindPilot, schema.PlayerKindCrew} {
		if err := rankClass(tx, kind); err != nil {
			return err
		}
	}
	return nil
}

func reset(tx *gorm.DB) error {
	if err := tx.Exec(`DELETE FROM player_ranks`).Error; err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "delete player ranks")
	}
	if err := tx.Exec(`ALTER SEQUENCE player_ranks_id_seq RESTART WITH 1`).Error; err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "restart player ranks sequence")
	}
	return nil
}

func rankClass(tx *gorm.DB, kind schema.PlayerKind) error {
	err := tx.Exec(`
		INSERT INTO player_ranks (ranking, player_id)
		SELECT ROW_NUMBER() OVER (ORDER BY score DESC, internal_id ASC), id
		FROM players
		WHERE kind = ? AND is_banned IS NOT TRUE
	`, kind).Error
	if err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "insert player ranks")
	}
	logger.Debug("ranked player class", "kind", kind)
	return nil
}
