package classifier

import (
	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/corerr"
)

// Persist upserts the outcome of Classify into tasks/unidentified_tasks,
// swallowing the uniqueness violation exactly as tasks.rs's
// mark_task_completed_from_tx does for DatabaseErrorKind::UniqueViolation.
func Persist(tx *gorm.DB, o Outcome) error {
	if o.None {
		return nil
	}
	var err error
	if o.Identified {
		err = tx.Exec(
			`INSERT INTO tasks (task, player_id) VALUES (?, ?) ON CONFLICT (player_id, task) DO NOTHING`,
			o.Task, o.PlayerID,
		).Error
	} else {
		err = tx.Exec(
			`INSERT INTO unidentified_tasks (tx_kind, player_id) VALUES (?, ?) ON CONFLICT (player_id, tx_kind) DO NOTHING`,
			o.TxKind, o.PlayerID,
		).Error
	}
	if err != nil {
		return corerr.Wrap(corerr.ClassDataIntegrity, err, "persist classified task")
	}
	return nil
}

// CopyManualTasks mirrors tasks.rs's mark_completed_special_tasks: every
// pass, externally curated manual_tasks rows are copied into tasks,
// ignoring rows that already exist.
func CopyManualTasks(tx *gorm.DB) error {
	err := tx.Exec(
		`INSERT INTO tasks (player_id, task) SELECT player_id, task FROM manual_tasks ON CONFLICT (player_id, task) DO NOTHING`,
	).Error
	if err != nil {
		return corerr.Wrap(corerr.ClassDataIntegrity, err, "copy manual tasks")
	}
	return nil
}
