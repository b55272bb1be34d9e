// Package classifier implements the transaction → task classifier
// (spec.md §4.1): given a decoded transaction it emits nothing, an
// identified task, or an unidentified-task bucket, then upserts the
// result into the ledger tables.
package classifier

import (
	"github.com/jinzhu/gorm"

	"github.com/namada-testnet/score-extractor/internal/config"
	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
	"github.com/namada-testnet/score-extractor/internal/schema"
)

var logger = log.NewModuleLogger(log.ModuleClassifier)

// upgradeProposalShortlist is the hard-coded proposal-id exception that
// always classifies a vote as a v0→v1 upgrade vote regardless of the
// proposal's own grace epoch (spec.md §4.1, §9).
var upgradeProposalShortlist = map[int64]bool{316: true, 385: true}

// verdict is the three-way result of the per-kind dispatch below: either
// a task was identified, or the transaction falls back to its raw
// tx-kind bucket, or it must be dropped entirely (None).
type verdict int

const (
	verdictIdentified verdict = iota
	verdictFallback
	verdictNone
)

// Outcome is the result of classifying one transaction.
type Outcome struct {
	// None means nothing should be recorded.
	None     bool
	Task     schema.TaskType
	TxKind   schema.TransactionKind
	PlayerID string
	// Identified is true when Task is populated; otherwise TxKind holds
	// the unidentified bucket.
	Identified bool
}

// Classify applies §4.1's algorithm to one transaction, reading whatever
// auxiliary rows (block epoch, proposal) it needs from tx.
func Classify(tx *gorm.DB, cx *config.Context, txn schema.Transaction) (Outcome, error) {
	if len(txn.Memo) == 0 {
		return Outcome{None: true}, nil
	}
	playerID, err := ParsePlayerID(txn.Memo)
	if err != nil {
		logger.Debug("skipping transaction with unparseable memo", "tx_id", txn.ID, "err", err)
		return Outcome{None: true}, nil
	}

	kind, exists, err := cx.PlayerKinds.Get(playerID)
	if err != nil {
		return Outcome{}, err
	}
	if !exists {
		logger.Debug("skipping transaction for nonexistent player", "tx_id", txn.ID, "player_id", playerID)
		return Outcome{None: true}, nil
	}

	task, v, err := dispatch(tx, cx, txn)
	if err != nil {
		return Outcome{}, err
	}

	switch v {
	case verdictNone:
		return Outcome{None: true}, nil
	case verdictFallback:
		return downgrade(Outcome{Identified: false, TxKind: txn.Kind, PlayerID: playerID}, kind), nil
	default:
		return downgrade(Outcome{Identified: true, Task: task, TxKind: txn.Kind, PlayerID: playerID}, kind), nil
	}
}

// downgrade applies the CompletableBy matrix: an ineligible identified
// task is demoted to unidentified-by-tx-kind; an ineligible unidentified
// bucket (only Unknown) collapses to None.
func downgrade(o Outcome, kind schema.PlayerKind) Outcome {
	if o.Identified {
		if eligibleFor(o.Task, kind) {
			return o
		}
		return Outcome{Identified: false, TxKind: o.TxKind, PlayerID: o.PlayerID}
	}
	if unidentifiedEligibility(o.TxKind) == NoOne {
		return Outcome{None: true}
	}
	return o
}

// dispatch implements the per-kind branch of §4.1.
func dispatch(tx *gorm.DB, cx *config.Context, txn schema.Transaction) (schema.TaskType, verdict, error) {
	switch txn.Kind {
	case schema.TxBond:
		return classifyBond(tx, cx, txn)
	case schema.TxIbcShieldedTransfer:
		return schema.TaskShieldAssetOverIbc, verdictIdentified, nil
	case schema.TxShieldedTransfer:
		return classifyShieldedTransfer(cx, txn)
	case schema.TxBecomeValidator:
		return schema.TaskInitPostGenesisValidator, verdictIdentified, nil
	case schema.TxClaimRewards:
		return schema.TaskClaimPosRewards, verdictIdentified, nil
	case schema.TxProposalVote:
		return classifyProposalVote(tx, cx, txn)
	default:
		return "", verdictFallback, nil
	}
}

func classifyBond(tx *gorm.DB, cx *config.Context, txn schema.Transaction) (schema.TaskType, verdict, error) {
	var block schema.Block
	if err := tx.Select("epoch").Where("id = ?", txn.BlockID).First(&block).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			logger.Warn("bond transaction references missing block", "tx_id", txn.ID, "block_id", txn.BlockID)
			return "", verdictNone, nil
		}
		return "", verdictNone, corerr.Wrap(corerr.ClassTransientInfra, err, "lookup block for bond")
	}
	switch {
	case block.Epoch < cx.Epochs.V0ToV1:
		return schema.TaskDelegateStakeOnV0, verdictIdentified, nil
	case block.Epoch < cx.Epochs.V1ToV2:
		return schema.TaskDelegateStakeOnV1, verdictIdentified, nil
	default:
		return "", verdictFallback, nil
	}
}

func classifyShieldedTransfer(cx *config.Context, txn schema.Transaction) (schema.TaskType, verdict, error) {
	record, err := ParseTransferRecord(txn.AssociatedData)
	if err != nil {
		logger.Debug("dropping shielded transfer with unparseable payload", "tx_id", txn.ID, "err", err)
		return "", verdictNone, nil
	}
	masp := cx.AddressBook.MASPAddress
	naan := cx.AddressBook.NAANAddress
	switch {
	case record.Source == masp && record.Target == masp:
		return schema.TaskShieldToShielded, verdictIdentified, nil
	case record.Source == naan && record.Target == masp:
		return schema.TaskShieldNaan, verdictIdentified, nil
	case record.Source == masp && record.Target == naan:
		return schema.TaskUnshieldNaan, verdictIdentified, nil
	default:
		return "", verdictFallback, nil
	}
}

func classifyProposalVote(tx *gorm.DB, cx *config.Context, txn schema.Transaction) (schema.TaskType, verdict, error) {
	vote, err := ParseVoteData(txn.AssociatedData)
	if err != nil {
		logger.Debug("dropping vote with unparseable payload", "tx_id", txn.ID, "err", err)
		return "", verdictNone, nil
	}

	if upgradeProposalShortlist[vote.ProposalID] {
		return schema.TaskVoteUpgradeV0ToV1, verdictIdentified, nil
	}

	var proposal schema.GovernanceProposal
	if err := tx.Where("id = ?", vote.ProposalID).First(&proposal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			logger.Warn("vote references missing proposal", "tx_id", txn.ID, "proposal_id", vote.ProposalID)
			return "", verdictNone, nil
		}
		return "", verdictNone, corerr.Wrap(corerr.ClassTransientInfra, err, "lookup proposal for vote")
	}

	if proposal.Kind == schema.GovKindPgfSteward {
		return schema.TaskVotePgfStewardProposal, verdictIdentified, nil
	}
	if proposal.Author != cx.AddressBook.UpgradeProposer {
		return "", verdictFallback, nil
	}
	switch proposal.GraceEpoch {
	case cx.Epochs.V0ToV1:
		return schema.TaskVoteUpgradeV0ToV1, verdictIdentified, nil
	case cx.Epochs.V1ToV2:
		return schema.TaskVoteUpgradeV1ToV2, verdictIdentified, nil
	default:
		return "", verdictFallback, nil
	}
}
