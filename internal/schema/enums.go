package schema

import (
	"database/sql/driver"
	"fmt"
)

// enumScan gives a Go string-based enum type the database/sql.Scanner
// behavior, and each type's own Value method the driver.Valuer side,
// needed to round-trip a native Postgres ENUM column without an ORM-level
// enum shim — gorm v1
// (the teacher's ORM, jinzhu/gorm) does not ship generated DB-enum
// helpers the way the original Rust source's diesel_derive_enum does, so
// each enum type here carries its own.
func enumScan(dst *string, src interface{}) error {
	switch v := src.(type) {
	case string:
		*dst = v
	case []byte:
		*dst = string(v)
	case nil:
		*dst = ""
	default:
		return fmt.Errorf("schema: cannot scan %T into enum", src)
	}
	return nil
}

// PlayerKind distinguishes validator operators ("pilots") from
// non-validator end users ("crew").
type PlayerKind string

const (
	PlayerKindPilot PlayerKind = "Pilot"
	PlayerKindCrew  PlayerKind = "Crew"
)

func (k *PlayerKind) Scan(src interface{}) error {
	var s string
	if err := enumScan(&s, src); err != nil {
		return err
	}
	*k = PlayerKind(s)
	return nil
}

func (k PlayerKind) Value() (driver.Value, error) { return string(k), nil }

// TaskType is the closed catalog of identified tasks (spec.md §6, §4.4).
type TaskType string

const (
	TaskDelegateStakeOnV0    TaskType = "DelegateStakeOnV0"
	TaskDelegateStakeOnV1    TaskType = "DelegateStakeOnV1"
	TaskClaimPosRewards      TaskType = "ClaimPosRewards"
	TaskShieldNaan           TaskType = "ShieldNaan"
	TaskUnshieldNaan         TaskType = "UnshieldNaan"
	TaskShieldToShielded     TaskType = "ShieldToShielded"
	TaskShieldAssetOverIbc   TaskType = "ShieldAssetOverIbc"
	TaskSubmitPreGenesisBondTx TaskType = "SubmitPreGenesisBondTx"

	TaskVotePgfStewardProposal   TaskType = "VotePgfStewardProposal"
	TaskVoteUpgradeV0ToV1        TaskType = "VoteUpgradeV0ToV1"
	TaskVoteUpgradeV1ToV2        TaskType = "VoteUpgradeV1ToV2"
	TaskInitPostGenesisValidator TaskType = "InitPostGenesisValidator"

	TaskStartNode5MinFromGenesis   TaskType = "StartNode5MinFromGenesis"
	TaskInValidatorSetFor1Epoch    TaskType = "InValidatorSetFor1Epoch"
	TaskSignFirstBlockOfUpgradeToV2 TaskType = "SignFirstBlockOfUpgradeToV2"

	TaskKeep99PerCentUptime                TaskType = "Keep99PerCentUptime"
	TaskKeep95PerCentUptime                TaskType = "Keep95PerCentUptime"
	TaskKeep99PerCentGovParticipationRate  TaskType = "Keep99PerCentGovParticipationRate"
	TaskKeep90PerCentGovParticipationRate  TaskType = "Keep90PerCentGovParticipationRate"

	TaskProvidePublicRpcEndpoint              TaskType = "ProvidePublicRpcEndpoint"
	TaskOperateNamadaIndexer                  TaskType = "OperateNamadaIndexer"
	TaskOperateNamadaInterface                TaskType = "OperateNamadaInterface"
	TaskOperateCosmosTestnetRelayer           TaskType = "OperateCosmosTestnetRelayer"
	TaskOperateOsmosisTestnetRelayer          TaskType = "OperateOsmosisTestnetRelayer"
	TaskOperateNobleTestnetRelayer            TaskType = "OperateNobleTestnetRelayer"
	TaskOperateRelayerOnNetWithNfts           TaskType = "OperateRelayerOnNetWithNfts"
	TaskOperateRelayerOnAnotherNet            TaskType = "OperateRelayerOnAnotherNet"
	TaskIntegrateSeInBlockExplorer            TaskType = "IntegrateSeInBlockExplorer"
	TaskIntegrateSeInBrowserWallet            TaskType = "IntegrateSeInBrowserWallet"
	TaskIntegrateSeInAndroidWallet            TaskType = "IntegrateSeInAndroidWallet"
	TaskIntegrateSeInIosWallet                TaskType = "IntegrateSeInIosWallet"
	TaskIntegrateSeInAnotherWallet            TaskType = "IntegrateSeInAnotherWallet"
	TaskSupportShieldedTxsInBlockExplorer     TaskType = "SupportShieldedTxsInBlockExplorer"
	TaskSupportShieldedTxsInBrowserWallet     TaskType = "SupportShieldedTxsInBrowserWallet"
	TaskSupportShieldedTxsInAndroidWallet     TaskType = "SupportShieldedTxsInAndroidWallet"
	TaskSupportShieldedTxsInIosWallet         TaskType = "SupportShieldedTxsInIosWallet"
	TaskBuildAdditionalFossTooling            TaskType = "BuildAdditionalFossTooling"
	TaskBuildWebAppWithShieldedActionOnIbcChain TaskType = "BuildWebAppWithShieldedActionOnIbcChain"
	TaskOsmosisFrontendShieldedSwaps          TaskType = "OsmosisFrontendShieldedSwaps"
	TaskAnotherAppWithShieldedActionOnIbcChain TaskType = "AnotherAppWithShieldedActionOnIbcChain"
	TaskReduceMaspProofGenTime                TaskType = "ReduceMaspProofGenTime"
	TaskIncreaseNoteScanSpeed                 TaskType = "IncreaseNoteScanSpeed"
	TaskFindAndProveNamSpecsFlaw              TaskType = "FindAndProveNamSpecsFlaw"
	TaskOptimizeNamSmExecSpeed                TaskType = "OptimizeNamSmExecSpeed"
	TaskFindProtocolSecVulnerability          TaskType = "FindProtocolSecVulnerability"
)

func (t *TaskType) Scan(src interface{}) error {
	var s string
	if err := enumScan(&s, src); err != nil {
		return err
	}
	*t = TaskType(s)
	return nil
}

func (t TaskType) Value() (driver.Value, error) { return string(t), nil }

// TransactionKind is the closed catalog of indexed transaction kinds
// (spec.md §4.1, §6). M = len(TransactionKind)-1 = 26, excluding Unknown.
type TransactionKind string

const (
	TxWrapper                   TransactionKind = "Wrapper"
	TxProtocol                  TransactionKind = "Protocol"
	TxTransparentTransfer       TransactionKind = "TransparentTransfer"
	TxShieldedTransfer          TransactionKind = "ShieldedTransfer"
	TxBond                      TransactionKind = "Bond"
	TxRedelegation              TransactionKind = "Redelegation"
	TxUnbond                    TransactionKind = "Unbond"
	TxWithdraw                  TransactionKind = "Withdraw"
	TxClaimRewards              TransactionKind = "ClaimRewards"
	TxReactivateValidator       TransactionKind = "ReactivateValidator"
	TxDeactivateValidator       TransactionKind = "DeactivateValidator"
	TxIbcEnvelop                TransactionKind = "IbcEnvelop"
	TxIbcTransparentTransfer    TransactionKind = "IbcTransparentTransfer"
	TxIbcShieldedTransfer       TransactionKind = "IbcShieldedTransfer"
	TxChangeConsensusKey        TransactionKind = "ChangeConsensusKey"
	TxChangeCommission          TransactionKind = "ChangeCommission"
	TxChangeMetadata            TransactionKind = "ChangeMetadata"
	TxBecomeValidator           TransactionKind = "BecomeValidator"
	TxInitAccount               TransactionKind = "InitAccount"
	TxInitProposal              TransactionKind = "InitProposal"
	TxResignSteward             TransactionKind = "ResignSteward"
	TxRevealPublicKey           TransactionKind = "RevealPublicKey"
	TxUnjailValidator           TransactionKind = "UnjailValidator"
	TxUpdateAccount             TransactionKind = "UpdateAccount"
	TxUpdateStewardCommissions  TransactionKind = "UpdateStewardCommissions"
	TxProposalVote              TransactionKind = "ProposalVote"
	TxUnknown                   TransactionKind = "Unknown"
)

// AllTransactionKindsExceptUnknown lists every kind except Unknown, in declaration
// order; its length is M in the pool-prize table (spec.md §4.4).
var AllTransactionKindsExceptUnknown = []TransactionKind{
	TxWrapper, TxProtocol, TxTransparentTransfer, TxShieldedTransfer, TxBond,
	TxRedelegation, TxUnbond, TxWithdraw, TxClaimRewards, TxReactivateValidator,
	TxDeactivateValidator, TxIbcEnvelop, TxIbcTransparentTransfer, TxIbcShieldedTransfer,
	TxChangeConsensusKey, TxChangeCommission, TxChangeMetadata, TxBecomeValidator,
	TxInitAccount, TxInitProposal, TxResignSteward, TxRevealPublicKey, TxUnjailValidator,
	TxUpdateAccount, TxUpdateStewardCommissions, TxProposalVote,
}

func (k *TransactionKind) Scan(src interface{}) error {
	var s string
	if err := enumScan(&s, src); err != nil {
		return err
	}
	*k = TransactionKind(s)
	return nil
}

func (k TransactionKind) Value() (driver.Value, error) { return string(k), nil }

// TxExitStatus is the outcome of a transaction's execution.
type TxExitStatus string

const (
	TxExitApplied  TxExitStatus = "Applied"
	TxExitAccepted TxExitStatus = "Accepted"
	TxExitRejected TxExitStatus = "Rejected"
)

func (s *TxExitStatus) Scan(src interface{}) error {
	var v string
	if err := enumScan(&v, src); err != nil {
		return err
	}
	*s = TxExitStatus(v)
	return nil
}

func (s TxExitStatus) Value() (driver.Value, error) { return string(s), nil }

// GovernanceKind is the category of a governance proposal.
type GovernanceKind string

const (
	GovKindPgfSteward      GovernanceKind = "PgfSteward"
	GovKindPgfFunding      GovernanceKind = "PgfFunding"
	GovKindDefault         GovernanceKind = "Default"
	GovKindDefaultWithWasm GovernanceKind = "DefaultWithWasm"
)

func (k *GovernanceKind) Scan(src interface{}) error {
	var v string
	if err := enumScan(&v, src); err != nil {
		return err
	}
	*k = GovernanceKind(v)
	return nil
}

func (k GovernanceKind) Value() (driver.Value, error) { return string(k), nil }

// GovernanceResult is the lifecycle state of a governance proposal.
type GovernanceResult string

const (
	GovResultPassed      GovernanceResult = "Passed"
	GovResultRejected    GovernanceResult = "Rejected"
	GovResultPending     GovernanceResult = "Pending"
	GovResultUnknown     GovernanceResult = "Unknown"
	GovResultVotingPeriod GovernanceResult = "VotingPeriod"
)

func (r *GovernanceResult) Scan(src interface{}) error {
	var v string
	if err := enumScan(&v, src); err != nil {
		return err
	}
	*r = GovernanceResult(v)
	return nil
}

func (r GovernanceResult) Value() (driver.Value, error) { return string(r), nil }

// VoteKind is a governance vote's choice.
type VoteKind string

const (
	VoteYay     VoteKind = "Yay"
	VoteNay     VoteKind = "Nay"
	VoteAbstain VoteKind = "Abstain"
)

func (v *VoteKind) Scan(src interface{}) error {
	var s string
	if err := enumScan(&s, src); err != nil {
		return err
	}
	*v = VoteKind(s)
	return nil
}

func (v VoteKind) Value() (driver.Value, error) { return string(v), nil }

// EvidenceKind is the category of consensus misbehavior evidence.
type EvidenceKind string

const (
	EvidenceDuplicateVote     EvidenceKind = "DuplicateVote"
	EvidenceLightClientAttack EvidenceKind = "LightClientAttack"
)

func (e *EvidenceKind) Scan(src interface{}) error {
	var v string
	if err := enumScan(&v, src); err != nil {
		return err
	}
	*e = EvidenceKind(v)
	return nil
}

func (e EvidenceKind) Value() (driver.Value, error) { return string(e), nil }
