package classifier

import "github.com/namada-testnet/score-extractor/internal/schema"

// CompletableBy is the eligibility class of a task, collapsed into a
// small table rather than a chain of conditionals (spec.md §9: "Composite
// eligibility of CompletableBy collapses cleanly into a small matrix").
type CompletableBy int

const (
	// NoOne means the task can never be credited to any player (the
	// Unknown transaction kind).
	NoOne CompletableBy = iota
	OnlyCrew
	OnlyPilots
	DependsOnPlayerKind
)

// taskEligibility is the static catalog of which player kind may hold
// each identified task, derived from the pool-allocation table in
// spec.md §4.4 (a "—" pool entry for a player kind means that kind is
// ineligible for the task).
var taskEligibility = map[schema.TaskType]CompletableBy{
	schema.TaskDelegateStakeOnV0: OnlyCrew,
	schema.TaskDelegateStakeOnV1: OnlyCrew,
	schema.TaskClaimPosRewards:    OnlyCrew,
	schema.TaskShieldNaan:         OnlyCrew,
	schema.TaskUnshieldNaan:       OnlyCrew,
	schema.TaskShieldToShielded:   OnlyCrew,
	schema.TaskShieldAssetOverIbc: OnlyCrew,

	schema.TaskSubmitPreGenesisBondTx:       OnlyPilots,
	schema.TaskStartNode5MinFromGenesis:     OnlyPilots,
	schema.TaskInitPostGenesisValidator:     OnlyPilots,
	schema.TaskInValidatorSetFor1Epoch:      OnlyPilots,
	schema.TaskVotePgfStewardProposal:       OnlyPilots,
	schema.TaskVoteUpgradeV0ToV1:            OnlyPilots,
	schema.TaskVoteUpgradeV1ToV2:            OnlyPilots,
	schema.TaskSignFirstBlockOfUpgradeToV2:  OnlyPilots,
	schema.TaskKeep99PerCentUptime:          OnlyPilots,
	schema.TaskKeep95PerCentUptime:          OnlyPilots,
	schema.TaskKeep99PerCentGovParticipationRate: OnlyPilots,
	schema.TaskKeep90PerCentGovParticipationRate: OnlyPilots,

	// All manual tasks are open to either player kind, priced
	// differently per kind by the scorer.
	schema.TaskProvidePublicRpcEndpoint:  DependsOnPlayerKind,
	schema.TaskOperateNamadaIndexer:      DependsOnPlayerKind,
	schema.TaskOperateNamadaInterface:    DependsOnPlayerKind,
	schema.TaskOperateCosmosTestnetRelayer:  DependsOnPlayerKind,
	schema.TaskOperateOsmosisTestnetRelayer: DependsOnPlayerKind,
	schema.TaskOperateNobleTestnetRelayer:   DependsOnPlayerKind,
	schema.TaskOperateRelayerOnNetWithNfts:  DependsOnPlayerKind,
	schema.TaskOperateRelayerOnAnotherNet:   DependsOnPlayerKind,
	schema.TaskIntegrateSeInBlockExplorer:   DependsOnPlayerKind,
	schema.TaskIntegrateSeInBrowserWallet:   DependsOnPlayerKind,
	schema.TaskIntegrateSeInAndroidWallet:   DependsOnPlayerKind,
	schema.TaskIntegrateSeInIosWallet:       DependsOnPlayerKind,
	schema.TaskIntegrateSeInAnotherWallet:   DependsOnPlayerKind,
	schema.TaskSupportShieldedTxsInBlockExplorer: DependsOnPlayerKind,
	schema.TaskSupportShieldedTxsInBrowserWallet: DependsOnPlayerKind,
	schema.TaskSupportShieldedTxsInAndroidWallet: DependsOnPlayerKind,
	schema.TaskSupportShieldedTxsInIosWallet:     DependsOnPlayerKind,
	schema.TaskBuildAdditionalFossTooling:        DependsOnPlayerKind,
	schema.TaskBuildWebAppWithShieldedActionOnIbcChain: DependsOnPlayerKind,
	schema.TaskOsmosisFrontendShieldedSwaps:            DependsOnPlayerKind,
	schema.TaskAnotherAppWithShieldedActionOnIbcChain:  DependsOnPlayerKind,
	schema.TaskReduceMaspProofGenTime:     DependsOnPlayerKind,
	schema.TaskIncreaseNoteScanSpeed:      DependsOnPlayerKind,
	schema.TaskFindAndProveNamSpecsFlaw:   DependsOnPlayerKind,
	schema.TaskOptimizeNamSmExecSpeed:     DependsOnPlayerKind,
	schema.TaskFindProtocolSecVulnerability: DependsOnPlayerKind,
}

// eligibleFor reports whether a player of the given kind may hold task.
// An unlisted task (should not occur given the closed catalog) is
// conservatively treated as NoOne.
func eligibleFor(task schema.TaskType, kind schema.PlayerKind) bool {
	switch taskEligibility[task] {
	case NoOne:
		return false
	case OnlyCrew:
		return kind == schema.PlayerKindCrew
	case OnlyPilots:
		return kind == schema.PlayerKindPilot
	case DependsOnPlayerKind:
		return true
	default:
		return false
	}
}

// unidentifiedEligibility is the CompletableBy for a raw transaction kind
// bucket used when the classifier could not (or should not) assign an
// identified task; Unknown can never be credited to anyone.
func unidentifiedEligibility(kind schema.TransactionKind) CompletableBy {
	if kind == schema.TxUnknown {
		return NoOne
	}
	return DependsOnPlayerKind
}
