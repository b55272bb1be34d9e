package scorer

import "github.com/namada-testnet/score-extractor/internal/schema"

// Hard-coded population constants (spec.md §4.4, §9) — load-bearing, so
// named rather than inlined.
const (
	NumberPilots      = 10_470
	NumberCrewMembers = 129_238
)

// shareMode is how a pool's total is divided among completers.
type shareMode int

const (
	// fixedShare divides by the whole class population regardless of
	// how many players actually completed the task.
	fixedShare shareMode = iota
	// relativeShare divides by the number of players who completed it.
	relativeShare
)

// pool is one entry of the pool-allocation table.
type pool struct {
	mode  shareMode
	total float64
}

func fixed(total float64) pool    { return pool{mode: fixedShare, total: total} }
func relative(total float64) pool { return pool{mode: relativeShare, total: total} }

// numTxKinds is M in spec.md §4.4: len(TransactionKind) − 1, excluding Unknown.
var numTxKinds = float64(len(schema.AllTransactionKindsExceptUnknown))

// crewTaskPools and pilotTaskPools are the per-class pool tables for
// identified tasks (spec.md §4.4's allocation table). A task absent from
// a class's map has no pool for that class.
var crewTaskPools = map[schema.TaskType]pool{
	schema.TaskDelegateStakeOnV0: fixed(42.857142857e9),
	schema.TaskDelegateStakeOnV1: fixed(42.857142857e9),
	schema.TaskClaimPosRewards:    relative(42.857142857e9),
	schema.TaskShieldNaan:         relative(42.857142857e9),
	schema.TaskUnshieldNaan:       relative(42.857142857e9),
	schema.TaskShieldToShielded:   relative(42.857142857e9),
	schema.TaskShieldAssetOverIbc: relative(42.857142857e9),
}

var pilotTaskPools = map[schema.TaskType]pool{
	schema.TaskSubmitPreGenesisBondTx:      relative(10e9),
	schema.TaskStartNode5MinFromGenesis:    relative(34.285714286e9),
	schema.TaskInitPostGenesisValidator:    relative(34.285714286e9),
	schema.TaskInValidatorSetFor1Epoch:     relative(34.285714286e9),
	schema.TaskVotePgfStewardProposal:      relative(34.285714286e9),
	schema.TaskVoteUpgradeV0ToV1:           relative(34.285714286e9),
	schema.TaskVoteUpgradeV1ToV2:           relative(34.285714286e9),
	schema.TaskSignFirstBlockOfUpgradeToV2: relative(34.285714286e9),
	schema.TaskKeep95PerCentUptime:         relative(31.25e9),
	schema.TaskKeep99PerCentUptime:         relative(31.25e9),
	schema.TaskKeep90PerCentGovParticipationRate: relative(31.25e9),
	schema.TaskKeep99PerCentGovParticipationRate: relative(31.25e9),
}

// manualTasks is the set of the 26 externally curated tasks, priced
// identically regardless of which one — a player kind just needs to hold
// the row (spec.md §4.4: "All manual tasks ... ").
var manualTasks = map[schema.TaskType]bool{
	schema.TaskProvidePublicRpcEndpoint:  true,
	schema.TaskOperateNamadaIndexer:      true,
	schema.TaskOperateNamadaInterface:    true,
	schema.TaskOperateCosmosTestnetRelayer:  true,
	schema.TaskOperateOsmosisTestnetRelayer: true,
	schema.TaskOperateNobleTestnetRelayer:   true,
	schema.TaskOperateRelayerOnNetWithNfts:  true,
	schema.TaskOperateRelayerOnAnotherNet:   true,
	schema.TaskIntegrateSeInBlockExplorer:   true,
	schema.TaskIntegrateSeInBrowserWallet:   true,
	schema.TaskIntegrateSeInAndroidWallet:   true,
	schema.TaskIntegrateSeInIosWallet:       true,
	schema.TaskIntegrateSeInAnotherWallet:   true,
	schema.TaskSupportShieldedTxsInBlockExplorer: true,
	schema.TaskSupportShieldedTxsInBrowserWallet: true,
	schema.TaskSupportShieldedTxsInAndroidWallet: true,
	schema.TaskSupportShieldedTxsInIosWallet:     true,
	schema.TaskBuildAdditionalFossTooling:        true,
	schema.TaskBuildWebAppWithShieldedActionOnIbcChain: true,
	schema.TaskOsmosisFrontendShieldedSwaps:            true,
	schema.TaskAnotherAppWithShieldedActionOnIbcChain:  true,
	schema.TaskReduceMaspProofGenTime:     true,
	schema.TaskIncreaseNoteScanSpeed:      true,
	schema.TaskFindAndProveNamSpecsFlaw:   true,
	schema.TaskOptimizeNamSmExecSpeed:     true,
	schema.TaskFindProtocolSecVulnerability: true,
}

const (
	manualTaskCrewTotal  = 66.666666667e9
	manualTaskPilotTotal = 62.5e9
)

// poolFor is the pure function spec.md §9 calls out: given a player kind
// and a task, return the pool it draws from, or ok=false if that class
// has no pool for it.
func poolFor(kind schema.PlayerKind, task schema.TaskType) (pool, bool) {
	if manualTasks[task] {
		if kind == schema.PlayerKindCrew {
			return relative(manualTaskCrewTotal), true
		}
		return relative(manualTaskPilotTotal), true
	}
	if kind == schema.PlayerKindCrew {
		p, ok := crewTaskPools[task]
		return p, ok
	}
	p, ok := pilotTaskPools[task]
	return p, ok
}

// unidentifiedPoolFor returns the pool an unidentified transaction-kind
// bucket draws from for the given player kind. Unknown never has a pool.
func unidentifiedPoolFor(kind schema.PlayerKind, txKind schema.TransactionKind) (pool, bool) {
	if txKind == schema.TxUnknown {
		return pool{}, false
	}
	if kind == schema.PlayerKindCrew {
		return relative(300e9 / numTxKinds), true
	}
	return relative(250e9 / numTxKinds), true
}
