package schema

import "time"

// Player mirrors the `players` table (spec.md §3). Immutable except for
// Score (written only by this core), NamadaValidatorAddress (written by
// the indexer), and IsBanned (external).
type Player struct {
	ID                     string `gorm:"primary_key;column:id"`
	Moniker                string `gorm:"column:moniker"`
	NamadaPlayerAddress    string `gorm:"column:namada_player_address"`
	NamadaValidatorAddress *string `gorm:"column:namada_validator_address"`
	Email                  *string `gorm:"column:email"`
	Kind                   PlayerKind `gorm:"column:kind"`
	Score                  int64  `gorm:"column:score"`
	BlockHeight            *int64 `gorm:"column:block_height"`
	AvatarURL              *string `gorm:"column:avatar_url"`
	IsBanned               *bool  `gorm:"column:is_banned"`
	InternalID             int32  `gorm:"column:internal_id;auto_increment"`
}

func (Player) TableName() string { return "players" }

// Banned reports whether the player is currently banned, treating a NULL
// is_banned column as not-banned.
func (p Player) Banned() bool { return p.IsBanned != nil && *p.IsBanned }

// Task is a row of the identified-task ledger.
type Task struct {
	ID       int64    `gorm:"primary_key;column:id"`
	Task     TaskType `gorm:"column:task"`
	PlayerID string   `gorm:"column:player_id"`
}

func (Task) TableName() string { return "tasks" }

// UnidentifiedTask catches transactions whose task the classifier could
// not, or should not, assign.
type UnidentifiedTask struct {
	ID       int64           `gorm:"primary_key;column:id"`
	TxKind   TransactionKind `gorm:"column:tx_kind"`
	PlayerID string          `gorm:"column:player_id"`
}

func (UnidentifiedTask) TableName() string { return "unidentified_tasks" }

// ManualTask is an externally curated task grant, copied into `tasks`
// every pass (ignoring conflicts).
type ManualTask struct {
	ID       int64    `gorm:"primary_key;column:id"`
	Task     TaskType `gorm:"column:task"`
	PlayerID string   `gorm:"column:player_id"`
}

func (ManualTask) TableName() string { return "manual_tasks" }

// Block is one indexed chain block.
type Block struct {
	ID              int64     `gorm:"primary_key;column:id"`
	Height          int64     `gorm:"column:height"`
	IncludedAt      time.Time `gorm:"column:included_at"`
	ProposerAddress string    `gorm:"column:proposer_address"`
	Epoch           int64     `gorm:"column:epoch"`
}

func (Block) TableName() string { return "blocks" }

// Commit is one signer's signature on one block.
type Commit struct {
	ID        int64   `gorm:"primary_key;column:id"`
	Signature *string `gorm:"column:signature"`
	Address   string  `gorm:"column:address"`
	BlockID   int64   `gorm:"column:block_id"`
}

func (Commit) TableName() string { return "commits" }

// TmAddress maps the consensus address used in Commit.Address back to an
// on-chain validator address, scoped to the epoch it was valid in.
type TmAddress struct {
	ID                     int64  `gorm:"primary_key;column:id"`
	TmAddress              string `gorm:"column:tm_address"`
	Epoch                  int64  `gorm:"column:epoch"`
	ValidatorNamadaAddress string `gorm:"column:validator_namada_address"`
}

func (TmAddress) TableName() string { return "tm_addresses" }

// Transaction is one indexed chain transaction.
type Transaction struct {
	ID              int64           `gorm:"primary_key;column:id"`
	InnerHash       *string         `gorm:"column:inner_hash"`
	Index           int32           `gorm:"column:index"`
	Kind            TransactionKind `gorm:"column:kind"`
	AssociatedData  []byte          `gorm:"column:associated_data"`
	ExitStatus      TxExitStatus    `gorm:"column:exit_status"`
	GasUsed         int64           `gorm:"column:gas_used"`
	Memo            []byte          `gorm:"column:memo"`
	BlockID         int64           `gorm:"column:block_id"`
}

func (Transaction) TableName() string { return "transactions" }

// GovernanceProposal is one on-chain governance proposal.
type GovernanceProposal struct {
	ID            int64            `gorm:"primary_key;column:id"`
	Content       *string          `gorm:"column:content"`
	Kind          GovernanceKind   `gorm:"column:kind"`
	Author        string           `gorm:"column:author"`
	StartEpoch    int64            `gorm:"column:start_epoch"`
	EndEpoch      int64            `gorm:"column:end_epoch"`
	GraceEpoch    int64            `gorm:"column:grace_epoch"`
	Result        GovernanceResult `gorm:"column:result"`
	YayVotes      int64            `gorm:"column:yay_votes"`
	NayVotes      int64            `gorm:"column:nay_votes"`
	AbstainVotes  int64            `gorm:"column:abstain_votes"`
	TransactionID int64            `gorm:"column:transaction_id"`
}

func (GovernanceProposal) TableName() string { return "governance_proposals" }

// GovernanceVote is one cast vote.
type GovernanceVote struct {
	ID            int64    `gorm:"primary_key;column:id"`
	VoterAddress  string   `gorm:"column:voter_address"`
	Kind          VoteKind `gorm:"column:kind"`
	ProposalID    int64    `gorm:"column:proposal_id"`
	TransactionID int64    `gorm:"column:transaction_id"`
	PlayerID      *string  `gorm:"column:player_id"`
}

func (GovernanceVote) TableName() string { return "governance_votes" }

// Evidence is one recorded piece of consensus misbehavior evidence.
type Evidence struct {
	ID      int64        `gorm:"primary_key;column:id"`
	Kind    EvidenceKind `gorm:"column:kind"`
	Height  int64        `gorm:"column:height"`
	Address string       `gorm:"column:address"`
}

func (Evidence) TableName() string { return "evidences" }

// Steward is an on-chain public-goods-funding steward.
type Steward struct {
	ID      int64  `gorm:"primary_key;column:id"`
	Address string `gorm:"column:address"`
}

func (Steward) TableName() string { return "stewards" }

// ChainParameters is external chain configuration the indexer maintains.
type ChainParameters struct {
	ID                    int64 `gorm:"primary_key;column:id"`
	UnbondingLength       int64 `gorm:"column:unbonding_length"`
	PipelineLength        int64 `gorm:"column:pipeline_length"`
	EpochDurationInBlocks int64 `gorm:"column:epoch_duration_in_blocks"`
}

func (ChainParameters) TableName() string { return "chain_parameters" }

// Validator is an on-chain validator record the indexer maintains.
type Validator struct {
	ID      int64  `gorm:"primary_key;column:id"`
	Address string `gorm:"column:address"`
	Moniker string `gorm:"column:moniker"`
}

func (Validator) TableName() string { return "validators" }

// CrawlerState is the external indexer's own checkpoint; the core only
// ever reads max(height) from it.
type CrawlerState struct {
	ID     int64 `gorm:"primary_key;column:id"`
	Height int64 `gorm:"column:height"`
}

func (CrawlerState) TableName() string { return "crawler_state" }

// TaskCompletionState is the core's own single-row checkpoint (id = 0).
type TaskCompletionState struct {
	ID                  int64     `gorm:"primary_key;column:id"`
	LastProcessedHeight int64     `gorm:"column:last_processed_height"`
	LastProcessedTime   time.Time `gorm:"column:last_processed_time"`
}

func (TaskCompletionState) TableName() string { return "task_completion_state" }

// PlayerRank is one row of the fully-rebuilt-every-pass leaderboard.
type PlayerRank struct {
	ID       int64  `gorm:"primary_key;column:id"`
	Ranking  int64  `gorm:"column:ranking"`
	PlayerID string `gorm:"column:player_id"`
}

func (PlayerRank) TableName() string { return "player_ranks" }
