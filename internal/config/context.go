package config

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"
	"gopkg.in/urfave/cli.v1"

	"github.com/namada-testnet/score-extractor/internal/cometbft"
	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/playerkind"
)

// AddressBook holds the well-known addresses the classifier needs: the
// canonical shielded-pool address, the native token
// resolved once at startup, and the upgrade proposer's address.
type AddressBook struct {
	MASPAddress     string
	NAANAddress     string
	UpgradeProposer string
}

// Epochs holds the protocol-upgrade epoch boundaries.
type Epochs struct {
	V0ToV1 int64
	V1ToV2 int64
}

// Context is the process-wide, read-mostly state every phase of a pass
// consults: the address book, upgrade epochs, genesis time (if known up
// front), and the player-kind cache. It is built once at startup.
type Context struct {
	DB           *gorm.DB
	AddressBook  AddressBook
	Epochs       Epochs
	GenesisTime  *time.Time // nil means infer from blocks table
	PlayerKinds  *playerkind.Cache
	SleepDuration time.Duration
}

// MASPAddress is the canonical shielded-pool pseudo-address used throughout
// Namada; it never varies across chains, unlike NAAN.
const MASPAddress = "tnam1pcqtz99fzgcpqgfx09ar3fn5rutgqqe95n8u3dun"

// NewContext resolves the native token address (retrying indefinitely
// per spec.md §6) and assembles the Context from CLI flags.
func NewContext(ctx context.Context, cliCtx *cli.Context, db *gorm.DB) (*Context, error) {
	cometClient := cometbft.NewClient(cliCtx.String(CometBFTURLFlag.Name))
	naan, err := cometClient.NativeTokenAddress(ctx)
	if err != nil {
		return nil, corerr.Wrap(corerr.ClassTransientInfra, err, "resolve native token address")
	}

	var genesisTime *time.Time
	if raw := cliCtx.String(NamadaGenesisTimeFlag.Name); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, corerr.Wrap(corerr.ClassConfiguration, err, "parse namada-genesis-time")
		}
		genesisTime = &t
	}

	return &Context{
		DB: db,
		AddressBook: AddressBook{
			MASPAddress:     MASPAddress,
			NAANAddress:     naan,
			UpgradeProposer: cliCtx.String(UpgradeProposerFlag.Name),
		},
		Epochs: Epochs{
			V0ToV1: cliCtx.Int64(V0ToV1UpgradeEpochFlag.Name),
			V1ToV2: cliCtx.Int64(V1ToV2UpgradeEpochFlag.Name),
		},
		GenesisTime:   genesisTime,
		PlayerKinds:   playerkind.NewCache(db),
		SleepDuration: cliCtx.Duration(SleepDurationFlag.Name),
	}, nil
}
