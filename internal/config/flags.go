// Package config defines the command-line surface (mirroring klaytn's
// cmd/utils/flags.go style, built on gopkg.in/urfave/cli.v1) and the
// process-wide Context assembled from it: the address book, the upgrade
// epochs, the inferred-or-configured genesis time, and a handle to the
// player-kind cache every other package needs. The CometBFT client is
// used only inside NewContext, to resolve the native token address, and
// is not kept in the Context.
package config

import (
	"time"

	"gopkg.in/urfave/cli.v1"
)

// Flag definitions. Every flag also accepts its env-var equivalent
// (upper-cased, dashes to underscores) via the EnvVar field, the same
// convention klaytn's own flags use in cmd/utils/flags.go.
var (
	DatabaseURLFlag = cli.StringFlag{
		Name:   "database-url",
		Usage:  "connection string to the Postgres-compatible store",
		EnvVar: "DATABASE_URL",
	}
	CometBFTURLFlag = cli.StringFlag{
		Name:   "cometbft-url",
		Usage:  "base URL of the consensus node RPC",
		EnvVar: "COMETBFT_URL",
	}
	NamadaGenesisTimeFlag = cli.StringFlag{
		Name:   "namada-genesis-time",
		Usage:  "wall-clock timestamp of block 1, RFC3339; inferred from the block table if absent",
		EnvVar: "NAMADA_GENESIS_TIME",
	}
	UpgradeProposerFlag = cli.StringFlag{
		Name:   "upgrade-proposer",
		Usage:  "on-chain address whose grace-epoch-matching proposals count as upgrade votes",
		EnvVar: "UPGRADE_PROPOSER",
	}
	V0ToV1UpgradeEpochFlag = cli.Int64Flag{
		Name:   "v0-to-v1-upgrade-epoch",
		Usage:  "epoch boundary between protocol v0 and v1",
		EnvVar: "V0_TO_V1_UPGRADE_EPOCH",
	}
	V1ToV2UpgradeEpochFlag = cli.Int64Flag{
		Name:   "v1-to-v2-upgrade-epoch",
		Usage:  "epoch boundary between protocol v1 and v2",
		EnvVar: "V1_TO_V2_UPGRADE_EPOCH",
	}
	SleepDurationFlag = cli.DurationFlag{
		Name:   "sleep-duration",
		Usage:  "time between scoring passes",
		Value:  30 * time.Second,
		EnvVar: "SLEEP_DURATION",
	}
	VerbosityFlag = cli.IntFlag{
		Name:   "verbosity",
		Usage:  "log verbosity: 0=crit .. 5=trace",
		Value:  3,
		EnvVar: "VERBOSITY",
	}
)

// Flags is the full flag set registered on the cli.App, mirroring the
// nodeFlags-slice pattern in klaytn's cmd/kcn/main.go.
var Flags = []cli.Flag{
	DatabaseURLFlag,
	CometBFTURLFlag,
	NamadaGenesisTimeFlag,
	UpgradeProposerFlag,
	V0ToV1UpgradeEpochFlag,
	V1ToV2UpgradeEpochFlag,
	SleepDurationFlag,
	VerbosityFlag,
}
