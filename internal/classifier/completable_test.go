package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namada-testnet/score-extractor/internal/schema"
)

func TestEligibleFor_CrewOnlyTask(t *testing.T) {
	assert.True(t, eligibleFor(schema.TaskDelegateStakeOnV0, schema.PlayerKindCrew))
	assert.False(t, eligibleFor(schema.TaskDelegateStakeOnV0, schema.PlayerKindPilot))
}

func TestEligibleFor_PilotOnlyTask(t *testing.T) {
	assert.True(t, eligibleFor(schema.TaskInValidatorSetFor1Epoch, schema.PlayerKindPilot))
	assert.False(t, eligibleFor(schema.TaskInValidatorSetFor1Epoch, schema.PlayerKindCrew))
}

func TestEligibleFor_ManualTaskEitherKind(t *testing.T) {
	assert.True(t, eligibleFor(schema.TaskProvidePublicRpcEndpoint, schema.PlayerKindCrew))
	assert.True(t, eligibleFor(schema.TaskProvidePublicRpcEndpoint, schema.PlayerKindPilot))
}

func TestUnidentifiedEligibility_UnknownIsNoOne(t *testing.T) {
	assert.Equal(t, NoOne, unidentifiedEligibility(schema.TxUnknown))
}

func TestUnidentifiedEligibility_OtherKindsDependOnPlayerKind(t *testing.T) {
	assert.Equal(t, DependsOnPlayerKind, unidentifiedEligibility(schema.TxBond))
	assert.Equal(t, DependsOnPlayerKind, unidentifiedEligibility(schema.TxIbcTransparentTransfer))
}

func TestDowngrade_IneligibleIdentifiedTaskBecomesUnidentified(t *testing.T) {
	o := downgrade(Outcome{
		Identified: true,
		Task:       schema.TaskDelegateStakeOnV0,
		TxKind:     schema.TxBond,
		PlayerID:   "p1",
	}, schema.PlayerKindPilot)

	assert.False(t, o.Identified)
	assert.False(t, o.None)
	assert.Equal(t, schema.TxBond, o.TxKind)
	assert.Equal(t, "p1", o.PlayerID)
}

func TestDowngrade_EligibleIdentifiedTaskPassesThrough(t *testing.T) {
	o := downgrade(Outcome{
		Identified: true,
		Task:       schema.TaskDelegateStakeOnV0,
		PlayerID:   "p1",
	}, schema.PlayerKindCrew)

	assert.True(t, o.Identified)
	assert.Equal(t, schema.TaskDelegateStakeOnV0, o.Task)
}

func TestDowngrade_UnknownTxKindBecomesNone(t *testing.T) {
	o := downgrade(Outcome{
		Identified: false,
		TxKind:     schema.TxUnknown,
		PlayerID:   "p1",
	}, schema.PlayerKindCrew)

	assert.True(t, o.None)
}
