package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namada-testnet/score-extractor/internal/schema"
)

func TestPoolFor_CrewOnlyTask(t *testing.T) {
	pl, ok := poolFor(schema.PlayerKindCrew, schema.TaskDelegateStakeOnV0)
	assert.True(t, ok)
	assert.Equal(t, fixedShare, pl.mode)

	_, ok = poolFor(schema.PlayerKindPilot, schema.TaskDelegateStakeOnV0)
	assert.False(t, ok)
}

func TestPoolFor_PilotOnlyTask(t *testing.T) {
	pl, ok := poolFor(schema.PlayerKindPilot, schema.TaskSubmitPreGenesisBondTx)
	assert.True(t, ok)
	assert.Equal(t, relativeShare, pl.mode)
	assert.Equal(t, 10e9, pl.total)
}

func TestPoolFor_ManualTaskPricedPerKind(t *testing.T) {
	crew, ok := poolFor(schema.PlayerKindCrew, schema.TaskOperateNamadaIndexer)
	assert.True(t, ok)
	assert.Equal(t, manualTaskCrewTotal, crew.total)

	pilot, ok := poolFor(schema.PlayerKindPilot, schema.TaskOperateNamadaIndexer)
	assert.True(t, ok)
	assert.Equal(t, manualTaskPilotTotal, pilot.total)
}

func TestUnidentifiedPoolFor_UnknownHasNoPool(t *testing.T) {
	_, ok := unidentifiedPoolFor(schema.PlayerKindCrew, schema.TxUnknown)
	assert.False(t, ok)
}

func TestUnidentifiedPoolFor_SplitsEquallyAcrossKinds(t *testing.T) {
	crew, ok := unidentifiedPoolFor(schema.PlayerKindCrew, schema.TxBond)
	assert.True(t, ok)
	assert.InDelta(t, 300e9/26.0, crew.total, 1e-6)

	pilot, ok := unidentifiedPoolFor(schema.PlayerKindPilot, schema.TxBond)
	assert.True(t, ok)
	assert.InDelta(t, 250e9/26.0, pilot.total, 1e-6)
}

func TestNumTxKinds(t *testing.T) {
	assert.Equal(t, float64(26), numTxKinds)
}
