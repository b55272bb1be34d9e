package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namada-testnet/score-extractor/internal/schema"
)

func TestShareOf_TruncatesNotRounds(t *testing.T) {
	pl := relative(100)
	assert.Equal(t, int64(33), shareOf(pl, 3))
}

func TestShareOf_ZeroCompletersIsZero(t *testing.T) {
	assert.Equal(t, int64(0), shareOf(relative(100), 0))
}

func TestShareOf_FixedUsesPopulationNotCompleterCount(t *testing.T) {
	pl, ok := poolFor(schema.PlayerKindCrew, schema.TaskDelegateStakeOnV0)
	assert.True(t, ok)
	withOneCompleter := shareOf(pl, 1)
	withPopulation := shareOf(pl, populationOf(schema.PlayerKindCrew))
	assert.NotEqual(t, withOneCompleter, withPopulation)
}

func TestPopulationOf(t *testing.T) {
	assert.Equal(t, NumberCrewMembers, populationOf(schema.PlayerKindCrew))
	assert.Equal(t, NumberPilots, populationOf(schema.PlayerKindPilot))
}

// TestFixedPoolAward_DelegateStakeOnV0 locks in concrete scenario 4
// (spec.md §8): each crew completer of DelegateStakeOnV0 receives
// exactly 331,614 points, floor-divided across the whole crew population
// regardless of how many actually completed it.
func TestFixedPoolAward_DelegateStakeOnV0(t *testing.T) {
	pl, ok := poolFor(schema.PlayerKindCrew, schema.TaskDelegateStakeOnV0)
	require := assert.New(t)
	require.True(ok)
	require.Equal(int64(331614), shareOf(pl, NumberCrewMembers))
}
