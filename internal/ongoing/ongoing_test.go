package ongoing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namada-testnet/score-extractor/internal/schema"
)

func TestGovernanceTasksFor_BelowThreshold(t *testing.T) {
	assert.Empty(t, governanceTasksFor(0.89))
	assert.Empty(t, governanceTasksFor(0))
}

// 95 votes over 100 proposals earns the 90% task but not the 99% one;
// 99 votes earns both.
func TestGovernanceTasksFor_Thresholds(t *testing.T) {
	assert.Equal(t,
		[]schema.TaskType{schema.TaskKeep90PerCentGovParticipationRate},
		governanceTasksFor(0.95))
	assert.Equal(t,
		[]schema.TaskType{
			schema.TaskKeep90PerCentGovParticipationRate,
			schema.TaskKeep99PerCentGovParticipationRate,
		},
		governanceTasksFor(0.99))
}

// A duplicate-vote-inflated rate past 1.0 still just earns both tiers.
func TestGovernanceTasksFor_RateAboveOne(t *testing.T) {
	assert.Len(t, governanceTasksFor(1.05), 2)
}

func TestUptimeTasksFor_Thresholds(t *testing.T) {
	assert.Empty(t, uptimeTasksFor(0.949))
	assert.Equal(t,
		[]schema.TaskType{schema.TaskKeep95PerCentUptime},
		uptimeTasksFor(0.95))
	assert.Equal(t,
		[]schema.TaskType{schema.TaskKeep95PerCentUptime, schema.TaskKeep99PerCentUptime},
		uptimeTasksFor(0.995))
}
