// Package metrics defines the process-wide gauges and counters,
// grounded on chaindata_fetcher.go's use of github.com/rcrowley/go-metrics
// (checkpointGauge, handledBlockNumberGauge, retryCounter, etc.), adapted
// to the scoring pass's own progress signals.
package metrics

import "github.com/rcrowley/go-metrics"

var (
	// PassDurationGauge is the wall-clock duration, in milliseconds, of
	// the most recently completed pass.
	PassDurationGauge = metrics.NewRegisteredGauge("scoreextractor/pass/duration_ms", nil)
	// HeightsProcessedGauge is the number of block heights ingested in
	// the most recently completed pass.
	HeightsProcessedGauge = metrics.NewRegisteredGauge("scoreextractor/ingest/heights_processed", nil)
	// CheckpointGauge is the current task_completion_state height,
	// mirroring chaindata_fetcher.go's own checkpointGauge.
	CheckpointGauge = metrics.NewRegisteredGauge("scoreextractor/ingest/checkpoint", nil)
	// PlayersScoredGauge is the count of players with a nonzero score
	// after the most recent scoring phase.
	PlayersScoredGauge = metrics.NewRegisteredGauge("scoreextractor/score/players_scored", nil)
	// PassFailureCounter increments every time a phase rolls back.
	PassFailureCounter = metrics.NewRegisteredCounter("scoreextractor/pass/failures", nil)
	// PassSuccessCounter increments every time all three phases commit.
	PassSuccessCounter = metrics.NewRegisteredCounter("scoreextractor/pass/successes", nil)
)
