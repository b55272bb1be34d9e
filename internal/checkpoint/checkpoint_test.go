package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWindow_NoNewHeights(t *testing.T) {
	_, ok, err := computeWindow(100, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComputeWindow_CrawlerBehindCheckpoint(t *testing.T) {
	_, ok, err := computeWindow(100, 40)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComputeWindow_WithinCap(t *testing.T) {
	w, ok, err := computeWindow(100, 150)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(101), w.Starting)
	assert.Equal(t, int64(150), w.Ending)
}

func TestComputeWindow_CappedAt1000(t *testing.T) {
	w, ok, err := computeWindow(0, 5000)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), w.Starting)
	assert.Equal(t, int64(MaxHeightsPerPass), w.Ending)
}
