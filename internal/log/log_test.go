package log

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "CRIT", LvlCrit.String())
	assert.Equal(t, "TRACE", LvlTrace.String())
}

func TestWrite_RespectsMaxLevel(t *testing.T) {
	var buf strings.Builder
	SetOutput(&buf)
	SetMaxLevel(LvlWarn)
	defer SetMaxLevel(LvlInfo)

	logger := NewModuleLogger("test")
	logger.Info("should be dropped")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNew_CarriesStaticContext(t *testing.T) {
	var buf strings.Builder
	SetOutput(&buf)
	SetMaxLevel(LvlInfo)

	base := NewModuleLogger("test")
	child := base.New("request_id", "abc123")
	child.Info("handled")

	require.Contains(t, buf.String(), "handled")
	assert.Contains(t, buf.String(), "request_id=abc123")
}
