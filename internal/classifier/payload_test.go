package classifier

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayerID(t *testing.T) {
	id, err := ParsePlayerID([]byte("tpknam1qqw5vt6u0v9d4p3c2sxqgpq7a8l9n2k3m4j5h6g7f8"))
	require.NoError(t, err)
	assert.Equal(t, "tpknam1qqw5vt6u0v9d4p3c2sxqgpq7a8l9n2k3m4j5h6g7f8", id)
}

func TestParsePlayerID_Empty(t *testing.T) {
	_, err := ParsePlayerID(nil)
	assert.Error(t, err)
}

func TestParsePlayerID_NotUTF8(t *testing.T) {
	_, err := ParsePlayerID([]byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestParsePlayerID_WrongPrefix(t *testing.T) {
	_, err := ParsePlayerID([]byte("not-a-key"))
	assert.Error(t, err)
}

func TestParseTransferRecord(t *testing.T) {
	data := make([]byte, 2*namadaAddressLen)
	copy(data[0:], "tnam1source-address")
	copy(data[namadaAddressLen:], "tnam1target-address")

	record, err := ParseTransferRecord(data)
	require.NoError(t, err)
	assert.Equal(t, "tnam1source-address", record.Source)
	assert.Equal(t, "tnam1target-address", record.Target)
}

func TestParseTransferRecord_TooShort(t *testing.T) {
	_, err := ParseTransferRecord([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestParseVoteData(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, 385)

	vote, err := ParseVoteData(data)
	require.NoError(t, err)
	assert.Equal(t, int64(385), vote.ProposalID)
}

func TestParseVoteData_TooShort(t *testing.T) {
	_, err := ParseVoteData([]byte{1, 2})
	assert.Error(t, err)
}
