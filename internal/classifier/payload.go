package classifier

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"github.com/namada-testnet/score-extractor/internal/corerr"
)

// namadaAddressLen is the fixed length of a bech32m-encoded Namada
// address (e.g. "tnam1..."), used to size the fixed-width records below.
const namadaAddressLen = 45

// ParsePlayerID decodes a transaction memo into a player id. The
// original source validates the memo both as UTF-8 and as a parseable
// Namada public key (shared/src/player.rs's PlayerId: TryFrom<RawMemo>);
// we require UTF-8 and the "tpknam1" public-key prefix Namada uses, a
// cheap proxy for the same check that does not require a full key-parsing
// library we have no pack grounding for.
func ParsePlayerID(memo []byte) (string, error) {
	if len(memo) == 0 {
		return "", corerr.Wrap(corerr.ClassDeserialization, errShortMemo, "parse player id")
	}
	if !utf8.Valid(memo) {
		return "", corerr.Wrap(corerr.ClassDeserialization, errNotUTF8, "parse player id")
	}
	s := strings.TrimSpace(string(memo))
	if !strings.HasPrefix(s, "tpknam1") {
		return "", corerr.Wrap(corerr.ClassDeserialization, errNotPublicKey, "parse player id")
	}
	return s, nil
}

// TransferRecord is the (source, target) pair the classifier needs out
// of a shielded-transfer transaction's associated data, modeled as a
// fixed-width binary record since borsh decoding itself is outside the
// pack's grounding (SPEC_FULL.md: "Borsh-equivalent payload parsing").
type TransferRecord struct {
	Source string
	Target string
}

// ParseTransferRecord decodes two back-to-back fixed-length address
// strings out of raw transfer associated_data.
func ParseTransferRecord(data []byte) (TransferRecord, error) {
	const want = 2 * namadaAddressLen
	if len(data) < want {
		return TransferRecord{}, corerr.Wrap(corerr.ClassDeserialization, errShortPayload, "parse transfer record")
	}
	source := trimAddress(data[0:namadaAddressLen])
	target := trimAddress(data[namadaAddressLen : 2*namadaAddressLen])
	return TransferRecord{Source: source, Target: target}, nil
}

// VoteData is the proposal id a ProposalVote transaction's associated
// data references, stored little-endian per the original's borsh
// encoding convention.
type VoteData struct {
	ProposalID int64
}

// ParseVoteData decodes an 8-byte little-endian proposal id.
func ParseVoteData(data []byte) (VoteData, error) {
	if len(data) < 8 {
		return VoteData{}, corerr.Wrap(corerr.ClassDeserialization, errShortPayload, "parse vote data")
	}
	id := int64(binary.LittleEndian.Uint64(data[0:8]))
	return VoteData{ProposalID: id}, nil
}

func trimAddress(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
