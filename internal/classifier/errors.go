package classifier

import "errors"

var (
	errShortMemo    = errors.New("memo is empty")
	errNotUTF8      = errors.New("memo is not valid UTF-8")
	errNotPublicKey = errors.New("memo does not parse as a player public key")
	errShortPayload = errors.New("associated data too short to decode")
)
