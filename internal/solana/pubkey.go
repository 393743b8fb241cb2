package solana

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// PublicKeyLength is the byte width of a Solana account address.
const PublicKeyLength = 32

// ErrInvalidAddress indicates a string that does not decode to a valid
// fixed-width address.
var ErrInvalidAddress = errors.New("invalid address")

// PublicKey is a fixed-width Solana account address.
type PublicKey [PublicKeyLength]byte

// ParsePubkey decodes a base58-encoded address string. It fails if the
// encoding alphabet is violated or the decoded length is not exactly
// PublicKeyLength bytes.
func ParsePubkey(s string) (PublicKey, error) {
	var pk PublicKey
	decoded, err := base58.Decode(s)
	if err != nil {
		return pk, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	if len(decoded) != PublicKeyLength {
		return pk, fmt.Errorf("%w: %q decodes to %d bytes, want %d",
			ErrInvalidAddress, s, len(decoded), PublicKeyLength)
	}
	copy(pk[:], decoded)
	return pk, nil
}

// ParseOptionalPubkey attempts the same decode as ParsePubkey but collapses
// every failure (empty string, bad alphabet, wrong width) to nil. Used only
// for optional fields where a missing or unusable value means "absent".
func ParseOptionalPubkey(s string) *PublicKey {
	pk, err := ParsePubkey(s)
	if err != nil {
		return nil
	}
	return &pk
}

// MustParsePubkey is ParsePubkey for known-good constants. Panics on error.
func MustParsePubkey(s string) PublicKey {
	pk, err := ParsePubkey(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// String returns the base58 text form of the address.
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// Bytes returns a copy of the raw 32 address bytes.
func (pk PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeyLength)
	copy(b, pk[:])
	return b
}

// IsOnCurve reports whether the address is a valid ed25519 curve point.
// Program derived addresses are intentionally off-curve.
func (pk PublicKey) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(pk[:])
	return err == nil
}
