package solana

import (
	"crypto/sha256"
	"errors"
)

const pdaMarker = "ProgramDerivedAddress"

// ErrNoViableBump indicates that no bump seed produced an off-curve address.
var ErrNoViableBump = errors.New("unable to find a viable program address bump")

// FindProgramAddress derives a Program Derived Address for the given seeds
// and program ID, searching bump seeds from 255 down for the first result
// that lands off the ed25519 curve.
func FindProgramAddress(seeds [][]byte, programID PublicKey) (PublicKey, uint8, error) {
	for bump := 255; bump > 0; bump-- {
		data := make([]byte, 0, 128)
		for _, seed := range seeds {
			data = append(data, seed...)
		}
		data = append(data, byte(bump))
		data = append(data, programID[:]...)
		data = append(data, pdaMarker...)

		hash := sha256.Sum256(data)
		pk := PublicKey(hash)
		if !pk.IsOnCurve() {
			return pk, uint8(bump), nil
		}
	}
	return PublicKey{}, 0, ErrNoViableBump
}
