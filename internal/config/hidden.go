package config

import (
	"encoding/json"
	"fmt"

	"candy-machine-cli/internal/candymachine"
)

// HiddenHashLength is the required byte width of the reveal hash.
const HiddenHashLength = 32

// HiddenSettings holds the placeholder metadata for hide-and-reveal drops.
// Only the hash length is validated; whether it digests anything real is
// settled at reveal time.
type HiddenSettings struct {
	Name string
	URI  string
	Hash [HiddenHashLength]byte
}

func (h *HiddenSettings) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name *string `json:"name"`
		URI  *string `json:"uri"`
		Hash []int   `json:"hash"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return wrapDecodeErr(err)
	}
	if raw.Name == nil {
		return missingField("hiddenSettings.name")
	}
	if raw.URI == nil {
		return missingField("hiddenSettings.uri")
	}
	if raw.Hash == nil {
		return missingField("hiddenSettings.hash")
	}
	if len(raw.Hash) != HiddenHashLength {
		return fmt.Errorf("%w: hiddenSettings.hash has %d bytes, want %d",
			ErrInvalidFixedLength, len(raw.Hash), HiddenHashLength)
	}
	h.Name = *raw.Name
	h.URI = *raw.URI
	for i, b := range raw.Hash {
		if b < 0 || b > 255 {
			return fmt.Errorf("%w: hiddenSettings.hash[%d]: %d is not a byte",
				ErrTypeMismatch, i, b)
		}
		h.Hash[i] = byte(b)
	}
	return nil
}

// IntoCandyFormat translates to the program's argument shape.
func (h *HiddenSettings) IntoCandyFormat() candymachine.HiddenSettings {
	return candymachine.HiddenSettings{
		Name: h.Name,
		URI:  h.URI,
		Hash: h.Hash,
	}
}
