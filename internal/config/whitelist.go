package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"candy-machine-cli/internal/candymachine"
	"candy-machine-cli/internal/solana"
)

// WhitelistMintMode controls what happens to a whitelist token on mint.
type WhitelistMintMode string

const (
	BurnEveryTime WhitelistMintMode = "burnEveryTime"
	NeverBurn     WhitelistMintMode = "neverBurn"
)

// ParseWhitelistMintMode matches the token case-insensitively against the
// closed set of whitelist modes.
func ParseWhitelistMintMode(s string) (WhitelistMintMode, error) {
	switch strings.ToLower(s) {
	case "burneverytime":
		return BurnEveryTime, nil
	case "neverburn":
		return NeverBurn, nil
	default:
		return "", fmt.Errorf("%w: whitelist mint mode %q", ErrUnknownEnumValue, s)
	}
}

func (m *WhitelistMintMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: whitelistMintSettings.mode must be a string", ErrTypeMismatch)
	}
	parsed, err := ParseWhitelistMintMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// WhitelistMintSettings restricts or discounts minting for holders of a
// whitelist token.
type WhitelistMintSettings struct {
	Mode    WhitelistMintMode
	Mint    solana.PublicKey
	Presale bool
	// DiscountPrice stays in user units until translation.
	DiscountPrice *float64
}

func (w *WhitelistMintSettings) UnmarshalJSON(data []byte) error {
	var raw struct {
		Mode          *WhitelistMintMode `json:"mode"`
		Mint          *string            `json:"mint"`
		Presale       *bool              `json:"presale"`
		DiscountPrice *float64           `json:"discountPrice"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return wrapDecodeErr(err)
	}
	if raw.Mode == nil {
		return missingField("whitelistMintSettings.mode")
	}
	if raw.Mint == nil {
		return missingField("whitelistMintSettings.mint")
	}
	if raw.Presale == nil {
		return missingField("whitelistMintSettings.presale")
	}
	mint, err := solana.ParsePubkey(*raw.Mint)
	if err != nil {
		return err
	}
	w.Mode = *raw.Mode
	w.Mint = mint
	w.Presale = *raw.Presale
	w.DiscountPrice = raw.DiscountPrice
	return nil
}

// IntoCandyFormat translates to the program's argument shape, converting the
// discount price to lamports with the same rule as the campaign price.
func (w *WhitelistMintSettings) IntoCandyFormat() candymachine.WhitelistMintSettings {
	var mode candymachine.WhitelistMintMode
	switch w.Mode {
	case BurnEveryTime:
		mode = candymachine.BurnEveryTime
	case NeverBurn:
		mode = candymachine.NeverBurn
	}

	var discount *uint64
	if w.DiscountPrice != nil {
		lamports := solana.SOLToLamports(*w.DiscountPrice)
		discount = &lamports
	}

	return candymachine.WhitelistMintSettings{
		Mode:          mode,
		Mint:          w.Mint,
		Presale:       w.Presale,
		DiscountPrice: discount,
	}
}
