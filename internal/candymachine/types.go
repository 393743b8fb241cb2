// Package candymachine holds the on-chain candy machine program's
// instruction-argument types. Field layouts and enum ordinals must match the
// program's borsh encoding exactly; values are always in protocol units
// (lamports, epoch seconds, raw 32-byte addresses).
package candymachine

import "candy-machine-cli/internal/solana"

// EndSettingType discriminates the end-settings threshold. Ordinals follow
// the program's enum layout.
type EndSettingType uint8

const (
	EndSettingDate   EndSettingType = 0
	EndSettingAmount EndSettingType = 1
)

// EndSettings stops minting at a date or after a number of mints, depending
// on EndSettingType.
type EndSettings struct {
	EndSettingType EndSettingType
	Number         uint64
}

// WhitelistMintMode controls what happens to a whitelist token on mint.
// Ordinals follow the program's enum layout.
type WhitelistMintMode uint8

const (
	BurnEveryTime WhitelistMintMode = 0
	NeverBurn     WhitelistMintMode = 1
)

// WhitelistMintSettings configures whitelist-token gating for mints.
type WhitelistMintSettings struct {
	Mode          WhitelistMintMode
	Mint          solana.PublicKey
	Presale       bool
	DiscountPrice *uint64 // lamports
}

// GatekeeperConfig requires a gateway token from the given network to mint.
type GatekeeperConfig struct {
	GatekeeperNetwork solana.PublicKey
	ExpireOnUse       bool
}

// HiddenSettings holds the placeholder metadata for hide-and-reveal drops.
type HiddenSettings struct {
	Name string
	URI  string
	Hash [32]byte
}

// Data carries the candy machine initialization arguments.
type Data struct {
	Price                 uint64 // lamports
	ItemsAvailable        uint64
	GoLiveDate            int64 // epoch seconds
	Gatekeeper            *GatekeeperConfig
	EndSettings           *EndSettings
	WhitelistMintSettings *WhitelistMintSettings
	HiddenSettings        *HiddenSettings
	RetainAuthority       bool
	IsMutable             bool
}
