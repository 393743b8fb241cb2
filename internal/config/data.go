// Package config loads and validates token-minting campaign configuration
// documents and translates them into the candy machine program's
// instruction-argument types. Construction is single-pass and fail-fast:
// either the whole document validates or the first error aborts the load.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"candy-machine-cli/internal/candymachine"
	"candy-machine-cli/internal/solana"
)

// ConfigData is a validated campaign configuration. Values stay in the
// user's original units (SOL, RFC 3339 strings); protocol units are produced
// only at translation time. Immutable once constructed.
type ConfigData struct {
	Price              float64
	Number             uint64
	Gatekeeper         *GatekeeperConfig
	SolTreasuryAccount solana.PublicKey
	SplTokenAccount    *solana.PublicKey
	SplToken           *solana.PublicKey
	// GoLiveDate keeps the raw RFC 3339 string; it is parsed on demand so
	// a bad date only surfaces when the timestamp is actually needed.
	GoLiveDate            string
	EndSettings           *EndSettings
	WhitelistMintSettings *WhitelistMintSettings
	HiddenSettings        *HiddenSettings
	UploadMethod          UploadMethod
	RetainAuthority       bool
	IsMutable             bool
}

// ParseConfig builds a ConfigData from a raw JSON document. Field names are
// fixed by the external contract and matched case-sensitively. The first
// field-level failure (missing field, wrong shape, bad enum token, bad
// address) aborts construction; no partially built value is returned.
func ParseConfig(data []byte) (*ConfigData, error) {
	var raw struct {
		Price                 *float64               `json:"price"`
		Number                *uint64                `json:"number"`
		Gatekeeper            *GatekeeperConfig      `json:"gatekeeper"`
		SolTreasuryAccount    *string                `json:"solTreasuryAccount"`
		SplTokenAccount       json.RawMessage        `json:"splTokenAccount"`
		SplToken              json.RawMessage        `json:"splToken"`
		GoLiveDate            *string                `json:"goLiveDate"`
		EndSettings           *EndSettings           `json:"endSettings"`
		WhitelistMintSettings *WhitelistMintSettings `json:"whitelistMintSettings"`
		HiddenSettings        *HiddenSettings        `json:"hiddenSettings"`
		UploadMethod          *UploadMethod          `json:"uploadMethod"`
		RetainAuthority       *bool                  `json:"retainAuthority"`
		IsMutable             *bool                  `json:"isMutable"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, wrapDecodeErr(err)
	}

	switch {
	case raw.Price == nil:
		return nil, missingField("price")
	case raw.Number == nil:
		return nil, missingField("number")
	case raw.SolTreasuryAccount == nil:
		return nil, missingField("solTreasuryAccount")
	case raw.GoLiveDate == nil:
		return nil, missingField("goLiveDate")
	case raw.UploadMethod == nil:
		return nil, missingField("uploadMethod")
	case raw.RetainAuthority == nil:
		return nil, missingField("retainAuthority")
	case raw.IsMutable == nil:
		return nil, missingField("isMutable")
	}

	treasury, err := solana.ParsePubkey(*raw.SolTreasuryAccount)
	if err != nil {
		return nil, err
	}

	return &ConfigData{
		Price:                 *raw.Price,
		Number:                *raw.Number,
		Gatekeeper:            raw.Gatekeeper,
		SolTreasuryAccount:    treasury,
		SplTokenAccount:       optionalPubkey(raw.SplTokenAccount),
		SplToken:              optionalPubkey(raw.SplToken),
		GoLiveDate:            *raw.GoLiveDate,
		EndSettings:           raw.EndSettings,
		WhitelistMintSettings: raw.WhitelistMintSettings,
		HiddenSettings:        raw.HiddenSettings,
		UploadMethod:          *raw.UploadMethod,
		RetainAuthority:       *raw.RetainAuthority,
		IsMutable:             *raw.IsMutable,
	}, nil
}

// LoadConfig reads and validates a campaign configuration file.
func LoadConfig(path string) (*ConfigData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// optionalPubkey collapses every failure (absent field, non-string value,
// undecodable address) to nil. Optional address fields are deliberately
// lenient where required ones are strict.
func optionalPubkey(raw json.RawMessage) *solana.PublicKey {
	if raw == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return solana.ParseOptionalPubkey(s)
}

// GoLiveTimestamp parses the configured go-live date into Unix epoch
// seconds. May fail independently of construction success.
func (c *ConfigData) GoLiveTimestamp() (int64, error) {
	return solana.ParseTimestamp(c.GoLiveDate)
}

// PriceInLamports converts the campaign price to lamports.
func (c *ConfigData) PriceInLamports() uint64 {
	return solana.SOLToLamports(c.Price)
}

// IntoCandyFormat translates the configuration into the program's
// initialization arguments, converting price and go-live date to protocol
// units. The timestamp parse happens here, so translation can fail even for
// a successfully constructed configuration.
func (c *ConfigData) IntoCandyFormat() (candymachine.Data, error) {
	goLive, err := c.GoLiveTimestamp()
	if err != nil {
		return candymachine.Data{}, err
	}

	out := candymachine.Data{
		Price:           c.PriceInLamports(),
		ItemsAvailable:  c.Number,
		GoLiveDate:      goLive,
		RetainAuthority: c.RetainAuthority,
		IsMutable:       c.IsMutable,
	}
	if c.Gatekeeper != nil {
		g := c.Gatekeeper.IntoCandyFormat()
		out.Gatekeeper = &g
	}
	if c.EndSettings != nil {
		e := c.EndSettings.IntoCandyFormat()
		out.EndSettings = &e
	}
	if c.WhitelistMintSettings != nil {
		w := c.WhitelistMintSettings.IntoCandyFormat()
		out.WhitelistMintSettings = &w
	}
	if c.HiddenSettings != nil {
		h := c.HiddenSettings.IntoCandyFormat()
		out.HiddenSettings = &h
	}
	return out, nil
}
