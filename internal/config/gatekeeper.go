package config

import (
	"encoding/json"

	"candy-machine-cli/internal/candymachine"
	"candy-machine-cli/internal/solana"
)

// GatekeeperConfig gates minting behind a gateway token from a given network.
type GatekeeperConfig struct {
	// The gateway network whose token is required to mint.
	GatekeeperNetwork solana.PublicKey
	// Whether the gateway token expires after a single mint. The network
	// must support expiration if true.
	ExpireOnUse bool
}

func (g *GatekeeperConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		GatekeeperNetwork *string `json:"gatekeeper_network"`
		ExpireOnUse       *bool   `json:"expire_on_use"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return wrapDecodeErr(err)
	}
	if raw.GatekeeperNetwork == nil {
		return missingField("gatekeeper.gatekeeper_network")
	}
	if raw.ExpireOnUse == nil {
		return missingField("gatekeeper.expire_on_use")
	}
	network, err := solana.ParsePubkey(*raw.GatekeeperNetwork)
	if err != nil {
		return err
	}
	g.GatekeeperNetwork = network
	g.ExpireOnUse = *raw.ExpireOnUse
	return nil
}

// IntoCandyFormat translates to the program's argument shape.
func (g *GatekeeperConfig) IntoCandyFormat() candymachine.GatekeeperConfig {
	return candymachine.GatekeeperConfig{
		GatekeeperNetwork: g.GatekeeperNetwork,
		ExpireOnUse:       g.ExpireOnUse,
	}
}
