package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SolanaConfig mirrors the Solana CLI configuration file
// (~/.config/solana/cli/config.yml).
type SolanaConfig struct {
	JSONRPCURL  string `yaml:"json_rpc_url"`
	KeypairPath string `yaml:"keypair_path"`
	Commitment  string `yaml:"commitment"`
}

// LoadSolanaConfig reads a Solana CLI config file.
func LoadSolanaConfig(path string) (*SolanaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read solana config: %w", err)
	}
	var cfg SolanaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse solana config: %w", err)
	}
	if cfg.JSONRPCURL == "" {
		return nil, missingField("json_rpc_url")
	}
	return &cfg, nil
}

// Env bundles the cluster settings with a validated campaign configuration
// for downstream collaborators. RPC dispatch and signing live elsewhere.
type Env struct {
	Solana *SolanaConfig
	Config *ConfigData
}
