package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"candy-machine-cli/internal/config"
)

// summary is the machine-readable view of a validated configuration, with
// translated protocol units alongside the user's original ones.
type summary struct {
	Price              float64 `json:"price"`
	PriceLamports      uint64  `json:"priceLamports"`
	Number             uint64  `json:"number"`
	SolTreasuryAccount string  `json:"solTreasuryAccount"`
	SplTokenAccount    string  `json:"splTokenAccount,omitempty"`
	SplToken           string  `json:"splToken,omitempty"`
	GoLiveDate         string  `json:"goLiveDate"`
	GoLiveTimestamp    int64   `json:"goLiveTimestamp"`
	UploadMethod       string  `json:"uploadMethod"`
	RetainAuthority    bool    `json:"retainAuthority"`
	IsMutable          bool    `json:"isMutable"`
	Gatekeeper         bool    `json:"gatekeeper"`
	EndSettings        bool    `json:"endSettings"`
	WhitelistMint      bool    `json:"whitelistMintSettings"`
	HiddenSettings     bool    `json:"hiddenSettings"`
	RPCURL             string  `json:"rpcUrl,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "Path to the campaign config JSON (required)")
	solanaConfigPath := flag.String("solana-config", "", "Path to the Solana CLI config YAML")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	logger := log.New(os.Stderr, "[validate] ", log.LstdFlags)

	if *configPath == "" {
		logger.Fatal("--config is required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalf("Config is invalid: %v", err)
	}

	// Translate up front so unit and timestamp problems surface here rather
	// than at instruction-build time.
	data, err := cfg.IntoCandyFormat()
	if err != nil {
		logger.Fatalf("Config is invalid: %v", err)
	}

	env := config.Env{Config: cfg}
	if *solanaConfigPath != "" {
		solCfg, err := config.LoadSolanaConfig(*solanaConfigPath)
		if err != nil {
			logger.Fatalf("Solana config is invalid: %v", err)
		}
		env.Solana = solCfg
	}

	out := summary{
		Price:           cfg.Price,
		PriceLamports:   data.Price,
		Number:          cfg.Number,
		GoLiveDate:      cfg.GoLiveDate,
		GoLiveTimestamp: data.GoLiveDate,
		UploadMethod:    string(cfg.UploadMethod),
		RetainAuthority: cfg.RetainAuthority,
		IsMutable:       cfg.IsMutable,
		Gatekeeper:      cfg.Gatekeeper != nil,
		EndSettings:     cfg.EndSettings != nil,
		WhitelistMint:   cfg.WhitelistMintSettings != nil,
		HiddenSettings:  cfg.HiddenSettings != nil,
	}
	out.SolTreasuryAccount = cfg.SolTreasuryAccount.String()
	if cfg.SplTokenAccount != nil {
		out.SplTokenAccount = cfg.SplTokenAccount.String()
	}
	if cfg.SplToken != nil {
		out.SplToken = cfg.SplToken.String()
	}
	if env.Solana != nil {
		out.RPCURL = env.Solana.JSONRPCURL
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			logger.Fatalf("Failed to encode output: %v", err)
		}
		return
	}

	fmt.Println("Config is valid.")
	fmt.Printf("  price:            %v SOL (%d lamports)\n", out.Price, out.PriceLamports)
	fmt.Printf("  number:           %d\n", out.Number)
	fmt.Printf("  treasury:         %s\n", out.SolTreasuryAccount)
	if out.SplTokenAccount != "" {
		fmt.Printf("  splTokenAccount:  %s\n", out.SplTokenAccount)
	}
	if out.SplToken != "" {
		fmt.Printf("  splToken:         %s\n", out.SplToken)
	}
	fmt.Printf("  goLiveDate:       %s (%d)\n", out.GoLiveDate, out.GoLiveTimestamp)
	fmt.Printf("  uploadMethod:     %s\n", out.UploadMethod)
	fmt.Printf("  retainAuthority:  %t\n", out.RetainAuthority)
	fmt.Printf("  isMutable:        %t\n", out.IsMutable)
	fmt.Printf("  gatekeeper:       %t\n", out.Gatekeeper)
	fmt.Printf("  endSettings:      %t\n", out.EndSettings)
	fmt.Printf("  whitelist:        %t\n", out.WhitelistMint)
	fmt.Printf("  hiddenSettings:   %t\n", out.HiddenSettings)
	if out.RPCURL != "" {
		fmt.Printf("  rpcUrl:           %s\n", out.RPCURL)
	}
}
