package solana

import "github.com/shopspring/decimal"

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

// ToSubunits converts a human-denominated amount into integer subunits of
// the native currency, truncating toward zero. Amounts strictly below one
// subunit convert to 0. Negative amounts clamp to 0; sign validation is
// owned by the on-chain program.
func ToSubunits(amount float64, unitsPerWhole uint64) uint64 {
	sub := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromUint64(unitsPerWhole)).
		Truncate(0)
	if sub.Sign() < 0 {
		return 0
	}
	return sub.BigInt().Uint64()
}

// SOLToLamports converts a SOL amount to lamports.
func SOLToLamports(sol float64) uint64 {
	return ToSubunits(sol, LamportsPerSOL)
}
