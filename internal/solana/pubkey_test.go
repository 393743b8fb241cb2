package solana

import (
	"bytes"
	"errors"
	"testing"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

const (
	wsolMint      = "So11111111111111111111111111111111111111112"
	systemProgram = "11111111111111111111111111111111"
)

func TestParsePubkey_RoundTrip(t *testing.T) {
	for _, addr := range []string{wsolMint, systemProgram} {
		pk, err := ParsePubkey(addr)
		if err != nil {
			t.Fatalf("ParsePubkey(%q) error: %v", addr, err)
		}
		if got := pk.String(); got != addr {
			t.Errorf("round trip: got %q, want %q", got, addr)
		}
	}
}

func TestParsePubkey_RecoversBytes(t *testing.T) {
	raw := make([]byte, PublicKeyLength)
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	encoded := base58.Encode(raw)

	pk, err := ParsePubkey(encoded)
	if err != nil {
		t.Fatalf("ParsePubkey(%q) error: %v", encoded, err)
	}
	if !bytes.Equal(pk.Bytes(), raw) {
		t.Errorf("decoded bytes = %x, want %x", pk.Bytes(), raw)
	}
}

func TestParsePubkey_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad alphabet", "not-a-valid-address"},
		{"too short", "abc"},
		{"too long", wsolMint + wsolMint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePubkey(tt.input)
			if err == nil {
				t.Fatalf("ParsePubkey(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, ErrInvalidAddress) {
				t.Errorf("error = %v, want ErrInvalidAddress", err)
			}
		})
	}
}

func TestParseOptionalPubkey(t *testing.T) {
	if got := ParseOptionalPubkey(""); got != nil {
		t.Errorf("ParseOptionalPubkey(\"\") = %v, want nil", got)
	}
	if got := ParseOptionalPubkey("not-a-valid-address"); got != nil {
		t.Errorf("ParseOptionalPubkey(invalid) = %v, want nil", got)
	}

	got := ParseOptionalPubkey(wsolMint)
	if got == nil {
		t.Fatal("ParseOptionalPubkey(valid) = nil, want address")
	}
	if got.String() != wsolMint {
		t.Errorf("ParseOptionalPubkey(valid) = %s, want %s", got, wsolMint)
	}
}

func TestPublicKey_IsOnCurve(t *testing.T) {
	// An ed25519 curve point is on-curve by construction.
	var onCurve PublicKey
	copy(onCurve[:], edwards25519.NewGeneratorPoint().Bytes())
	if !onCurve.IsOnCurve() {
		t.Error("generator point reported off-curve")
	}

	// PDAs are off-curve by construction.
	program := MustParsePubkey(wsolMint)
	pda, _, err := FindProgramAddress([][]byte{[]byte("seed")}, program)
	if err != nil {
		t.Fatalf("FindProgramAddress error: %v", err)
	}
	if pda.IsOnCurve() {
		t.Error("derived program address reported on-curve")
	}
}
