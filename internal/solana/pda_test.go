package solana

import "testing"

func TestFindProgramAddress_Deterministic(t *testing.T) {
	program := MustParsePubkey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	seeds := [][]byte{[]byte("metadata"), program.Bytes()}

	addr1, bump1, err := FindProgramAddress(seeds, program)
	if err != nil {
		t.Fatalf("FindProgramAddress error: %v", err)
	}
	addr2, bump2, err := FindProgramAddress(seeds, program)
	if err != nil {
		t.Fatalf("FindProgramAddress error: %v", err)
	}

	if addr1 != addr2 || bump1 != bump2 {
		t.Errorf("derivation not deterministic: (%s, %d) vs (%s, %d)",
			addr1, bump1, addr2, bump2)
	}
	if addr1.IsOnCurve() {
		t.Error("derived address is on-curve")
	}
	if bump1 == 0 {
		t.Error("bump = 0, want nonzero")
	}
}

func TestFindProgramAddress_SeedsChangeAddress(t *testing.T) {
	program := MustParsePubkey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	a, _, err := FindProgramAddress([][]byte{[]byte("one")}, program)
	if err != nil {
		t.Fatalf("FindProgramAddress error: %v", err)
	}
	b, _, err := FindProgramAddress([][]byte{[]byte("two")}, program)
	if err != nil {
		t.Fatalf("FindProgramAddress error: %v", err)
	}

	if a == b {
		t.Errorf("different seeds produced the same address %s", a)
	}
}
