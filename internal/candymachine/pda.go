package candymachine

import "candy-machine-cli/internal/solana"

// ProgramID is the candy machine program address.
var ProgramID = solana.MustParsePubkey("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")

const creatorSeed = "candy_machine"

// CreatorPDA derives the creator authority address for a candy machine
// account. The program signs metadata updates with this address.
func CreatorPDA(candyMachine solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{[]byte(creatorSeed), candyMachine.Bytes()}
	return solana.FindProgramAddress(seeds, ProgramID)
}
