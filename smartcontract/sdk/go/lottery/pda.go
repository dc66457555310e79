package lottery

import (
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
)

// createProgramAddress is swapped out in tests to exercise exhaustion.
var createProgramAddress = solana.CreateProgramAddress

// FindProgramAddress searches bump seeds from 255 down to 0 and returns the first
// candidate address that is off the ed25519 curve.
func FindProgramAddress(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return solana.PublicKey{}, 0, fmt.Errorf("%w: %d seeds exceeds max %d", ErrInvalidArgument, len(seeds), MaxSeeds-1)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return solana.PublicKey{}, 0, fmt.Errorf("%w: seed %d length %d exceeds max %d", ErrInvalidArgument, i, len(seed), MaxSeedLength)
		}
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := math.MaxUint8; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		address, err := createProgramAddress(withBump, programID)
		if err == nil {
			return address, uint8(bump), nil
		}
	}
	return solana.PublicKey{}, 0, fmt.Errorf("%w: program %s", ErrNoValidAddress, programID)
}

// DeriveLotteryStatePDA derives the PDA for the LotteryState singleton.
// Seeds: ["lottery"]
func DeriveLotteryStatePDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		[]byte(LotteryStateSeed),
	}
	return FindProgramAddress(seeds, programID)
}

// DeriveUserTicketPDA derives the PDA for a participant's ticket account.
// Seeds: ["user_ticket", owner]
func DeriveUserTicketPDA(programID solana.PublicKey, owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	if owner.IsZero() {
		return solana.PublicKey{}, 0, fmt.Errorf("%w: owner is required", ErrInvalidArgument)
	}
	seeds := [][]byte{
		[]byte(UserTicketSeed),
		owner[:],
	}
	return FindProgramAddress(seeds, programID)
}

// DeriveUserReferralPDA derives the PDA for a participant's referral account.
// Seeds: ["user_referral", owner]
func DeriveUserReferralPDA(programID solana.PublicKey, owner solana.PublicKey) (solana.PublicKey, uint8, error) {
	if owner.IsZero() {
		return solana.PublicKey{}, 0, fmt.Errorf("%w: owner is required", ErrInvalidArgument)
	}
	seeds := [][]byte{
		[]byte(UserReferralSeed),
		owner[:],
	}
	return FindProgramAddress(seeds, programID)
}
