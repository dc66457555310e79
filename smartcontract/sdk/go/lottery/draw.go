package lottery

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type DrawInstructionConfig struct {
	Authority solana.PublicKey
	Winners   [3]solana.PublicKey
}

func (c *DrawInstructionConfig) Validate() error {
	if c.Authority.IsZero() {
		return fmt.Errorf("%w: authority public key is required", ErrInvalidArgument)
	}
	for i, winner := range c.Winners {
		if winner.IsZero() {
			return fmt.Errorf("%w: winner %d public key is required", ErrInvalidArgument, i+1)
		}
	}
	return nil
}

func BuildDrawInstruction(
	programID solana.PublicKey,
	config DrawInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator uint8
	}{
		Discriminator: uint8(DrawInstructionIndex),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	statePDA, _, err := DeriveLotteryStatePDA(programID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive lottery state PDA: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: statePDA, IsSigner: false, IsWritable: true},
		{PublicKey: config.Authority, IsSigner: true, IsWritable: false},
		{PublicKey: config.Winners[0], IsSigner: false, IsWritable: true},
		{PublicKey: config.Winners[1], IsSigner: false, IsWritable: true},
		{PublicKey: config.Winners[2], IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
