package lottery

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type WithdrawInstructionConfig struct {
	Authority solana.PublicKey
	Lamports  uint64
}

func (c *WithdrawInstructionConfig) Validate() error {
	if c.Authority.IsZero() {
		return fmt.Errorf("%w: authority public key is required", ErrInvalidArgument)
	}
	if c.Lamports == 0 {
		return fmt.Errorf("%w: withdraw amount must be positive", ErrInvalidArgument)
	}
	return nil
}

func BuildWithdrawInstruction(
	programID solana.PublicKey,
	config WithdrawInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator uint8
		Lamports      uint64
	}{
		Discriminator: uint8(WithdrawInstructionIndex),
		Lamports:      config.Lamports,
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
		{PublicKey: config.Authority, IsSigner: true, IsWritable: true},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
