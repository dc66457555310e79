package lottery

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type SetTicketPriceInstructionConfig struct {
	Authority solana.PublicKey
	Lamports  uint64
}

func (c *SetTicketPriceInstructionConfig) Validate() error {
	if c.Authority.IsZero() {
		return fmt.Errorf("%w: authority public key is required", ErrInvalidArgument)
	}
	if c.Lamports < MinTicketPriceLamports {
		return fmt.Errorf("%w: ticket price %d lamports is below minimum %d", ErrInvalidArgument, c.Lamports, MinTicketPriceLamports)
	}
	return nil
}

func BuildSetTicketPriceInstruction(
	programID solana.PublicKey,
	config SetTicketPriceInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator uint8
		Lamports      uint64
	}{
		Discriminator: uint8(SetTicketPriceInstructionIndex),
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
		{PublicKey: config.Authority, IsSigner: true, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
