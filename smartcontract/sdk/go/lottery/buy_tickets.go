package lottery

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type BuyTicketsInstructionConfig struct {
	Payer       solana.PublicKey
	TicketCount uint64
	Referrals   ReferralChain
}

func (c *BuyTicketsInstructionConfig) Validate() error {
	if c.Payer.IsZero() {
		return fmt.Errorf("%w: payer public key is required", ErrInvalidArgument)
	}
	if c.TicketCount == 0 {
		return fmt.Errorf("%w: ticket count must be positive", ErrInvalidArgument)
	}
	if len(c.Referrals) > MaxReferralLevels {
		return fmt.Errorf("%w: referral chain length %d exceeds max %d", ErrInvalidArgument, len(c.Referrals), MaxReferralLevels)
	}
	return nil
}

// BuildBuyTicketsInstruction builds a buy_tickets instruction. The referral
// chain, when present, is appended after the system program as
// [l1, l1 referral PDA] then [l2 referral PDA, l2].
func BuildBuyTicketsInstruction(
	programID solana.PublicKey,
	config BuyTicketsInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator uint8
		TicketCount   uint64
	}{
		Discriminator: uint8(BuyTicketsInstructionIndex),
		TicketCount:   config.TicketCount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	statePDA, _, err := DeriveLotteryStatePDA(programID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive lottery state PDA: %w", err)
	}
	ticketPDA, _, err := DeriveUserTicketPDA(programID, config.Payer)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user ticket PDA: %w", err)
	}
	referralPDA, _, err := DeriveUserReferralPDA(programID, config.Payer)
	if err != nil {
		return nil, fmt.Errorf("failed to derive user referral PDA: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: statePDA, IsSigner: false, IsWritable: true},
		{PublicKey: ticketPDA, IsSigner: false, IsWritable: true},
		{PublicKey: referralPDA, IsSigner: false, IsWritable: true},
		{PublicKey: config.Payer, IsSigner: true, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}
	if l1, ok := config.Referrals.L1(); ok {
		accounts = append(accounts,
			&solana.AccountMeta{PublicKey: l1.Referrer, IsSigner: false, IsWritable: false},
			&solana.AccountMeta{PublicKey: l1.ReferralAccount, IsSigner: false, IsWritable: true},
		)
	}
	if l2, ok := config.Referrals.L2(); ok {
		accounts = append(accounts,
			&solana.AccountMeta{PublicKey: l2.ReferralAccount, IsSigner: false, IsWritable: true},
			&solana.AccountMeta{PublicKey: l2.Referrer, IsSigner: false, IsWritable: true},
		)
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
