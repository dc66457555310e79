package lottery_test

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/stretchr/testify/require"
)

type role struct {
	key      solana.PublicKey
	signer   bool
	writable bool
}

func requireRoles(t *testing.T, instr solana.Instruction, want []role) {
	t.Helper()
	accounts := instr.Accounts()
	require.Len(t, accounts, len(want))
	for i, w := range want {
		require.Equal(t, w.key, accounts[i].PublicKey, "account %d key", i)
		require.Equal(t, w.signer, accounts[i].IsSigner, "account %d signer", i)
		require.Equal(t, w.writable, accounts[i].IsWritable, "account %d writable", i)
	}
}

func derivePDAs(t *testing.T, programID, owner solana.PublicKey) (state, ticket, referral solana.PublicKey) {
	t.Helper()
	var err error
	state, _, err = lottery.DeriveLotteryStatePDA(programID)
	require.NoError(t, err)
	ticket, _, err = lottery.DeriveUserTicketPDA(programID, owner)
	require.NoError(t, err)
	referral, _, err = lottery.DeriveUserReferralPDA(programID, owner)
	require.NoError(t, err)
	return state, ticket, referral
}

func TestSDK_Lottery_BuildBuyTicketsInstruction_NoReferral(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	payer := solana.NewWallet().PublicKey()

	instr, err := lottery.BuildBuyTicketsInstruction(programID, lottery.BuyTicketsInstructionConfig{
		Payer:       payer,
		TicketCount: 5,
	})
	require.NoError(t, err)
	require.Equal(t, programID, instr.ProgramID())

	data, err := instr.Data()
	require.NoError(t, err)
	require.Len(t, data, 9)
	require.Equal(t, byte(lottery.BuyTicketsInstructionIndex), data[0])
	require.Equal(t, uint64(5), binary.LittleEndian.Uint64(data[1:]))

	state, ticket, referral := derivePDAs(t, programID, payer)
	requireRoles(t, instr, []role{
		{state, false, true},
		{ticket, false, true},
		{referral, false, true},
		{payer, true, true},
		{solana.SystemProgramID, false, false},
	})
}

func TestSDK_Lottery_BuildBuyTicketsInstruction_TwoLevelReferral(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	payer := solana.NewWallet().PublicKey()
	l1 := solana.NewWallet().PublicKey()
	l2 := solana.NewWallet().PublicKey()
	l1PDA := mustReferralPDA(t, programID, l1)
	l2PDA := mustReferralPDA(t, programID, l2)

	instr, err := lottery.BuildBuyTicketsInstruction(programID, lottery.BuyTicketsInstructionConfig{
		Payer:       payer,
		TicketCount: 2,
		Referrals: lottery.ReferralChain{
			{Referrer: l1, ReferralAccount: l1PDA},
			{Referrer: l2, ReferralAccount: l2PDA},
		},
	})
	require.NoError(t, err)

	state, ticket, referral := derivePDAs(t, programID, payer)
	requireRoles(t, instr, []role{
		{state, false, true},
		{ticket, false, true},
		{referral, false, true},
		{payer, true, true},
		{solana.SystemProgramID, false, false},
		{l1, false, false},
		{l1PDA, false, true},
		{l2PDA, false, true},
		{l2, false, true},
	})
}

func TestSDK_Lottery_BuildBuyTicketsInstruction_OneLevelReferral(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	payer := solana.NewWallet().PublicKey()
	l1 := solana.NewWallet().PublicKey()
	l1PDA := mustReferralPDA(t, programID, l1)

	instr, err := lottery.BuildBuyTicketsInstruction(programID, lottery.BuyTicketsInstructionConfig{
		Payer:       payer,
		TicketCount: 1,
		Referrals:   lottery.ReferralChain{{Referrer: l1, ReferralAccount: l1PDA}},
	})
	require.NoError(t, err)

	accounts := instr.Accounts()
	require.Len(t, accounts, 7)
	require.Equal(t, l1, accounts[5].PublicKey)
	require.Equal(t, l1PDA, accounts[6].PublicKey)
	require.True(t, accounts[6].IsWritable)
}

func TestSDK_Lottery_BuildBuyTicketsInstruction_InvalidConfig(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	level := lottery.ReferralLevel{Referrer: solana.NewWallet().PublicKey(), ReferralAccount: solana.NewWallet().PublicKey()}

	tests := []struct {
		name   string
		config lottery.BuyTicketsInstructionConfig
		errMsg string
	}{
		{
			name:   "zero tickets",
			config: lottery.BuyTicketsInstructionConfig{Payer: solana.NewWallet().PublicKey(), TicketCount: 0},
			errMsg: "ticket count must be positive",
		},
		{
			name:   "missing payer",
			config: lottery.BuyTicketsInstructionConfig{TicketCount: 1},
			errMsg: "payer public key is required",
		},
		{
			name: "referral chain too deep",
			config: lottery.BuyTicketsInstructionConfig{
				Payer:       solana.NewWallet().PublicKey(),
				TicketCount: 1,
				Referrals:   lottery.ReferralChain{level, level, level},
			},
			errMsg: "referral chain length 3 exceeds max 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			instr, err := lottery.BuildBuyTicketsInstruction(programID, tt.config)
			require.ErrorIs(t, err, lottery.ErrInvalidArgument)
			require.ErrorContains(t, err, tt.errMsg)
			require.Nil(t, instr)
		})
	}
}

func TestSDK_Lottery_BuildDrawInstruction(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()
	winners := [3]solana.PublicKey{
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
	}

	instr, err := lottery.BuildDrawInstruction(programID, lottery.DrawInstructionConfig{
		Authority: authority,
		Winners:   winners,
	})
	require.NoError(t, err)

	data, err := instr.Data()
	require.NoError(t, err)
	require.Equal(t, []byte{byte(lottery.DrawInstructionIndex)}, data)

	state, _, err := lottery.DeriveLotteryStatePDA(programID)
	require.NoError(t, err)
	requireRoles(t, instr, []role{
		{state, false, true},
		{authority, true, false},
		{winners[0], false, true},
		{winners[1], false, true},
		{winners[2], false, true},
		{solana.SystemProgramID, false, false},
	})
}

func TestSDK_Lottery_BuildDrawInstruction_MissingWinner(t *testing.T) {
	t.Parallel()

	_, err := lottery.BuildDrawInstruction(solana.NewWallet().PublicKey(), lottery.DrawInstructionConfig{
		Authority: solana.NewWallet().PublicKey(),
		Winners:   [3]solana.PublicKey{solana.NewWallet().PublicKey()},
	})
	require.ErrorIs(t, err, lottery.ErrInvalidArgument)
	require.ErrorContains(t, err, "winner 2 public key is required")
}

func TestSDK_Lottery_BuildWithdrawInstruction(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	instr, err := lottery.BuildWithdrawInstruction(programID, lottery.WithdrawInstructionConfig{
		Authority: authority,
		Lamports:  2_500_000_000,
	})
	require.NoError(t, err)

	data, err := instr.Data()
	require.NoError(t, err)
	require.Equal(t, byte(lottery.WithdrawInstructionIndex), data[0])
	require.Equal(t, uint64(2_500_000_000), binary.LittleEndian.Uint64(data[1:9]))

	state, _, err := lottery.DeriveLotteryStatePDA(programID)
	require.NoError(t, err)
	requireRoles(t, instr, []role{
		{state, false, true},
		{authority, true, true},
	})

	_, err = lottery.BuildWithdrawInstruction(programID, lottery.WithdrawInstructionConfig{Authority: authority})
	require.ErrorIs(t, err, lottery.ErrInvalidArgument)
}

func TestSDK_Lottery_BuildSetTicketPriceInstruction(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	instr, err := lottery.BuildSetTicketPriceInstruction(programID, lottery.SetTicketPriceInstructionConfig{
		Authority: authority,
		Lamports:  100_000_000,
	})
	require.NoError(t, err)

	data, err := instr.Data()
	require.NoError(t, err)
	require.Equal(t, byte(lottery.SetTicketPriceInstructionIndex), data[0])
	require.Equal(t, uint64(100_000_000), binary.LittleEndian.Uint64(data[1:9]))

	state, _, err := lottery.DeriveLotteryStatePDA(programID)
	require.NoError(t, err)
	requireRoles(t, instr, []role{
		{state, false, true},
		{authority, true, false},
	})
}

func TestSDK_Lottery_BuildSetTicketPriceInstruction_BelowMinimum(t *testing.T) {
	t.Parallel()

	lamports, err := lottery.SOLToLamports(0.0005)
	require.NoError(t, err)

	instr, err := lottery.BuildSetTicketPriceInstruction(solana.NewWallet().PublicKey(), lottery.SetTicketPriceInstructionConfig{
		Authority: solana.NewWallet().PublicKey(),
		Lamports:  lamports,
	})
	require.ErrorIs(t, err, lottery.ErrInvalidArgument)
	require.Nil(t, instr)
}

func TestSDK_Lottery_InstructionType_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "buy_tickets", lottery.BuyTicketsInstructionIndex.String())
	require.Equal(t, "draw", lottery.DrawInstructionIndex.String())
	require.Equal(t, "withdraw", lottery.WithdrawInstructionIndex.String())
	require.Equal(t, "set_ticket_price", lottery.SetTicketPriceInstructionIndex.String())
	require.Equal(t, "unknown", lottery.LotteryInstructionType(0).String())
}
