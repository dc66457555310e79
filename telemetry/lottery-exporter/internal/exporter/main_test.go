package exporter_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
)

type mockLottery struct {
	programID solana.PublicKey

	GetLotteryStateFunc      func(context.Context) (*lottery.LotteryState, error)
	GetReferralAccountFunc   func(context.Context, solana.PublicKey) (*lottery.ReferralAccount, bool, error)
	GetUserTicketAccountFunc func(context.Context, solana.PublicKey) (*lottery.UserTicketAccount, bool, error)

	stateCalls atomic.Int32
}

func newMockLottery(t *testing.T) *mockLottery {
	t.Helper()
	return &mockLottery{
		programID: solana.NewWallet().PublicKey(),
		GetLotteryStateFunc: func(context.Context) (*lottery.LotteryState, error) {
			return &lottery.LotteryState{}, nil
		},
		GetReferralAccountFunc: func(context.Context, solana.PublicKey) (*lottery.ReferralAccount, bool, error) {
			return nil, false, nil
		},
		GetUserTicketAccountFunc: func(context.Context, solana.PublicKey) (*lottery.UserTicketAccount, bool, error) {
			return nil, false, nil
		},
	}
}

func (m *mockLottery) ProgramID() solana.PublicKey {
	return m.programID
}

func (m *mockLottery) GetLotteryState(ctx context.Context) (*lottery.LotteryState, error) {
	m.stateCalls.Add(1)
	return m.GetLotteryStateFunc(ctx)
}

func (m *mockLottery) GetReferralAccount(ctx context.Context, owner solana.PublicKey) (*lottery.ReferralAccount, bool, error) {
	return m.GetReferralAccountFunc(ctx, owner)
}

func (m *mockLottery) GetUserTicketAccount(ctx context.Context, owner solana.PublicKey) (*lottery.UserTicketAccount, bool, error) {
	return m.GetUserTicketAccountFunc(ctx, owner)
}
