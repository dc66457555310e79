package exporter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/jonboulle/clockwork"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
)

const defaultMaxConcurrency = 8

var (
	ErrLoggerRequired   = errors.New("logger is required")
	ErrLotteryRequired  = errors.New("lottery client is required")
	ErrIntervalRequired = errors.New("interval is required")
	ErrWalletInvalid    = errors.New("tracked wallet is invalid")
)

type LotteryClient interface {
	ProgramID() solana.PublicKey
	GetLotteryState(ctx context.Context) (*lottery.LotteryState, error)
	GetReferralAccount(ctx context.Context, owner solana.PublicKey) (*lottery.ReferralAccount, bool, error)
	GetUserTicketAccount(ctx context.Context, owner solana.PublicKey) (*lottery.UserTicketAccount, bool, error)
}

type Config struct {
	Logger   *slog.Logger
	Lottery  LotteryClient
	Clock    clockwork.Clock
	Interval time.Duration

	// MaxConcurrency bounds the account reads in flight during a tick.
	MaxConcurrency int

	// TrackedWallets get per-wallet referral and ticket gauges.
	TrackedWallets []solana.PublicKey
}

func (c *Config) Validate() error {
	if c.Logger == nil {
		return ErrLoggerRequired
	}
	if c.Lottery == nil {
		return ErrLotteryRequired
	}
	if c.Interval <= 0 {
		return ErrIntervalRequired
	}
	for _, wallet := range c.TrackedWallets {
		if wallet.IsZero() {
			return ErrWalletInvalid
		}
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = defaultMaxConcurrency
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	return nil
}
