package exporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/malbeclabs/lottery/telemetry/lottery-exporter/internal/metrics"
)

type Exporter struct {
	cfg       Config
	programID string
	pool      pond.Pool
}

func New(cfg Config) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Logger = cfg.Logger.With("programID", cfg.Lottery.ProgramID())
	return &Exporter{
		cfg:       cfg,
		programID: cfg.Lottery.ProgramID().String(),
		pool:      pond.NewPool(cfg.MaxConcurrency),
	}, nil
}

// Run ticks once immediately and then every interval until ctx is done.
func (e *Exporter) Run(ctx context.Context) error {
	e.cfg.Logger.Info("Starting lottery exporter", "interval", e.cfg.Interval, "trackedWallets", len(e.cfg.TrackedWallets))

	ticker := e.cfg.Clock.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	if err := e.Tick(ctx); err != nil {
		e.cfg.Logger.Error("Failed to tick", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			e.cfg.Logger.Info("Lottery exporter stopped by context", "error", ctx.Err())
			return nil
		case <-ticker.Chan():
			if err := e.Tick(ctx); err != nil {
				e.cfg.Logger.Error("Failed to tick", "error", err)
			}
		}
	}
}

// Tick refreshes every gauge. A failing tracked wallet does not stop the others.
func (e *Exporter) Tick(ctx context.Context) error {
	start := e.cfg.Clock.Now()
	defer func() {
		metrics.TickDuration.Observe(e.cfg.Clock.Since(start).Seconds())
	}()

	errs := make([]error, len(e.cfg.TrackedWallets)+1)
	group := e.pool.NewGroup()
	group.Submit(func() {
		errs[0] = e.exportState(ctx)
	})
	for i, wallet := range e.cfg.TrackedWallets {
		group.Submit(func() {
			errs[i+1] = e.exportWallet(ctx, wallet)
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("failed to wait for exports: %w", err)
	}
	return errors.Join(errs...)
}

func (e *Exporter) exportState(ctx context.Context) error {
	state, err := e.cfg.Lottery.GetLotteryState(ctx)
	if err != nil {
		metrics.Errors.WithLabelValues(metrics.ErrorTypeGetLotteryState).Inc()
		return fmt.Errorf("failed to get lottery state: %w", err)
	}

	metrics.PoolSOL.WithLabelValues(e.programID).Set(lottery.LamportsToSOL(state.NetPool))
	metrics.TicketCount.WithLabelValues(e.programID).Set(float64(state.TicketCount))
	metrics.TicketPriceSOL.WithLabelValues(e.programID).Set(lottery.LamportsToSOL(state.TicketPrice))
	metrics.LastDrawTimestamp.WithLabelValues(e.programID).Set(float64(state.LastDraw))
	processing := 0.0
	if state.Processing {
		processing = 1
		e.cfg.Logger.Warn("Lottery draw in progress, state may be stale")
	}
	metrics.DrawInProgress.WithLabelValues(e.programID).Set(processing)

	e.cfg.Logger.Debug("Exported lottery state", "pool", lottery.FormatSOL(state.NetPool), "tickets", state.TicketCount, "price", lottery.FormatSOL(state.TicketPrice))
	return nil
}

func (e *Exporter) exportWallet(ctx context.Context, wallet solana.PublicKey) error {
	label := wallet.String()

	referral, found, err := e.cfg.Lottery.GetReferralAccount(ctx, wallet)
	if err != nil {
		metrics.Errors.WithLabelValues(metrics.ErrorTypeGetReferralAccount).Inc()
		return fmt.Errorf("failed to get referral account for %s: %w", label, err)
	}
	if !found {
		referral = &lottery.ReferralAccount{}
	}
	metrics.ReferralEarningsSOL.WithLabelValues(e.programID, label).Set(lottery.LamportsToSOL(referral.Earnings))
	metrics.Referrals.WithLabelValues(e.programID, label, metrics.LevelL1).Set(float64(referral.L1Referrals))
	metrics.Referrals.WithLabelValues(e.programID, label, metrics.LevelL2).Set(float64(referral.L2Referrals))
	metrics.ReferralVolumeSOL.WithLabelValues(e.programID, label, metrics.LevelL1).Set(lottery.LamportsToSOL(referral.L1Volume))
	metrics.ReferralVolumeSOL.WithLabelValues(e.programID, label, metrics.LevelL2).Set(lottery.LamportsToSOL(referral.L2Volume))

	tickets, found, err := e.cfg.Lottery.GetUserTicketAccount(ctx, wallet)
	if err != nil {
		metrics.Errors.WithLabelValues(metrics.ErrorTypeGetUserTicketAccount).Inc()
		return fmt.Errorf("failed to get user ticket account for %s: %w", label, err)
	}
	var count uint64
	if found {
		count = tickets.TicketCount
	}
	metrics.UserTickets.WithLabelValues(e.programID, label).Set(float64(count))
	return nil
}
