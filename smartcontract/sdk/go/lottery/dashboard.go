package lottery

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
)

// DrawSummary describes a past draw. The program keeps no draw history, so the
// dashboard currently returns none.
type DrawSummary struct {
	Number      uint64
	Date        time.Time
	L1Referrals uint64
	L2Referrals uint64
	L1VolumeSOL float64
	L2VolumeSOL float64
}

// DashboardView is the flat record handed to a display sink.
type DashboardView struct {
	TotalParticipants   uint64
	ActiveTickets       uint64
	TotalRevenueSOL     float64
	ReferralEarningsSOL float64
	TicketPriceSOL      float64

	// DrawInProgress is set when the state was read mid-draw and may be stale.
	DrawInProgress bool
	LastDraw       time.Time
	UserTickets    uint64
	RecentDraws    []DrawSummary
}

// Dashboard reads the lottery state and, when user is set, the user's referral
// and ticket accounts. Missing user accounts count as zero.
func (c *Client) Dashboard(ctx context.Context, user *solana.PublicKey) (*DashboardView, error) {
	state, err := c.GetLotteryState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lottery state: %w", err)
	}
	if state.Processing {
		c.log.Warn("Lottery draw in progress, state may be stale")
	}

	view := &DashboardView{
		// The program tracks tickets, not distinct participants.
		TotalParticipants: state.TicketCount,
		ActiveTickets:     state.TicketCount,
		TotalRevenueSOL:   LamportsToSOL(state.NetPool),
		TicketPriceSOL:    LamportsToSOL(state.TicketPrice),
		DrawInProgress:    state.Processing,
		LastDraw:          state.LastDrawTime(),
		RecentDraws:       []DrawSummary{},
	}
	if user == nil || user.IsZero() {
		return view, nil
	}

	referral, found, err := c.GetReferralAccount(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("failed to get referral account: %w", err)
	}
	if found {
		view.ReferralEarningsSOL = LamportsToSOL(referral.Earnings)
	}

	ticket, found, err := c.GetUserTicketAccount(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user ticket account: %w", err)
	}
	if found {
		view.UserTickets = ticket.TicketCount
	}

	return view, nil
}
