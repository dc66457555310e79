package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Metrics names.
	MetricNameBuildInfo           = "lottery_exporter_build_info"
	MetricNameErrors              = "lottery_exporter_errors_total"
	MetricNameTickDuration        = "lottery_exporter_tick_duration_seconds"
	MetricNamePoolSOL             = "lottery_pool_sol"
	MetricNameTicketCount         = "lottery_ticket_count"
	MetricNameTicketPriceSOL      = "lottery_ticket_price_sol"
	MetricNameDrawInProgress      = "lottery_draw_in_progress"
	MetricNameLastDrawTimestamp   = "lottery_last_draw_timestamp_seconds"
	MetricNameReferralEarningsSOL = "lottery_referral_earnings_sol"
	MetricNameReferrals           = "lottery_referrals"
	MetricNameReferralVolumeSOL   = "lottery_referral_volume_sol"
	MetricNameUserTickets         = "lottery_user_tickets"

	// Labels.
	LabelVersion   = "version"
	LabelCommit    = "commit"
	LabelDate      = "date"
	LabelErrorType = "error_type"
	LabelProgramID = "program_id"
	LabelWallet    = "wallet"
	LabelLevel     = "level"

	// Referral levels.
	LevelL1 = "l1"
	LevelL2 = "l2"

	// Error types.
	ErrorTypeGetLotteryState      = "get_lottery_state"
	ErrorTypeGetReferralAccount   = "get_referral_account"
	ErrorTypeGetUserTicketAccount = "get_user_ticket_account"
)

var (
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameBuildInfo,
			Help: "Build information of the lottery exporter",
		},
		[]string{LabelVersion, LabelCommit, LabelDate},
	)

	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameErrors,
			Help: "Number of errors encountered",
		},
		[]string{LabelErrorType},
	)

	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    MetricNameTickDuration,
		Help:    "Duration of the exporter tick",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms .. ~25s
	})

	PoolSOL = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNamePoolSOL,
			Help: "Net pool held by the lottery in SOL",
		},
		[]string{LabelProgramID},
	)

	TicketCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameTicketCount,
			Help: "Tickets sold in the current round",
		},
		[]string{LabelProgramID},
	)

	TicketPriceSOL = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameTicketPriceSOL,
			Help: "Current ticket price in SOL",
		},
		[]string{LabelProgramID},
	)

	DrawInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameDrawInProgress,
			Help: "1 while a draw is being processed and the state may be stale",
		},
		[]string{LabelProgramID},
	)

	LastDrawTimestamp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLastDrawTimestamp,
			Help: "Unix time of the last draw",
		},
		[]string{LabelProgramID},
	)

	ReferralEarningsSOL = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameReferralEarningsSOL,
			Help: "Referral commission earned by a tracked wallet in SOL",
		},
		[]string{LabelProgramID, LabelWallet},
	)

	Referrals = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameReferrals,
			Help: "Referrals credited to a tracked wallet by level",
		},
		[]string{LabelProgramID, LabelWallet, LabelLevel},
	)

	ReferralVolumeSOL = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameReferralVolumeSOL,
			Help: "Ticket volume referred by a tracked wallet by level in SOL",
		},
		[]string{LabelProgramID, LabelWallet, LabelLevel},
	)

	UserTickets = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameUserTickets,
			Help: "Tickets held by a tracked wallet",
		},
		[]string{LabelProgramID, LabelWallet},
	)
)
