package lottery

import "github.com/gagliardetto/solana-go"

// LotteryInstructionType represents the type of lottery instruction
type LotteryInstructionType uint8

const (
	BuyTicketsInstructionIndex     LotteryInstructionType = 1
	DrawInstructionIndex           LotteryInstructionType = 2
	WithdrawInstructionIndex       LotteryInstructionType = 3
	SetTicketPriceInstructionIndex LotteryInstructionType = 4
)

func (t LotteryInstructionType) String() string {
	switch t {
	case BuyTicketsInstructionIndex:
		return "buy_tickets"
	case DrawInstructionIndex:
		return "draw"
	case WithdrawInstructionIndex:
		return "withdraw"
	case SetTicketPriceInstructionIndex:
		return "set_ticket_price"
	default:
		return "unknown"
	}
}

// PDA seeds for the lottery program. These must match the program byte for byte.
const (
	LotteryStateSeed  = "lottery"
	UserTicketSeed    = "user_ticket"
	UserReferralSeed  = "user_referral"
	MaxSeeds          = 16
	MaxSeedLength     = 32
	MaxReferralLevels = 2
)

// Units
const (
	LamportsPerSOL         = solana.LAMPORTS_PER_SOL
	MinTicketPriceLamports = 1_000_000
)

// Fixed account sizes in bytes.
const (
	LotteryStateSize      = 32 + 8 + 8 + 8 + 1 + 8
	ReferralAccountSize   = 32 + 8 + 8 + 8 + 8 + 8
	UserTicketAccountSize = 32 + 8
)
