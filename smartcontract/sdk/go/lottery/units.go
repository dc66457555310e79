package lottery

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LamportsToSOL converts base units to SOL. Exact for values up to 2^53 lamports.
func LamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / float64(LamportsPerSOL)
}

// FormatSOL renders lamports as SOL with two decimals.
func FormatSOL(lamports uint64) string {
	return fmt.Sprintf("%.2f SOL", LamportsToSOL(lamports))
}

// SOLToLamports converts a SOL amount to lamports, rounding to the nearest lamport.
func SOLToLamports(sol float64) (uint64, error) {
	if math.IsNaN(sol) || math.IsInf(sol, 0) {
		return 0, fmt.Errorf("%w: amount %v is not a number", ErrInvalidArgument, sol)
	}
	if sol < 0 {
		return 0, fmt.Errorf("%w: amount %v is negative", ErrInvalidArgument, sol)
	}
	lamports := math.Round(sol * float64(LamportsPerSOL))
	if lamports >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: amount %v SOL overflows u64 lamports", ErrInvalidArgument, sol)
	}
	return uint64(lamports), nil
}

// ParseSOL parses a decimal SOL amount into lamports.
func ParseSOL(s string) (uint64, error) {
	sol, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a SOL amount", ErrInvalidArgument, s)
	}
	return SOLToLamports(sol)
}

// ParseTicketPrice parses a SOL ticket price and enforces the program minimum.
func ParseTicketPrice(s string) (uint64, error) {
	lamports, err := ParseSOL(s)
	if err != nil {
		return 0, err
	}
	if lamports < MinTicketPriceLamports {
		return 0, fmt.Errorf("%w: ticket price %s is below minimum %s", ErrInvalidArgument, strings.TrimSpace(s), strconv.FormatFloat(LamportsToSOL(MinTicketPriceLamports), 'f', -1, 64))
	}
	return lamports, nil
}

// ParseTicketCount parses a positive integer ticket count.
func ParseTicketCount(s string) (uint64, error) {
	count, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a ticket count", ErrInvalidArgument, s)
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: ticket count must be positive", ErrInvalidArgument)
	}
	return count, nil
}
