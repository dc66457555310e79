package lottery

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ReferralLevel is one commission recipient: the referrer wallet and its referral PDA.
type ReferralLevel struct {
	Referrer        solana.PublicKey
	ReferralAccount solana.PublicKey
}

// ReferralChain holds up to MaxReferralLevels entries, level-1 first.
type ReferralChain []ReferralLevel

func (c ReferralChain) L1() (ReferralLevel, bool) {
	if len(c) < 1 {
		return ReferralLevel{}, false
	}
	return c[0], true
}

func (c ReferralChain) L2() (ReferralLevel, bool) {
	if len(c) < 2 {
		return ReferralLevel{}, false
	}
	return c[1], true
}

type ReferralResolver struct {
	rpc       AccountReader
	programID solana.PublicKey
}

func NewReferralResolver(rpc AccountReader, programID solana.PublicKey) *ReferralResolver {
	return &ReferralResolver{
		rpc:       rpc,
		programID: programID,
	}
}

// Resolve walks the referral chain starting at the level-1 referrer. It reads at
// most one account: the level-1 referral PDA, whose parent becomes level-2.
// Parents beyond level-2 are never followed.
func (r *ReferralResolver) Resolve(ctx context.Context, l1 *solana.PublicKey) (ReferralChain, error) {
	if l1 == nil || l1.IsZero() {
		return ReferralChain{}, nil
	}

	l1PDA, _, err := DeriveUserReferralPDA(r.programID, *l1)
	if err != nil {
		return nil, fmt.Errorf("failed to derive level-1 referral PDA: %w", err)
	}
	chain := ReferralChain{{Referrer: *l1, ReferralAccount: l1PDA}}

	data, found, err := fetchAccountData(ctx, r.rpc, l1PDA)
	if err != nil {
		return nil, fmt.Errorf("failed to read level-1 referral account: %w", err)
	}
	if !found {
		return chain, nil
	}

	referral, err := DeserializeReferralAccount(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode level-1 referral account: %w", err)
	}
	if !referral.HasParent() {
		return chain, nil
	}

	l2PDA, _, err := DeriveUserReferralPDA(r.programID, referral.Parent)
	if err != nil {
		return nil, fmt.Errorf("failed to derive level-2 referral PDA: %w", err)
	}
	return append(chain, ReferralLevel{Referrer: referral.Parent, ReferralAccount: l2PDA}), nil
}
