package lottery

import "fmt"

// DeserializeLotteryState decodes a LotteryState account.
// Data shorter than LotteryStateSize is rejected; trailing bytes are ignored.
func DeserializeLotteryState(data []byte) (*LotteryState, error) {
	if len(data) < LotteryStateSize {
		return nil, fmt.Errorf("%w: lottery state needs %d bytes, got %d", ErrMalformedAccountData, LotteryStateSize, len(data))
	}

	var state LotteryState
	if err := state.Deserialize(data); err != nil {
		return nil, fmt.Errorf("%w: failed to deserialize lottery state: %w", ErrMalformedAccountData, err)
	}
	return &state, nil
}

// DeserializeReferralAccount decodes a ReferralAccount.
func DeserializeReferralAccount(data []byte) (*ReferralAccount, error) {
	if len(data) < ReferralAccountSize {
		return nil, fmt.Errorf("%w: referral account needs %d bytes, got %d", ErrMalformedAccountData, ReferralAccountSize, len(data))
	}

	var referral ReferralAccount
	if err := referral.Deserialize(data); err != nil {
		return nil, fmt.Errorf("%w: failed to deserialize referral account: %w", ErrMalformedAccountData, err)
	}
	return &referral, nil
}

// DeserializeUserTicketAccount decodes a UserTicketAccount.
func DeserializeUserTicketAccount(data []byte) (*UserTicketAccount, error) {
	if len(data) < UserTicketAccountSize {
		return nil, fmt.Errorf("%w: user ticket account needs %d bytes, got %d", ErrMalformedAccountData, UserTicketAccountSize, len(data))
	}

	var ticket UserTicketAccount
	if err := ticket.Deserialize(data); err != nil {
		return nil, fmt.Errorf("%w: failed to deserialize user ticket account: %w", ErrMalformedAccountData, err)
	}
	return &ticket, nil
}
