package lottery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"
)

type Client struct {
	log       *slog.Logger
	rpc       RPCClient
	signer    Signer
	programID solana.PublicKey
	referrals *ReferralResolver
	executor  *Executor
}

func New(log *slog.Logger, rpc RPCClient, signer Signer, programID solana.PublicKey, opts ...ExecutorOption) *Client {
	return &Client{
		log:       log,
		rpc:       rpc,
		signer:    signer,
		programID: programID,
		referrals: NewReferralResolver(rpc, programID),
		executor:  NewExecutor(log, rpc, signer, programID, opts...),
	}
}

func (c *Client) ProgramID() solana.PublicKey {
	return c.programID
}

// Connect asks the signer for the wallet address.
func (c *Client) Connect(ctx context.Context) (solana.PublicKey, error) {
	if c.signer == nil {
		return solana.PublicKey{}, fmt.Errorf("%w: please connect a wallet first", ErrSignerUnavailable)
	}
	pub, err := c.signer.Connect(ctx)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %w", ErrSignerUnavailable, err)
	}
	return pub, nil
}

// GetLotteryState fetches the LotteryState singleton.
func (c *Client) GetLotteryState(ctx context.Context) (*LotteryState, error) {
	pda, _, err := DeriveLotteryStatePDA(c.programID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	data, found, err := fetchAccountData(ctx, c.rpc, pda)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: lottery state %s is not initialized", ErrAccountNotFound, pda)
	}

	state, err := DeserializeLotteryState(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize lottery state: %w", err)
	}
	return state, nil
}

// GetReferralAccount fetches the referral account of owner. A missing account is
// reported with found=false and no error.
func (c *Client) GetReferralAccount(ctx context.Context, owner solana.PublicKey) (*ReferralAccount, bool, error) {
	pda, _, err := DeriveUserReferralPDA(c.programID, owner)
	if err != nil {
		return nil, false, fmt.Errorf("failed to derive PDA: %w", err)
	}

	data, found, err := fetchAccountData(ctx, c.rpc, pda)
	if err != nil || !found {
		return nil, false, err
	}

	referral, err := DeserializeReferralAccount(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to deserialize referral account: %w", err)
	}
	return referral, true, nil
}

// GetUserTicketAccount fetches the ticket account of owner. A missing account is
// reported with found=false and no error.
func (c *Client) GetUserTicketAccount(ctx context.Context, owner solana.PublicKey) (*UserTicketAccount, bool, error) {
	pda, _, err := DeriveUserTicketPDA(c.programID, owner)
	if err != nil {
		return nil, false, fmt.Errorf("failed to derive PDA: %w", err)
	}

	data, found, err := fetchAccountData(ctx, c.rpc, pda)
	if err != nil || !found {
		return nil, false, err
	}

	ticket, err := DeserializeUserTicketAccount(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to deserialize user ticket account: %w", err)
	}
	return ticket, true, nil
}

// ResolveReferrals returns the commission chain for a purchase referred by l1.
func (c *Client) ResolveReferrals(ctx context.Context, l1 *solana.PublicKey) (ReferralChain, error) {
	return c.referrals.Resolve(ctx, l1)
}

// BuyTickets buys count tickets for the connected wallet, crediting the
// referral chain that starts at referrer when one is given.
func (c *Client) BuyTickets(ctx context.Context, count uint64, referrer *solana.PublicKey) (*Confirmation, error) {
	if count == 0 {
		return nil, fmt.Errorf("%w: ticket count must be positive", ErrInvalidArgument)
	}
	payer, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}

	chain, err := c.referrals.Resolve(ctx, referrer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve referral chain: %w", err)
	}

	instruction, err := BuildBuyTicketsInstruction(c.programID, BuyTicketsInstructionConfig{
		Payer:       payer,
		TicketCount: count,
		Referrals:   chain,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.submit(ctx, BuyTicketsInstructionIndex, instruction, payer,
		"count", count, "referralLevels", len(chain))
}

// Draw runs the draw and pays the three winners.
func (c *Client) Draw(ctx context.Context, winners [3]solana.PublicKey) (*Confirmation, error) {
	authority, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}

	instruction, err := BuildDrawInstruction(c.programID, DrawInstructionConfig{
		Authority: authority,
		Winners:   winners,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.submit(ctx, DrawInstructionIndex, instruction, authority)
}

// Withdraw moves lamports from the pool to the connected authority.
func (c *Client) Withdraw(ctx context.Context, lamports uint64) (*Confirmation, error) {
	authority, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}

	instruction, err := BuildWithdrawInstruction(c.programID, WithdrawInstructionConfig{
		Authority: authority,
		Lamports:  lamports,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.submit(ctx, WithdrawInstructionIndex, instruction, authority, "lamports", lamports)
}

// SetTicketPrice updates the ticket price in lamports.
func (c *Client) SetTicketPrice(ctx context.Context, lamports uint64) (*Confirmation, error) {
	authority, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}

	instruction, err := BuildSetTicketPriceInstruction(c.programID, SetTicketPriceInstructionConfig{
		Authority: authority,
		Lamports:  lamports,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.submit(ctx, SetTicketPriceInstructionIndex, instruction, authority, "lamports", lamports)
}

func (c *Client) submit(ctx context.Context, kind LotteryInstructionType, instruction solana.Instruction, payer solana.PublicKey, attrs ...any) (*Confirmation, error) {
	confirmation, err := c.executor.Submit(ctx, []solana.Instruction{instruction}, payer)
	if err != nil {
		c.log.Error("Lottery instruction failed", append([]any{"instruction", kind, "error", err}, attrs...)...)
		return nil, fmt.Errorf("failed to execute %s: %w", kind, err)
	}
	c.log.Info("Lottery instruction confirmed", append([]any{"instruction", kind, "sig", confirmation.Signature, "slot", confirmation.Slot}, attrs...)...)
	return confirmation, nil
}
