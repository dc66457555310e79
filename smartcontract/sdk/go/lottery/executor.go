package lottery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/jonboulle/clockwork"
)

const (
	defaultConfirmationTimeout = 60 * time.Second
	defaultPollInterval        = 500 * time.Millisecond
)

// Confirmation identifies a transaction that reached the executor's commitment level.
type Confirmation struct {
	Signature solana.Signature
	Slot      uint64
	Status    solanarpc.ConfirmationStatusType
}

// Executor bundles instructions into one transaction, hands it to the signer and
// waits for the cluster to confirm it.
type Executor struct {
	log                 *slog.Logger
	rpc                 RPCClient
	signer              Signer
	programID           solana.PublicKey
	clock               clockwork.Clock
	commitment          solanarpc.CommitmentType
	confirmationTimeout time.Duration
	pollInterval        time.Duration
}

type ExecutorOption func(*Executor)

func WithClock(clock clockwork.Clock) ExecutorOption {
	return func(e *Executor) {
		e.clock = clock
	}
}

func WithConfirmationTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.confirmationTimeout = timeout
	}
}

func WithPollInterval(interval time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.pollInterval = interval
	}
}

// WithCommitment sets the level a transaction must reach to count as confirmed.
func WithCommitment(commitment solanarpc.CommitmentType) ExecutorOption {
	return func(e *Executor) {
		e.commitment = commitment
	}
}

func NewExecutor(log *slog.Logger, rpc RPCClient, signer Signer, programID solana.PublicKey, opts ...ExecutorOption) *Executor {
	e := &Executor{
		log:                 log,
		rpc:                 rpc,
		signer:              signer,
		programID:           programID,
		clock:               clockwork.NewRealClock(),
		commitment:          solanarpc.CommitmentConfirmed,
		confirmationTimeout: defaultConfirmationTimeout,
		pollInterval:        defaultPollInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit executes the instructions atomically in a single transaction paid by feePayer.
func (e *Executor) Submit(ctx context.Context, instructions []solana.Instruction, feePayer solana.PublicKey) (*Confirmation, error) {
	if e.signer == nil {
		return nil, fmt.Errorf("%w: no wallet configured", ErrSignerUnavailable)
	}
	if e.programID.IsZero() {
		return nil, ErrNoProgramID
	}
	if len(instructions) == 0 {
		return nil, fmt.Errorf("%w: no instructions to submit", ErrInvalidArgument)
	}
	if feePayer.IsZero() {
		return nil, fmt.Errorf("%w: fee payer is required", ErrInvalidArgument)
	}

	// Get latest blockhash
	blockhashResult, err := e.rpc.GetLatestBlockhash(ctx, solanarpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	if blockhashResult == nil || blockhashResult.Value == nil {
		return nil, errors.New("failed to get latest blockhash: empty result")
	}

	// Build transaction
	tx, err := solana.NewTransaction(
		instructions,
		blockhashResult.Value.Blockhash,
		solana.TransactionPayer(feePayer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}
	if tx == nil {
		return nil, errors.New("transaction build failed: nil result")
	}

	// Sign and send
	sig, err := e.signer.SignAndSend(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionRejected, err)
	}
	e.log.Debug("--> Transaction submitted", "sig", sig, "instructions", len(instructions))

	return e.awaitConfirmation(ctx, sig)
}

func (e *Executor) awaitConfirmation(ctx context.Context, sig solana.Signature) (*Confirmation, error) {
	e.log.Debug("--> Waiting for transaction to be confirmed", "sig", sig, "commitment", e.commitment)
	start := e.clock.Now()
	timer := e.clock.NewTimer(e.confirmationTimeout)
	defer timer.Stop()

	for {
		resp, err := e.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return nil, fmt.Errorf("failed to get signature status: %w", err)
		}
		if resp != nil && len(resp.Value) > 0 && resp.Value[0] != nil {
			status := resp.Value[0]
			if status.Err != nil {
				return nil, fmt.Errorf("%w: transaction %s failed: %v", ErrSubmissionRejected, sig, status.Err)
			}
			if commitmentReached(status.ConfirmationStatus, e.commitment) {
				e.log.Debug("--> Transaction confirmed", "sig", sig, "slot", status.Slot, "duration", e.clock.Since(start))
				return &Confirmation{
					Signature: sig,
					Slot:      status.Slot,
					Status:    status.ConfirmationStatus,
				}, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.Chan():
			return nil, fmt.Errorf("%w: transaction %s not confirmed after %s", ErrConfirmationTimeout, sig, e.confirmationTimeout)
		case <-e.clock.After(e.pollInterval):
		}
	}
}

func commitmentReached(status solanarpc.ConfirmationStatusType, want solanarpc.CommitmentType) bool {
	switch want {
	case solanarpc.CommitmentFinalized:
		return status == solanarpc.ConfirmationStatusFinalized
	case solanarpc.CommitmentConfirmed:
		return status == solanarpc.ConfirmationStatusConfirmed || status == solanarpc.ConfirmationStatusFinalized
	default:
		return status != ""
	}
}
