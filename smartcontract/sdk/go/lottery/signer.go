package lottery

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
)

// Signer is the wallet capability. It owns the fee payer key, signs transactions
// and submits them to the cluster.
type Signer interface {
	Connect(ctx context.Context) (solana.PublicKey, error)
	SignAndSend(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// KeypairSigner signs with a local keypair and submits through an RPC client.
type KeypairSigner struct {
	key  solana.PrivateKey
	rpc  TransactionSender
	opts solanarpc.TransactionOpts
}

func NewKeypairSigner(key solana.PrivateKey, rpc TransactionSender) *KeypairSigner {
	return &KeypairSigner{
		key: key,
		rpc: rpc,
		opts: solanarpc.TransactionOpts{
			PreflightCommitment: solanarpc.CommitmentConfirmed,
		},
	}
}

func (s *KeypairSigner) Connect(_ context.Context) (solana.PublicKey, error) {
	if s == nil || s.key == nil || !s.key.IsValid() {
		return solana.PublicKey{}, fmt.Errorf("%w: no valid keypair loaded", ErrSignerUnavailable)
	}
	return s.key.PublicKey(), nil
}

func (s *KeypairSigner) SignAndSend(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	pub, err := s.Connect(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(pub) {
			return &s.key
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction (likely missing signer): %w", err)
	}
	if len(tx.Signatures) == 0 {
		return solana.Signature{}, errors.New("signed transaction appears malformed")
	}

	sig, err := s.rpc.SendTransactionWithOpts(ctx, tx, s.opts)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig, nil
}
