package lottery

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
)

// fetchAccountData returns the raw data of an account, or found=false if it does not exist.
func fetchAccountData(ctx context.Context, rpc AccountReader, address solana.PublicKey) ([]byte, bool, error) {
	account, err := rpc.GetAccountInfo(ctx, address)
	if err != nil {
		if errors.Is(err, solanarpc.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get account data: %w", err)
	}
	if account == nil || account.Value == nil || account.Value.Data == nil {
		return nil, false, nil
	}
	return account.Value.Data.GetBinary(), true, nil
}
