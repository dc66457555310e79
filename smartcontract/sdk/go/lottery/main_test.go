package lottery_test

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/lmittmann/tint"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
)

var (
	log *slog.Logger
)

// TestMain sets up the test environment with a global logger.
func TestMain(m *testing.M) {
	flag.Parse()
	verbose := false
	if vFlag := flag.Lookup("test.v"); vFlag != nil && vFlag.Value.String() == "true" {
		verbose = true
	}
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	log = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.RFC3339,
		AddSource:  true,
	}))

	os.Exit(m.Run())
}

type mockRPCClient struct {
	lottery.RPCClient

	GetLatestBlockhashFunc   func(context.Context, solanarpc.CommitmentType) (*solanarpc.GetLatestBlockhashResult, error)
	GetSignatureStatusesFunc func(context.Context, bool, ...solana.Signature) (*solanarpc.GetSignatureStatusesResult, error)
	GetAccountInfoFunc       func(context.Context, solana.PublicKey) (*solanarpc.GetAccountInfoResult, error)
}

func (m *mockRPCClient) GetLatestBlockhash(ctx context.Context, ct solanarpc.CommitmentType) (*solanarpc.GetLatestBlockhashResult, error) {
	return m.GetLatestBlockhashFunc(ctx, ct)
}

func (m *mockRPCClient) GetSignatureStatuses(ctx context.Context, search bool, sigs ...solana.Signature) (*solanarpc.GetSignatureStatusesResult, error) {
	return m.GetSignatureStatusesFunc(ctx, search, sigs...)
}

func (m *mockRPCClient) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
	return m.GetAccountInfoFunc(ctx, account)
}

type mockSigner struct {
	ConnectFunc     func(context.Context) (solana.PublicKey, error)
	SignAndSendFunc func(context.Context, *solana.Transaction) (solana.Signature, error)
}

func (m *mockSigner) Connect(ctx context.Context) (solana.PublicKey, error) {
	return m.ConnectFunc(ctx)
}

func (m *mockSigner) SignAndSend(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	return m.SignAndSendFunc(ctx, tx)
}

type serializer interface {
	Serialize(io.Writer) error
}

// accountsByAddress serves serialized records keyed by address and reports any
// other address as missing.
func accountsByAddress(t *testing.T, records map[solana.PublicKey]serializer) func(context.Context, solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
	return func(_ context.Context, address solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
		record, ok := records[address]
		if !ok {
			return &solanarpc.GetAccountInfoResult{Value: nil}, nil
		}
		buf := new(bytes.Buffer)
		if err := record.Serialize(buf); err != nil {
			t.Fatalf("mock serialize: %v", err)
		}
		return &solanarpc.GetAccountInfoResult{
			Value: &solanarpc.Account{
				Data: solanarpc.DataBytesOrJSONFromBytes(buf.Bytes()),
			},
		}, nil
	}
}

func finalizedRPC(blockhash solana.Hash) *mockRPCClient {
	return &mockRPCClient{
		GetLatestBlockhashFunc: func(_ context.Context, _ solanarpc.CommitmentType) (*solanarpc.GetLatestBlockhashResult, error) {
			return &solanarpc.GetLatestBlockhashResult{
				Value: &solanarpc.LatestBlockhashResult{Blockhash: blockhash},
			}, nil
		},
		GetSignatureStatusesFunc: func(_ context.Context, _ bool, _ ...solana.Signature) (*solanarpc.GetSignatureStatusesResult, error) {
			return &solanarpc.GetSignatureStatusesResult{
				Value: []*solanarpc.SignatureStatusesResult{
					{Slot: 42, ConfirmationStatus: solanarpc.ConfirmationStatusFinalized},
				},
			}, nil
		},
	}
}

// recordingSigner signs nothing and captures the transaction it was handed.
func recordingSigner(pub solana.PublicKey, sig solana.Signature, captured **solana.Transaction) *mockSigner {
	return &mockSigner{
		ConnectFunc: func(context.Context) (solana.PublicKey, error) {
			return pub, nil
		},
		SignAndSendFunc: func(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
			if captured != nil {
				*captured = tx
			}
			return sig, nil
		},
	}
}
