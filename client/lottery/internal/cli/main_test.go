package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/malbeclabs/lottery/client/lottery/internal/cli"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/stretchr/testify/require"
)

var testProgramID = solana.MustPublicKeyFromBase58("DfCSQQ6a3CTHf92X9YF7MiitMRbNaZZfbgFZ4yQrbcCd")

type serializer interface {
	Serialize(io.Writer) error
}

// mockRPCClient serves accounts from a map, confirms every transaction at slot
// 42 and records what was sent.
type mockRPCClient struct {
	t        *testing.T
	accounts map[solana.PublicKey]serializer

	mu  sync.Mutex
	txs []*solana.Transaction
}

func newMockRPCClient(t *testing.T, accounts map[solana.PublicKey]serializer) *mockRPCClient {
	return &mockRPCClient{t: t, accounts: accounts}
}

func (m *mockRPCClient) GetAccountInfo(_ context.Context, account solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
	record, ok := m.accounts[account]
	if !ok {
		return nil, solanarpc.ErrNotFound
	}
	buf := new(bytes.Buffer)
	if err := record.Serialize(buf); err != nil {
		m.t.Fatalf("mock serialize: %v", err)
	}
	return &solanarpc.GetAccountInfoResult{
		Value: &solanarpc.Account{Data: solanarpc.DataBytesOrJSONFromBytes(buf.Bytes())},
	}, nil
}

func (m *mockRPCClient) GetLatestBlockhash(context.Context, solanarpc.CommitmentType) (*solanarpc.GetLatestBlockhashResult, error) {
	return &solanarpc.GetLatestBlockhashResult{
		Value: &solanarpc.LatestBlockhashResult{Blockhash: solana.Hash{1, 2, 3}},
	}, nil
}

func (m *mockRPCClient) GetSignatureStatuses(context.Context, bool, ...solana.Signature) (*solanarpc.GetSignatureStatusesResult, error) {
	return &solanarpc.GetSignatureStatusesResult{
		Value: []*solanarpc.SignatureStatusesResult{
			{Slot: 42, ConfirmationStatus: solanarpc.ConfirmationStatusConfirmed},
		},
	}, nil
}

func (m *mockRPCClient) SendTransactionWithOpts(_ context.Context, tx *solana.Transaction, _ solanarpc.TransactionOpts) (solana.Signature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append(m.txs, tx)
	return tx.Signatures[0], nil
}

func (m *mockRPCClient) sent() []*solana.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*solana.Transaction(nil), m.txs...)
}

var errNoKeypair = errors.New("open id.json: no such file or directory")

func testDeps(out io.Writer, rpc *mockRPCClient, key solana.PrivateKey) cli.Deps {
	return cli.Deps{
		Out: out,
		NewRPCClient: func(string) cli.RPCClient {
			return rpc
		},
		LoadKeypair: func(string) (solana.PrivateKey, error) {
			if key == nil {
				return nil, errNoKeypair
			}
			return key, nil
		},
		ExecutorOptions: []lottery.ExecutorOption{
			lottery.WithPollInterval(time.Millisecond),
			lottery.WithConfirmationTimeout(5 * time.Second),
		},
	}
}

// runCmd executes the CLI against the test program and returns everything it wrote.
func runCmd(t *testing.T, rpc *mockRPCClient, key solana.PrivateKey, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd := cli.NewRootCmd(testDeps(out, rpc, key))
	cmd.SetArgs(append([]string{"--program-id", testProgramID.String(), "--rpc-url", "http://localhost:8899", "--keypair", "/tmp/id.json"}, args...))
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func mustPDA(t *testing.T, derive func(solana.PublicKey, solana.PublicKey) (solana.PublicKey, uint8, error), owner solana.PublicKey) solana.PublicKey {
	t.Helper()
	pda, _, err := derive(testProgramID, owner)
	require.NoError(t, err)
	return pda
}

func lotteryStatePDA(t *testing.T) solana.PublicKey {
	t.Helper()
	pda, _, err := lottery.DeriveLotteryStatePDA(testProgramID)
	require.NoError(t, err)
	return pda
}

func itoa(b uint8) string {
	return strconv.Itoa(int(b))
}
