package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/malbeclabs/lottery/config"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/spf13/cobra"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// RPCClient is what the CLI needs from a Solana RPC endpoint.
type RPCClient interface {
	lottery.RPCClient
	lottery.TransactionSender
}

// Deps are the collaborators the commands are wired with.
type Deps struct {
	Out             io.Writer
	NewRPCClient    func(url string) RPCClient
	LoadKeypair     func(path string) (solana.PrivateKey, error)
	ExecutorOptions []lottery.ExecutorOption
}

func defaultDeps() Deps {
	return Deps{
		Out: os.Stdout,
		NewRPCClient: func(url string) RPCClient {
			return solanarpc.New(url)
		},
		LoadKeypair: solana.PrivateKeyFromSolanaKeygenFile,
	}
}

func Run() ExitCode {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd(defaultDeps()).ExecuteContext(ctx); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

type rootOptions struct {
	deps Deps

	verbose     bool
	env         string
	rpcURL      string
	programID   string
	keypairPath string
	timeout     time.Duration
}

func NewRootCmd(deps Deps) *cobra.Command {
	opts := &rootOptions{deps: deps}

	rootCmd := &cobra.Command{
		Use:          "lottery",
		Short:        "CLI for the Solana referral lottery program.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmd.Help()
			if err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}
	rootCmd.SetOut(deps.Out)
	rootCmd.SetErr(deps.Out)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "set debug logging level")
	rootCmd.PersistentFlags().StringVarP(&opts.env, "env", "e", config.EnvDevnet, "The network environment (mainnet-beta, testnet, devnet, localnet)")
	rootCmd.PersistentFlags().StringVar(&opts.rpcURL, "rpc-url", "", "Override the Solana RPC URL of the environment")
	rootCmd.PersistentFlags().StringVar(&opts.programID, "program-id", "", "Override the lottery program ID of the environment")
	rootCmd.PersistentFlags().StringVarP(&opts.keypairPath, "keypair", "k", defaultKeypairPath(), "Path to the wallet keypair file")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "confirm-timeout", 60*time.Second, "How long to wait for transaction confirmation")

	rootCmd.AddCommand(
		NewDashboardCmd(opts).Command(),
		NewBuyCmd(opts).Command(),
		NewDrawCmd(opts).Command(),
		NewWithdrawCmd(opts).Command(),
		NewSetPriceCmd(opts).Command(),
		NewDeriveCmd(opts).Command(),
		NewReferralCmd(opts).Command(),
		NewTicketsCmd(opts).Command(),
	)

	return rootCmd
}

func defaultKeypairPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "solana", "id.json")
}

// network resolves the environment config. Flags take precedence over the
// LOTTERY_* environment variables.
func (o *rootOptions) network() (*config.NetworkConfig, error) {
	overrides := config.OverridesFromEnv()
	if o.rpcURL != "" {
		overrides.SolanaRPCURL = o.rpcURL
	}
	if o.programID != "" {
		overrides.LotteryProgramID = o.programID
	}
	networkConfig, err := config.NetworkConfigForEnvWithOverrides(o.env, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to get network config: %w", err)
	}
	return networkConfig, nil
}

// wallet loads the keypair as a signer. A missing or unreadable keypair is an
// unavailable signer.
func (o *rootOptions) wallet(rpc lottery.TransactionSender) (*lottery.KeypairSigner, error) {
	if o.keypairPath == "" {
		return nil, fmt.Errorf("%w: no keypair path configured", lottery.ErrSignerUnavailable)
	}
	key, err := o.deps.LoadKeypair(o.keypairPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load keypair %s: %w", lottery.ErrSignerUnavailable, o.keypairPath, err)
	}
	return lottery.NewKeypairSigner(key, rpc), nil
}

type session struct {
	log     *slog.Logger
	network *config.NetworkConfig
	client  *lottery.Client
	signer  lottery.Signer
}

// newSession builds a lottery client. Read-only commands pass requireSigner
// false and still get a signer when the keypair is readable.
func (o *rootOptions) newSession(requireSigner bool) (*session, error) {
	log := newLogger(o.deps.Out, o.verbose)

	networkConfig, err := o.network()
	if err != nil {
		return nil, err
	}
	log.Debug("Using network", "env", networkConfig.Moniker, "rpc", networkConfig.SolanaRPCURL, "programID", networkConfig.LotteryProgramID)

	rpcClient := o.deps.NewRPCClient(networkConfig.SolanaRPCURL)

	var signer lottery.Signer
	wallet, err := o.wallet(rpcClient)
	switch {
	case err == nil:
		signer = wallet
	case requireSigner:
		return nil, err
	default:
		log.Debug("No wallet loaded", "error", err)
	}

	var execOpts []lottery.ExecutorOption
	if o.timeout > 0 {
		execOpts = append(execOpts, lottery.WithConfirmationTimeout(o.timeout))
	}
	execOpts = append(execOpts, o.deps.ExecutorOptions...)
	return &session{
		log:     log,
		network: networkConfig,
		client:  lottery.New(log, rpcClient, signer, networkConfig.LotteryProgramID, execOpts...),
		signer:  signer,
	}, nil
}

// ownerOrWallet parses the owner flag, falling back to the loaded wallet.
func (s *session) ownerOrWallet(cmd *cobra.Command, owner string) (solana.PublicKey, error) {
	if owner != "" {
		pk, err := solana.PublicKeyFromBase58(owner)
		if err != nil {
			return solana.PublicKey{}, fmt.Errorf("invalid owner %q: %w", owner, err)
		}
		return pk, nil
	}
	if s.signer == nil {
		return solana.PublicKey{}, errors.New("--owner is required when no wallet keypair is available")
	}
	return s.client.Connect(cmd.Context())
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
