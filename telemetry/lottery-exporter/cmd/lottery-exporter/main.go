package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
	"github.com/malbeclabs/lottery/config"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/malbeclabs/lottery/telemetry/lottery-exporter/internal/exporter"
	"github.com/malbeclabs/lottery/telemetry/lottery-exporter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"
)

var (
	// Set by LDFLAGS
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	defaultMetricsAddr = ":8080"
	defaultInterval    = 30 * time.Second

	defaultMaxConcurrency = 8
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	showVersionFlag := flag.Bool("version", false, "show version and exit")
	verboseFlag := flag.Bool("verbose", false, "verbose mode - show debug logs")
	envFlag := flag.String("env", config.EnvDevnet, "lottery environment to use")
	rpcURLFlag := flag.String("rpc-url", "", "override the solana rpc url of the environment")
	programIDFlag := flag.String("program-id", "", "override the lottery program id of the environment")
	intervalFlag := flag.Duration("interval", defaultInterval, "interval between lottery state polls")
	maxConcurrencyFlag := flag.Int("max-concurrency", defaultMaxConcurrency, "maximum number of concurrent account reads per poll")
	walletsFlag := flag.StringSlice("wallet", nil, "wallet to export referral earnings and tickets for (repeatable)")
	metricsAddrFlag := flag.String("metrics-addr", defaultMetricsAddr, "Address to listen on for prometheus metrics")
	flag.Parse()

	if *showVersionFlag {
		fmt.Printf("version: %s, commit: %s, date: %s\n", version, commit, date)
		os.Exit(0)
	}

	log := newLogger(*verboseFlag)

	overrides := config.OverridesFromEnv()
	if *rpcURLFlag != "" {
		overrides.SolanaRPCURL = *rpcURLFlag
	}
	if *programIDFlag != "" {
		overrides.LotteryProgramID = *programIDFlag
	}
	networkConfig, err := config.NetworkConfigForEnvWithOverrides(*envFlag, overrides)
	if err != nil {
		log.Error("failed to get network config", "error", err)
		return err
	}

	wallets := make([]solana.PublicKey, 0, len(*walletsFlag))
	for _, w := range *walletsFlag {
		pk, err := solana.PublicKeyFromBase58(w)
		if err != nil {
			log.Error("failed to parse wallet", "wallet", w, "error", err)
			return err
		}
		wallets = append(wallets, pk)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Set up prometheus metrics server if enabled.
	if *metricsAddrFlag != "" {
		metrics.BuildInfo.WithLabelValues(version, commit, date).Set(1)
		go func() {
			listener, err := net.Listen("tcp", *metricsAddrFlag)
			if err != nil {
				log.Error("Failed to start prometheus metrics server listener", "error", err)
				os.Exit(1)
			}
			log.Info("Prometheus metrics server listening", "address", listener.Addr().String())
			http.Handle("/metrics", promhttp.Handler())
			if err := http.Serve(listener, nil); err != nil {
				log.Error("Failed to start prometheus metrics server", "error", err)
				os.Exit(1)
			}
		}()
	}

	rpcClient := solanarpc.New(networkConfig.SolanaRPCURL)
	defer rpcClient.Close()

	// Read-only: no signer.
	client := lottery.New(log, rpcClient, nil, networkConfig.LotteryProgramID)

	exp, err := exporter.New(exporter.Config{
		Logger:         log,
		Lottery:        client,
		Clock:          clockwork.NewRealClock(),
		Interval:       *intervalFlag,
		MaxConcurrency: *maxConcurrencyFlag,
		TrackedWallets: wallets,
	})
	if err != nil {
		log.Error("failed to create exporter", "error", err)
		return err
	}

	log.Info("Lottery exporter configured", "env", networkConfig.Moniker, "rpc", networkConfig.SolanaRPCURL)
	return exp.Run(ctx)
}

func newLogger(verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format("2006-01-02T15:04:05.000Z"))
			}
			return a
		},
	}))
}
