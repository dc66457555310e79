package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

const (
	EnvMainnetBeta = "mainnet-beta"
	EnvMainnet     = "mainnet"
	EnvTestnet     = "testnet"
	EnvDevnet      = "devnet"
	EnvLocalnet    = "localnet"
)

var (
	ErrInvalidEnvironment  = errors.New("invalid environment")
	ErrProgramNotDeployed  = errors.New("lottery program is not deployed in this environment")
	ErrInvalidProgramIDEnv = errors.New("invalid " + EnvVarProgramID)
)

type NetworkConfig struct {
	Moniker          string
	SolanaRPCURL     string
	LotteryProgramID solana.PublicKey
}

// Overrides replace the built-in values of an environment when non-empty.
type Overrides struct {
	SolanaRPCURL     string
	LotteryProgramID string
}

// OverridesFromEnv reads LOTTERY_RPC_URL and LOTTERY_PROGRAM_ID.
func OverridesFromEnv() Overrides {
	return Overrides{
		SolanaRPCURL:     os.Getenv(EnvVarRPCURL),
		LotteryProgramID: os.Getenv(EnvVarProgramID),
	}
}

// NetworkConfigForEnv returns the network config for env. LOTTERY_RPC_URL and
// LOTTERY_PROGRAM_ID override the built-in values.
func NetworkConfigForEnv(env string) (*NetworkConfig, error) {
	return NetworkConfigForEnvWithOverrides(env, OverridesFromEnv())
}

func NetworkConfigForEnvWithOverrides(env string, overrides Overrides) (*NetworkConfig, error) {
	var config *NetworkConfig
	var programID string
	switch env {
	case EnvMainnetBeta, EnvMainnet:
		config = &NetworkConfig{
			Moniker:      EnvMainnetBeta,
			SolanaRPCURL: MainnetSolanaRPC,
		}
		programID = MainnetLotteryProgramID
	case EnvTestnet:
		config = &NetworkConfig{
			Moniker:      EnvTestnet,
			SolanaRPCURL: TestnetSolanaRPC,
		}
		programID = TestnetLotteryProgramID
	case EnvDevnet:
		config = &NetworkConfig{
			Moniker:      EnvDevnet,
			SolanaRPCURL: DevnetSolanaRPC,
		}
		programID = DevnetLotteryProgramID
	case EnvLocalnet:
		config = &NetworkConfig{
			Moniker:      EnvLocalnet,
			SolanaRPCURL: LocalnetSolanaRPC,
		}
		programID = LocalnetLotteryProgramID
	default:
		return nil, fmt.Errorf("%w %q, must be one of: %s, %s, %s, %s", ErrInvalidEnvironment, env, EnvMainnetBeta, EnvTestnet, EnvDevnet, EnvLocalnet)
	}

	if overrides.LotteryProgramID != "" {
		programID = overrides.LotteryProgramID
	}
	if programID == "" {
		return nil, fmt.Errorf("%w: %s (set %s)", ErrProgramNotDeployed, config.Moniker, EnvVarProgramID)
	}
	pk, err := solana.PublicKeyFromBase58(programID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse lottery program ID %q: %w", ErrInvalidProgramIDEnv, programID, err)
	}
	config.LotteryProgramID = pk

	if overrides.SolanaRPCURL != "" {
		config.SolanaRPCURL = overrides.SolanaRPCURL
	}

	return config, nil
}
