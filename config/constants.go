package config

const (
	// Mainnet constants.
	MainnetSolanaRPC        = "https://api.mainnet-beta.solana.com"
	MainnetLotteryProgramID = ""

	// Testnet constants.
	TestnetSolanaRPC        = "https://api.testnet.solana.com"
	TestnetLotteryProgramID = ""

	// Devnet constants.
	DevnetSolanaRPC        = "https://api.devnet.solana.com"
	DevnetLotteryProgramID = "DfCSQQ6a3CTHf92X9YF7MiitMRbNaZZfbgFZ4yQrbcCd"

	// Localnet constants. The local validator deploys the devnet program keypair.
	LocalnetSolanaRPC        = "http://127.0.0.1:8899"
	LocalnetLotteryProgramID = DevnetLotteryProgramID
)

// Environment variable overrides.
const (
	EnvVarRPCURL    = "LOTTERY_RPC_URL"
	EnvVarProgramID = "LOTTERY_PROGRAM_ID"
)
