package cli

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
)

const (
	deriveKindLotteryState = "lottery-state"
	deriveKindUserTicket   = "user-ticket"
	deriveKindUserReferral = "user-referral"
	deriveKindSeeds        = "seeds"

	rawSeedPrefix = "b58:"
)

type DeriveCmd struct {
	opts *rootOptions
}

func NewDeriveCmd(opts *rootOptions) *DeriveCmd {
	return &DeriveCmd{opts: opts}
}

func (c *DeriveCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive <lottery-state|user-ticket|user-referral|seeds>",
		Short: "Derive a program address offline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerStr, err := cmd.Flags().GetString("owner")
			if err != nil {
				return fmt.Errorf("failed to get owner flag: %w", err)
			}
			seedStrs, err := cmd.Flags().GetStringArray("seed")
			if err != nil {
				return fmt.Errorf("failed to get seed flag: %w", err)
			}

			networkConfig, err := c.opts.network()
			if err != nil {
				return err
			}
			programID := networkConfig.LotteryProgramID

			var address solana.PublicKey
			var bump uint8
			switch kind := args[0]; kind {
			case deriveKindLotteryState:
				address, bump, err = lottery.DeriveLotteryStatePDA(programID)
			case deriveKindUserTicket, deriveKindUserReferral:
				if ownerStr == "" {
					return fmt.Errorf("--owner is required for %s", kind)
				}
				owner, perr := solana.PublicKeyFromBase58(ownerStr)
				if perr != nil {
					return fmt.Errorf("invalid owner %q: %w", ownerStr, perr)
				}
				if kind == deriveKindUserTicket {
					address, bump, err = lottery.DeriveUserTicketPDA(programID, owner)
				} else {
					address, bump, err = lottery.DeriveUserReferralPDA(programID, owner)
				}
			case deriveKindSeeds:
				seeds, perr := parseSeeds(seedStrs)
				if perr != nil {
					return perr
				}
				address, bump, err = lottery.FindProgramAddress(seeds, programID)
			default:
				return fmt.Errorf("unknown address kind %q", kind)
			}
			if err != nil {
				return fmt.Errorf("failed to derive address: %w", err)
			}

			fmt.Fprintln(c.opts.deps.Out, "Program:", programID)
			fmt.Fprintln(c.opts.deps.Out, "Address:", address)
			fmt.Fprintln(c.opts.deps.Out, "Bump:", bump)
			return nil
		},
	}

	cmd.Flags().String("owner", "", "Owner wallet for user-ticket and user-referral")
	cmd.Flags().StringArray("seed", nil, "Seed for the seeds kind; utf-8 text, or base58 bytes with the b58: prefix")

	return cmd
}

// parseSeeds turns seed flags into raw seed bytes. Seeds prefixed with b58: are
// decoded as base58, so public keys can be passed as seeds.
func parseSeeds(raw []string) ([][]byte, error) {
	seeds := make([][]byte, 0, len(raw))
	for _, s := range raw {
		encoded, ok := strings.CutPrefix(s, rawSeedPrefix)
		if !ok {
			seeds = append(seeds, []byte(s))
			continue
		}
		b, err := base58.Decode(encoded)
		if err != nil {
			return nil, fmt.Errorf("invalid base58 seed %q: %w", s, err)
		}
		seeds = append(seeds, b)
	}
	return seeds, nil
}
