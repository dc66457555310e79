package cli

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/spf13/cobra"
)

type BuyCmd struct {
	opts *rootOptions
}

func NewBuyCmd(opts *rootOptions) *BuyCmd {
	return &BuyCmd{opts: opts}
}

func (c *BuyCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy lottery tickets, optionally crediting a referrer",
		RunE: func(cmd *cobra.Command, args []string) error {
			countStr, err := cmd.Flags().GetString("count")
			if err != nil {
				return fmt.Errorf("failed to get count flag: %w", err)
			}
			referrerStr, err := cmd.Flags().GetString("referrer")
			if err != nil {
				return fmt.Errorf("failed to get referrer flag: %w", err)
			}

			count, err := lottery.ParseTicketCount(countStr)
			if err != nil {
				return err
			}
			var referrer *solana.PublicKey
			if referrerStr != "" {
				pk, err := solana.PublicKeyFromBase58(referrerStr)
				if err != nil {
					return fmt.Errorf("invalid referrer %q: %w", referrerStr, err)
				}
				referrer = &pk
			}

			s, err := c.opts.newSession(true)
			if err != nil {
				return err
			}

			confirmation, err := s.client.BuyTickets(cmd.Context(), count, referrer)
			if err != nil {
				return err
			}
			printConfirmation(c.opts.deps.Out, fmt.Sprintf("Bought %d ticket(s)", count), confirmation)
			return nil
		},
	}

	cmd.Flags().String("count", "1", "Number of tickets to buy")
	cmd.Flags().String("referrer", "", "Wallet that referred you")

	return cmd
}
