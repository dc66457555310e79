package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type TicketsCmd struct {
	opts *rootOptions
}

func NewTicketsCmd(opts *rootOptions) *TicketsCmd {
	return &TicketsCmd{opts: opts}
}

func (c *TicketsCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Show how many tickets a wallet holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerStr, err := cmd.Flags().GetString("owner")
			if err != nil {
				return fmt.Errorf("failed to get owner flag: %w", err)
			}

			s, err := c.opts.newSession(false)
			if err != nil {
				return err
			}
			owner, err := s.ownerOrWallet(cmd, ownerStr)
			if err != nil {
				return err
			}

			account, found, err := s.client.GetUserTicketAccount(cmd.Context(), owner)
			if err != nil {
				return fmt.Errorf("failed to get user ticket account: %w", err)
			}
			var count uint64
			if found {
				count = account.TicketCount
			}

			fmt.Fprintln(c.opts.deps.Out, "Owner:", owner)
			fmt.Fprintln(c.opts.deps.Out, "Tickets:", count)
			return nil
		},
	}

	cmd.Flags().String("owner", "", "Wallet to inspect (defaults to the keypair wallet)")

	return cmd
}
