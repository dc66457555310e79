package cli

import (
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/spf13/cobra"
)

type DrawCmd struct {
	opts *rootOptions
}

func NewDrawCmd(opts *rootOptions) *DrawCmd {
	return &DrawCmd{opts: opts}
}

func (c *DrawCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Run the draw and pay the three winners (authority only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			winnerStrs, err := cmd.Flags().GetStringSlice("winner")
			if err != nil {
				return fmt.Errorf("failed to get winner flag: %w", err)
			}
			if len(winnerStrs) != 3 {
				return fmt.Errorf("%w: exactly 3 winners are required, got %d", lottery.ErrInvalidArgument, len(winnerStrs))
			}
			var winners [3]solana.PublicKey
			for i, w := range winnerStrs {
				pk, err := solana.PublicKeyFromBase58(w)
				if err != nil {
					return fmt.Errorf("invalid winner %q: %w", w, err)
				}
				winners[i] = pk
			}

			s, err := c.opts.newSession(true)
			if err != nil {
				return err
			}

			confirmation, err := s.client.Draw(cmd.Context(), winners)
			if err != nil {
				return err
			}
			printConfirmation(c.opts.deps.Out, "Draw completed", confirmation)
			return nil
		},
	}

	cmd.Flags().StringSlice("winner", nil, "Winner wallet, in prize order (repeat 3 times)")

	return cmd
}

type WithdrawCmd struct {
	opts *rootOptions
}

func NewWithdrawCmd(opts *rootOptions) *WithdrawCmd {
	return &WithdrawCmd{opts: opts}
}

func (c *WithdrawCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw SOL from the pool to the authority (authority only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			amountStr, err := cmd.Flags().GetString("amount")
			if err != nil {
				return fmt.Errorf("failed to get amount flag: %w", err)
			}
			lamports, err := lottery.ParseSOL(amountStr)
			if err != nil {
				return err
			}

			s, err := c.opts.newSession(true)
			if err != nil {
				return err
			}

			confirmation, err := s.client.Withdraw(cmd.Context(), lamports)
			if err != nil {
				return err
			}
			printConfirmation(c.opts.deps.Out, "Withdrew "+lottery.FormatSOL(lamports), confirmation)
			return nil
		},
	}

	cmd.Flags().String("amount", "", "Amount to withdraw in SOL")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

type SetPriceCmd struct {
	opts *rootOptions
}

func NewSetPriceCmd(opts *rootOptions) *SetPriceCmd {
	return &SetPriceCmd{opts: opts}
}

func (c *SetPriceCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-price",
		Short: "Set the ticket price (authority only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			priceStr, err := cmd.Flags().GetString("price")
			if err != nil {
				return fmt.Errorf("failed to get price flag: %w", err)
			}
			lamports, err := lottery.ParseTicketPrice(priceStr)
			if err != nil {
				return err
			}

			s, err := c.opts.newSession(true)
			if err != nil {
				return err
			}

			confirmation, err := s.client.SetTicketPrice(cmd.Context(), lamports)
			if err != nil {
				return err
			}
			printConfirmation(c.opts.deps.Out, fmt.Sprintf("Ticket price set to %s (%d lamports)", lottery.FormatSOL(lamports), lamports), confirmation)
			return nil
		},
	}

	cmd.Flags().String("price", "", "New ticket price in SOL (minimum 0.001)")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func printConfirmation(w io.Writer, msg string, confirmation *lottery.Confirmation) {
	fmt.Fprintln(w, msg)
	fmt.Fprintln(w, "Signature:", confirmation.Signature)
	fmt.Fprintln(w, "Slot:", confirmation.Slot)
}
