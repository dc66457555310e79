package cli

import (
	"fmt"
	"strconv"

	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/spf13/cobra"
)

type ReferralCmd struct {
	opts *rootOptions
}

func NewReferralCmd(opts *rootOptions) *ReferralCmd {
	return &ReferralCmd{opts: opts}
}

func (c *ReferralCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral",
		Short: "Show a wallet's referral stats and the commission chain it starts",
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

			account, found, err := s.client.GetReferralAccount(cmd.Context(), owner)
			if err != nil {
				return fmt.Errorf("failed to get referral account: %w", err)
			}
			if !found {
				account = &lottery.ReferralAccount{}
			}

			fmt.Fprintln(c.opts.deps.Out, "Owner:", owner)
			table := newTable(c.opts.deps.Out)
			table.SetHeader([]string{"Metric", "Value"})
			parent := "none"
			if account.HasParent() {
				parent = account.Parent.String()
			}
			table.Append([]string{"Referred By", parent})
			table.Append([]string{"L1 Referrals", strconv.FormatUint(account.L1Referrals, 10)})
			table.Append([]string{"L2 Referrals", strconv.FormatUint(account.L2Referrals, 10)})
			table.Append([]string{"L1 Volume", lottery.FormatSOL(account.L1Volume)})
			table.Append([]string{"L2 Volume", lottery.FormatSOL(account.L2Volume)})
			table.Append([]string{"Earnings", lottery.FormatSOL(account.Earnings)})
			table.Render()

			chain, err := s.client.ResolveReferrals(cmd.Context(), &owner)
			if err != nil {
				return fmt.Errorf("failed to resolve referral chain: %w", err)
			}
			levels := newTable(c.opts.deps.Out)
			levels.SetHeader([]string{"Level", "Referrer", "Referral Account"})
			for i, level := range chain {
				levels.Append([]string{
					"L" + strconv.Itoa(i+1),
					level.Referrer.String(),
					level.ReferralAccount.String(),
				})
			}
			levels.Render()
			return nil
		},
	}

	cmd.Flags().String("owner", "", "Wallet to inspect (defaults to the keypair wallet)")

	return cmd
}
