package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/malbeclabs/lottery/smartcontract/sdk/go/lottery"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type DashboardCmd struct {
	opts *rootOptions
}

func NewDashboardCmd(opts *rootOptions) *DashboardCmd {
	return &DashboardCmd{opts: opts}
}

func (c *DashboardCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the lottery pool, ticket price and your earnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			userStr, err := cmd.Flags().GetString("user")
			if err != nil {
				return fmt.Errorf("failed to get user flag: %w", err)
			}

			s, err := c.opts.newSession(false)
			if err != nil {
				return err
			}

			var user *solana.PublicKey
			if userStr != "" || s.signer != nil {
				pk, err := s.ownerOrWallet(cmd, userStr)
				if err != nil {
					return err
				}
				user = &pk
			}

			view, err := s.client.Dashboard(cmd.Context(), user)
			if err != nil {
				return fmt.Errorf("failed to load dashboard: %w", err)
			}

			fmt.Fprintln(c.opts.deps.Out, "Environment:", s.network.Moniker)
			fmt.Fprintln(c.opts.deps.Out, "Program:", s.network.LotteryProgramID)
			if user != nil {
				fmt.Fprintln(c.opts.deps.Out, "User:", user)
			}
			printDashboard(c.opts.deps.Out, view, user != nil)
			return nil
		},
	}

	cmd.Flags().String("user", "", "Wallet to show earnings and tickets for (defaults to the keypair wallet)")

	return cmd
}

func printDashboard(w io.Writer, view *lottery.DashboardView, withUser bool) {
	table := newTable(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Total Participants", strconv.FormatUint(view.TotalParticipants, 10)})
	table.Append([]string{"Active Tickets", strconv.FormatUint(view.ActiveTickets, 10)})
	table.Append([]string{"Total Revenue", formatSOL(view.TotalRevenueSOL)})
	table.Append([]string{"Ticket Price", formatSOL(view.TicketPriceSOL)})
	table.Append([]string{"Draw In Progress", strconv.FormatBool(view.DrawInProgress)})
	lastDraw := "never"
	if view.LastDraw.Unix() > 0 {
		lastDraw = view.LastDraw.UTC().Format("2006-01-02 15:04:05 MST")
	}
	table.Append([]string{"Last Draw", lastDraw})
	if withUser {
		table.Append([]string{"Referral Earnings", formatSOL(view.ReferralEarningsSOL)})
		table.Append([]string{"Your Tickets", strconv.FormatUint(view.UserTickets, 10)})
	}
	table.Render()

	if len(view.RecentDraws) == 0 {
		return
	}
	draws := newTable(w)
	draws.SetHeader([]string{"Draw", "Date", "L1\nReferrals", "L2\nReferrals", "L1 Volume", "L2 Volume"})
	for _, d := range view.RecentDraws {
		draws.Append([]string{
			strconv.FormatUint(d.Number, 10),
			d.Date.UTC().Format("2006-01-02"),
			strconv.FormatUint(d.L1Referrals, 10),
			strconv.FormatUint(d.L2Referrals, 10),
			formatSOL(d.L1VolumeSOL),
			formatSOL(d.L2VolumeSOL),
		})
	}
	draws.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetRowLine(true)
	return table
}

func formatSOL(sol float64) string {
	return fmt.Sprintf("%.2f SOL", sol)
}
