package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/riteshkumar/networth-tracker/internal/errors"
	"github.com/riteshkumar/networth-tracker/internal/models"
	"github.com/riteshkumar/networth-tracker/internal/report"
	"github.com/riteshkumar/networth-tracker/internal/service"
	"github.com/riteshkumar/networth-tracker/internal/utils"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total assets, liabilities and net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(svc service.NetWorthService) error {
				summary := report.Summary(svc)
				if opts.format == formatJSON {
					return printJSON(cmd.OutOrStdout(), summary)
				}

				tw := newTable(cmd.OutOrStdout())
				fmt.Fprintf(tw, "Net worth\t%s\n", summary.Display.NetWorth)
				fmt.Fprintf(tw, "Total assets\t%s\n", summary.Display.TotalAssets)
				fmt.Fprintf(tw, "Total liabilities\t%s\n", summary.Display.TotalLiabilities)
				fmt.Fprintf(tw, "Accounts\t%d\n", summary.AccountCount)
				fmt.Fprintf(tw, "Snapshots\t%d\n", summary.SnapshotCount)
				if summary.AllTimeChange != nil {
					fmt.Fprintf(tw, "Change (last %d snapshots)\t%s\n",
						min(summary.SnapshotCount, report.DashboardWindow), signed(*summary.AllTimeChange))
				}
				return tw.Flush()
			})
		},
	}
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent snapshots oldest first with the change between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return errors.NewValidationError("limit", "must be a positive integer")
			}
			return opts.withApp(cmd, func(svc service.NetWorthService) error {
				history := report.History(svc.Snapshots(), limit)
				if opts.format == formatJSON {
					return printJSON(cmd.OutOrStdout(), history)
				}

				tw := newTable(cmd.OutOrStdout())
				fmt.Fprintln(tw, "DATE\tNET WORTH\tCHANGE")
				for _, p := range history.Points {
					change := "-"
					if p.Change != nil {
						change = signed(*p.Change)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Date.Format("2006-01-02 15:04"), utils.FormatCurrency(p.NetWorth), change)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", report.ChartWindow, "Number of recent snapshots")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories allowed for each account type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := report.Categories()
			if opts.format == formatJSON {
				return printJSON(cmd.OutOrStdout(), categories)
			}

			sets := []struct {
				t    models.AccountType
				list []string
			}{
				{models.AccountTypeAsset, categories.Asset},
				{models.AccountTypeLiability, categories.Liability},
			}
			tw := newTable(cmd.OutOrStdout())
			for _, set := range sets {
				if accountType != "" && models.AccountType(accountType) != set.t {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\n", set.t, strings.Join(set.list, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&accountType, "type", "", "Only show asset or liability categories")
	return cmd
}

// signed renders a change with an explicit plus sign for gains.
func signed(d decimal.Decimal) string {
	s := utils.FormatCurrency(d)
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
