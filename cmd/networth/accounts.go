package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/riteshkumar/networth-tracker/internal/errors"
	"github.com/riteshkumar/networth-tracker/internal/models"
	"github.com/riteshkumar/networth-tracker/internal/service"
	"github.com/riteshkumar/networth-tracker/internal/validate"
)

func newAccountsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and edit accounts",
	}
	cmd.AddCommand(
		newAccountsListCmd(opts),
		newAccountsAddCmd(opts),
		newAccountsUpdateCmd(opts),
		newAccountsDeleteCmd(opts),
	)
	return cmd
}

func newAccountsListCmd(opts *rootOptions) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.AccountType(accountType)
			if accountType != "" && !filter.Valid() {
				return errors.NewValidationError("type", "must be asset or liability")
			}
			return opts.withApp(cmd, func(svc service.NetWorthService) error {
				accounts := svc.Accounts()
				if accountType != "" {
					filtered := accounts[:0]
					for _, a := range accounts {
						if a.Type == filter {
							filtered = append(filtered, a)
						}
					}
					accounts = filtered
				}
				return printAccounts(cmd.OutOrStdout(), opts.format, accounts)
			})
		},
	}
	cmd.Flags().StringVar(&accountType, "type", "", "Only list asset or liability accounts")
	return cmd
}

func newAccountsAddCmd(opts *rootOptions) *cobra.Command {
	var (
		req   models.CreateAccountRequest
		typ   string
		value string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Example: `  networth accounts add --name "Chase Savings" --type asset --category "Cash & Savings" --value 5000
  networth accounts add --name Visa --type liability --category "Credit Card" --value 1200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Type = models.AccountType(typ)
			if cmd.Flags().Changed("value") {
				v, err := parseValue(value)
				if err != nil {
					return err
				}
				req.Value = &v
			}
			draft, err := validate.NewAccount(&req)
			if err != nil {
				return err
			}
			return opts.withApp(cmd, func(svc service.NetWorthService) error {
				account := svc.AddAccount(draft)
				return printAccounts(cmd.OutOrStdout(), opts.format, []models.Account{account})
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Account name")
	cmd.Flags().StringVar(&typ, "type", "", "asset or liability")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category for the account type, see 'networth categories'")
	cmd.Flags().StringVar(&value, "value", "", "Current value, 0 or greater")
	return cmd
}

func newAccountsUpdateCmd(opts *rootOptions) *cobra.Command {
	var name, typ, category, value string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an account; omitted flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req models.UpdateAccountRequest
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("type") {
				t := models.AccountType(typ)
				req.Type = &t
			}
			if flags.Changed("category") {
				req.Category = &category
			}
			if flags.Changed("value") {
				v, err := parseValue(value)
				if err != nil {
					return err
				}
				req.Value = &v
			}

			return opts.withApp(cmd, func(svc service.NetWorthService) error {
				existing, ok := svc.Account(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", errors.ErrAccountNotFound, args[0])
				}
				updated, err := validate.AccountUpdate(existing, &req)
				if err != nil {
					return err
				}
				svc.UpdateAccount(updated)

				account, _ := svc.Account(args[0])
				return printAccounts(cmd.OutOrStdout(), opts.format, []models.Account{account})
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&typ, "type", "", "New type; requires --category")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&value, "value", "", "New value")
	return cmd
}

func newAccountsDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account; snapshots keep their copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(svc service.NetWorthService) error {
				svc.DeleteAccount(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "deleted account %s\n", args[0])
				return nil
			})
		},
	}
}

func parseValue(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.NewValidationError("value", "must be a number")
	}
	return v, nil
}
