package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riteshkumar/networth-tracker/internal/models"
	"github.com/riteshkumar/networth-tracker/internal/service"
)

func newSnapshotsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Capture and review net worth snapshots",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List snapshots, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(svc service.NetWorthService) error {
					return printSnapshots(cmd.OutOrStdout(), opts.format, svc.Snapshots())
				})
			},
		},
		&cobra.Command{
			Use:   "take",
			Short: "Capture current totals and a copy of every account",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(svc service.NetWorthService) error {
					snapshot := svc.TakeSnapshot()
					return printSnapshots(cmd.OutOrStdout(), opts.format, []models.Snapshot{snapshot})
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(svc service.NetWorthService) error {
					svc.DeleteSnapshot(args[0])
					fmt.Fprintf(cmd.OutOrStdout(), "deleted snapshot %s\n", args[0])
					return nil
				})
			},
		},
	)
	return cmd
}
