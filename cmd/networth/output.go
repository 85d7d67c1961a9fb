package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/riteshkumar/networth-tracker/internal/models"
	"github.com/riteshkumar/networth-tracker/internal/utils"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAccounts(w io.Writer, format string, accounts []models.Account) error {
	if format == formatJSON {
		return printJSON(w, accounts)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCATEGORY\tVALUE\tUPDATED")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.Type, a.Category, utils.FormatCurrency(a.Value), a.UpdatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func printSnapshots(w io.Writer, format string, snapshots []models.Snapshot) error {
	if format == formatJSON {
		return printJSON(w, snapshots)
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tNET WORTH\tASSETS\tLIABILITIES\tACCOUNTS")
	for _, s := range snapshots {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			s.ID, s.Date.Format(time.RFC3339),
			utils.FormatCurrency(s.NetWorth),
			utils.FormatCurrency(s.TotalAssets),
			utils.FormatCurrency(s.TotalLiabilities),
			len(s.Accounts))
	}
	return tw.Flush()
}
