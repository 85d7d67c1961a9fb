// Package report shapes derived values into the read models served over HTTP
// and printed by the CLI.
package report

import (
	"github.com/riteshkumar/networth-tracker/internal/derive"
	"github.com/riteshkumar/networth-tracker/internal/models"
	"github.com/riteshkumar/networth-tracker/internal/service"
	"github.com/riteshkumar/networth-tracker/internal/utils"
)

const (
	// DashboardWindow is how many recent snapshots the dashboard compares.
	DashboardWindow = 10
	// ChartWindow is how many recent snapshots a history chart plots.
	ChartWindow = 12
)

// Summary reports current totals and the change across the dashboard window.
func Summary(svc service.NetWorthService) models.SummaryResponse {
	totals := svc.Totals()
	snapshots := svc.Snapshots()

	resp := models.SummaryResponse{
		IsLoading:        svc.IsLoading(),
		TotalAssets:      totals.TotalAssets,
		TotalLiabilities: totals.TotalLiabilities,
		NetWorth:         totals.NetWorth,
		Display: models.DisplayTotals{
			TotalAssets:      utils.FormatCurrency(totals.TotalAssets),
			TotalLiabilities: utils.FormatCurrency(totals.TotalLiabilities),
			NetWorth:         utils.FormatCurrency(totals.NetWorth),
		},
		AccountCount:  len(svc.Accounts()),
		SnapshotCount: len(snapshots),
	}
	if change, ok := derive.AllTimeChange(snapshots, DashboardWindow); ok {
		resp.AllTimeChange = &change
	}
	return resp
}

// History returns the most recent limit snapshots oldest first, each with its
// change since the next-older snapshot.
func History(snapshots []models.Snapshot, limit int) models.HistoryResponse {
	points := derive.History(snapshots, limit)

	resp := models.HistoryResponse{Points: make([]models.HistoryPointResponse, 0, len(points))}
	for _, p := range points {
		point := models.HistoryPointResponse{
			SnapshotID:       p.Snapshot.ID,
			Date:             p.Snapshot.Date,
			NetWorth:         p.Snapshot.NetWorth,
			TotalAssets:      p.Snapshot.TotalAssets,
			TotalLiabilities: p.Snapshot.TotalLiabilities,
			Label:            utils.FormatCompact(p.Snapshot.NetWorth),
			AccountCount:     len(p.Snapshot.Accounts),
		}
		if p.HasChange {
			change := p.Change
			point.Change = &change
		}
		resp.Points = append(resp.Points, point)
	}
	if change, ok := derive.AllTimeChange(snapshots, limit); ok {
		resp.AllTimeChange = &change
	}
	return resp
}

func Breakdown(accounts []models.Account) models.BreakdownResponse {
	return models.BreakdownResponse{
		Assets:      categoryTotals(derive.Breakdown(accounts, models.AccountTypeAsset)),
		Liabilities: categoryTotals(derive.Breakdown(accounts, models.AccountTypeLiability)),
	}
}

func Categories() models.CategoriesResponse {
	return models.CategoriesResponse{
		Asset:     models.CategoriesFor(models.AccountTypeAsset),
		Liability: models.CategoriesFor(models.AccountTypeLiability),
	}
}

func categoryTotals(totals []derive.CategoryTotal) []models.CategoryTotalResponse {
	out := make([]models.CategoryTotalResponse, 0, len(totals))
	for _, ct := range totals {
		out = append(out, models.CategoryTotalResponse{
			Category: ct.Category,
			Total:    ct.Total,
			Label:    utils.FormatCompact(ct.Total),
		})
	}
	return out
}
