package derive

import (
	"github.com/shopspring/decimal"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

// Snapshot slices passed to these functions are newest-first, as stored.

// ChangeAt returns the net worth change of snapshots[i] relative to the
// next-older snapshot. ok is false for the oldest snapshot or an out of range index.
func ChangeAt(snapshots []models.Snapshot, i int) (change decimal.Decimal, ok bool) {
	if i < 0 || i+1 >= len(snapshots) {
		return decimal.Zero, false
	}
	return snapshots[i].NetWorth.Sub(snapshots[i+1].NetWorth), true
}

// Window returns the most recent n snapshots ordered oldest to newest.
// n <= 0 selects all of them.
func Window(snapshots []models.Snapshot, n int) []models.Snapshot {
	if n <= 0 || n > len(snapshots) {
		n = len(snapshots)
	}
	out := make([]models.Snapshot, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = snapshots[i]
	}
	return out
}

// AllTimeChange is the newest net worth minus the oldest one within the most
// recent n snapshots (all snapshots when n <= 0). It needs at least two snapshots.
func AllTimeChange(snapshots []models.Snapshot, n int) (decimal.Decimal, bool) {
	w := Window(snapshots, n)
	if len(w) < 2 {
		return decimal.Zero, false
	}
	return w[len(w)-1].NetWorth.Sub(w[0].NetWorth), true
}

type HistoryPoint struct {
	Snapshot  models.Snapshot
	Change    decimal.Decimal
	HasChange bool
}

// History pairs each snapshot of the recent window with its change since the
// next-older stored snapshot, oldest first. The oldest point of the window
// still carries a change when an older snapshot exists outside the window.
func History(snapshots []models.Snapshot, n int) []HistoryPoint {
	w := Window(snapshots, n)
	out := make([]HistoryPoint, len(w))
	for j := range w {
		// position of w[j] in the newest-first slice
		i := len(w) - 1 - j
		change, ok := ChangeAt(snapshots, i)
		out[j] = HistoryPoint{Snapshot: w[j], Change: change, HasChange: ok}
	}
	return out
}
