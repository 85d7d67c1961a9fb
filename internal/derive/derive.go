// Package derive computes aggregate values from accounts and snapshots.
// Everything here is recomputed from its inputs on each call; nothing is cached.
package derive

import (
	"github.com/shopspring/decimal"

	"github.com/riteshkumar/networth-tracker/internal/models"
)

func TotalAssets(accounts []models.Account) decimal.Decimal {
	return sumOf(accounts, models.AccountTypeAsset)
}

func TotalLiabilities(accounts []models.Account) decimal.Decimal {
	return sumOf(accounts, models.AccountTypeLiability)
}

func NetWorth(accounts []models.Account) decimal.Decimal {
	return TotalAssets(accounts).Sub(TotalLiabilities(accounts))
}

func Totals(accounts []models.Account) models.Totals {
	assets := TotalAssets(accounts)
	liabilities := TotalLiabilities(accounts)
	return models.Totals{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets.Sub(liabilities),
	}
}

func sumOf(accounts []models.Account, t models.AccountType) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.Type == t {
			total = total.Add(a.Value)
		}
	}
	return total
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Breakdown sums account values of type t per category, in the order each
// category is first seen.
func Breakdown(accounts []models.Account, t models.AccountType) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, a := range accounts {
		if a.Type != t {
			continue
		}
		i, ok := index[a.Category]
		if !ok {
			i = len(out)
			index[a.Category] = i
			out = append(out, CategoryTotal{Category: a.Category, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(a.Value)
	}
	return out
}
