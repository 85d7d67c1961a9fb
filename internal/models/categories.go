package models

import "slices"

var AssetCategories = []string{
	"Cash & Savings",
	"Checking Account",
	"Investments",
	"Retirement",
	"Real Estate",
	"Vehicle",
	"Crypto",
	"Business",
	"Other Asset",
}

var LiabilityCategories = []string{
	"Credit Card",
	"Mortgage",
	"Student Loan",
	"Auto Loan",
	"Personal Loan",
	"Medical Debt",
	"Business Loan",
	"Other Liability",
}

// CategoriesFor returns a copy of the category set valid for t, or nil for an unknown type.
func CategoriesFor(t AccountType) []string {
	switch t {
	case AccountTypeAsset:
		return slices.Clone(AssetCategories)
	case AccountTypeLiability:
		return slices.Clone(LiabilityCategories)
	default:
		return nil
	}
}

func ValidCategory(t AccountType, category string) bool {
	switch t {
	case AccountTypeAsset:
		return slices.Contains(AssetCategories, category)
	case AccountTypeLiability:
		return slices.Contains(LiabilityCategories, category)
	default:
		return false
	}
}
