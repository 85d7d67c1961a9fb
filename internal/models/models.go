package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are stored as plain JSON numbers, matching the persisted blob format
	decimal.MarshalJSONWithoutQuotes = true
}

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
)

func (t AccountType) Valid() bool {
	return t == AccountTypeAsset || t == AccountTypeLiability
}

// Account is a tracked asset or liability. Value is always non-negative;
// liabilities store the owed amount and are subtracted at aggregation time.
type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Category  string          `json:"category"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// AccountDraft carries the user-provided fields of a new account.
type AccountDraft struct {
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// Snapshot is a frozen capture of the totals and the full account list.
type Snapshot struct {
	ID               string          `json:"id"`
	Date             time.Time       `json:"date"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	Accounts         []Account       `json:"accounts"`
}

// Clone returns a snapshot that shares no slices with s.
func (s Snapshot) Clone() Snapshot {
	s.Accounts = CloneAccounts(s.Accounts)
	return s
}

type Totals struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// State is the persisted document: every save writes the whole pair.
type State struct {
	Accounts  []Account  `json:"accounts"`
	Snapshots []Snapshot `json:"snapshots"`
}

func NewState() *State {
	return &State{
		Accounts:  []Account{},
		Snapshots: []Snapshot{},
	}
}

func (s *State) Clone() *State {
	out := &State{
		Accounts:  CloneAccounts(s.Accounts),
		Snapshots: make([]Snapshot, len(s.Snapshots)),
	}
	for i, snap := range s.Snapshots {
		out.Snapshots[i] = snap.Clone()
	}
	return out
}

// Normalize replaces nil collections with empty ones so the state always
// encodes as {"accounts":[],"snapshots":[]}.
func (s *State) Normalize() {
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.Snapshots == nil {
		s.Snapshots = []Snapshot{}
	}
	for i := range s.Snapshots {
		if s.Snapshots[i].Accounts == nil {
			s.Snapshots[i].Accounts = []Account{}
		}
	}
}

func CloneAccounts(accounts []Account) []Account {
	if accounts == nil {
		return []Account{}
	}
	return slices.Clone(accounts)
}

type CreateAccountRequest struct {
	Name     string           `json:"name"`
	Type     AccountType      `json:"type"`
	Category string           `json:"category"`
	Value    *decimal.Decimal `json:"value"`
}

// UpdateAccountRequest overlays the supplied fields on the stored account.
type UpdateAccountRequest struct {
	Name     *string          `json:"name"`
	Type     *AccountType     `json:"type"`
	Category *string          `json:"category"`
	Value    *decimal.Decimal `json:"value"`
}

type DisplayTotals struct {
	TotalAssets      string `json:"totalAssets"`
	TotalLiabilities string `json:"totalLiabilities"`
	NetWorth         string `json:"netWorth"`
}

type SummaryResponse struct {
	IsLoading        bool             `json:"isLoading"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	NetWorth         decimal.Decimal  `json:"netWorth"`
	Display          DisplayTotals    `json:"display"`
	AccountCount     int              `json:"accountCount"`
	SnapshotCount    int              `json:"snapshotCount"`
	AllTimeChange    *decimal.Decimal `json:"allTimeChange,omitempty"`
}

type HistoryPointResponse struct {
	SnapshotID       string           `json:"snapshotId"`
	Date             time.Time        `json:"date"`
	NetWorth         decimal.Decimal  `json:"netWorth"`
	TotalAssets      decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	Change           *decimal.Decimal `json:"change,omitempty"`
	Label            string           `json:"label"`
	AccountCount     int              `json:"accountCount"`
}

type HistoryResponse struct {
	Points        []HistoryPointResponse `json:"points"`
	AllTimeChange *decimal.Decimal       `json:"allTimeChange,omitempty"`
}

type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Label    string          `json:"label"`
}

type BreakdownResponse struct {
	Assets      []CategoryTotalResponse `json:"assets"`
	Liabilities []CategoryTotalResponse `json:"liabilities"`
}

type CategoriesResponse struct {
	Asset     []string `json:"asset"`
	Liability []string `json:"liability"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
