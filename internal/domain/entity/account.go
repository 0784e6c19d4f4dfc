// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of financial account.
type AccountType string

const (
	AccountTypeSavings    AccountType = "savings"
	AccountTypeChecking   AccountType = "checking"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeOther      AccountType = "other"
)

// IsValid reports whether the account type is one of the known values.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeCredit,
		AccountTypeInvestment, AccountTypeOther:
		return true
	}
	return false
}

// Account represents a financial account. Balance is signed, expressed in the
// smallest currency unit, and is authoritative at the store — it is adjusted
// there when transactions are inserted and never recomputed by readers.
type Account struct {
	ID        uuid.UUID
	Name      string
	Balance   decimal.Decimal
	Type      AccountType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(name string, balance decimal.Decimal, accountType AccountType) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Balance:   balance,
		Type:      accountType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
