// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCredit   PaymentMethod = "credit"
	PaymentMethodDebit    PaymentMethod = "debit"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

// IsValid reports whether the payment method is one of the known values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCredit, PaymentMethodDebit,
		PaymentMethodTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// Transaction represents a financial movement against an account.
// Amount is always positive; the sign is implied by Type.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Description   string
	CategoryID    uuid.UUID
	AccountID     uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	Notes         string
	ReceiptURL    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	description string,
	categoryID uuid.UUID,
	accountID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	paymentMethod PaymentMethod,
	notes string,
	receiptURL string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Type:          transactionType,
		Description:   description,
		CategoryID:    categoryID,
		AccountID:     accountID,
		Date:          date,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Notes:         notes,
		ReceiptURL:    receiptURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// BalanceDelta returns the signed effect of the transaction on its account
// balance: positive for income, negative for expense.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionWithRefs represents a transaction with its category and account
// references resolved. Every persisted transaction must resolve both at read
// time; an unresolved reference is a data-fetch ordering bug, not a domain
// state.
type TransactionWithRefs struct {
	Transaction *Transaction
	Category    *Category
	Account     *Account
}
