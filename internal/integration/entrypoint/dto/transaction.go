package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	"github.com/finanzas-dashboard/backend/internal/domain/valueobject"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Either category_id or category_name must be set; an unknown
// category_name is created on the fly.
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required,oneof=expense income"`
	Description   string          `json:"description" binding:"required,min=1,max=255"`
	CategoryID    string          `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	AccountID     string          `json:"account_id" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Notes         string          `json:"notes,omitempty"`
	ReceiptURL    string          `json:"receipt_url,omitempty"`
}

// TransactionResponse represents a single transaction in API responses with
// its references resolved to display names.
type TransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	CategoryID    string    `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	CategoryColor string    `json:"category_color"`
	AccountID     string    `json:"account_id"`
	AccountName   string    `json:"account_name"`
	Date          string    `json:"date"`
	Amount        string    `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes,omitempty"`
	ReceiptURL    string    `json:"receipt_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ImportResultResponse reports the outcome of a CSV import.
type ImportResultResponse struct {
	Created int              `json:"created"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError describes a rejected CSV row.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ToTransactionResponse converts a resolved transaction to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.TransactionWithRefs) TransactionResponse {
	return TransactionResponse{
		ID:            tx.Transaction.ID.String(),
		Type:          string(tx.Transaction.Type),
		Description:   tx.Transaction.Description,
		CategoryID:    tx.Category.ID.String(),
		CategoryName:  tx.Category.Name,
		CategoryColor: tx.Category.Color,
		AccountID:     tx.Account.ID.String(),
		AccountName:   tx.Account.Name,
		Date:          valueobject.FormatDate(tx.Transaction.Date),
		Amount:        tx.Transaction.Amount.String(),
		AmountDisplay: formatSignedAmount(tx.Transaction),
		PaymentMethod: string(tx.Transaction.PaymentMethod),
		Notes:         tx.Transaction.Notes,
		ReceiptURL:    tx.Transaction.ReceiptURL,
		CreatedAt:     tx.Transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts resolved transactions to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.TransactionWithRefs) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		items[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}

// formatSignedAmount renders the amount with the sign implied by the type,
// e.g. "-$ 50.000" for an expense.
func formatSignedAmount(tx *entity.Transaction) string {
	display := valueobject.FormatCurrency(tx.Amount)
	if tx.Type == entity.TransactionTypeExpense {
		return "-" + display
	}
	return "+" + display
}
