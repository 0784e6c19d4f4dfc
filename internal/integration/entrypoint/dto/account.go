package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	"github.com/finanzas-dashboard/backend/internal/domain/valueobject"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Type           string          `json:"type" binding:"required"`
}

// AccountResponse represents a single account in API responses. Balance
// carries the raw value; BalanceDisplay the es-CO rendering.
type AccountResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Balance        string    `json:"balance"`
	BalanceDisplay string    `json:"balance_display"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		Balance:        account.Balance.String(),
		BalanceDisplay: valueobject.FormatCurrency(account.Balance),
		Type:           string(account.Type),
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	items := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		items[i] = ToAccountResponse(account)
	}
	return AccountListResponse{
		Accounts: items,
	}
}
