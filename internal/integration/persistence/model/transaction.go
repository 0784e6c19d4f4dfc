package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Amount is stored positive; the sign lives in Type.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date          time.Time       `gorm:"not null;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Notes         string          `gorm:"type:text"`
	ReceiptURL    string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		Description:   m.Description,
		CategoryID:    m.CategoryID,
		AccountID:     m.AccountID,
		Date:          m.Date,
		Amount:        m.Amount,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Notes:         m.Notes,
		ReceiptURL:    m.ReceiptURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            transaction.ID,
		Type:          string(transaction.Type),
		Description:   transaction.Description,
		CategoryID:    transaction.CategoryID,
		AccountID:     transaction.AccountID,
		Date:          transaction.Date,
		Amount:        transaction.Amount,
		PaymentMethod: string(transaction.PaymentMethod),
		Notes:         transaction.Notes,
		ReceiptURL:    transaction.ReceiptURL,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
