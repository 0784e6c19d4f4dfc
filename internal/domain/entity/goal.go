// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents the outcome of one savings-calculator submission.
// Goals are created fresh per submission and are never persisted.
type SavingsGoal struct {
	ID                  uuid.UUID
	Name                string
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	Deadline            *time.Time
	MonthlySavingAmount decimal.Decimal
	Recommendations     []string
	CreatedAt           time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(name string, targetAmount decimal.Decimal) *SavingsGoal {
	return &SavingsGoal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		CreatedAt:     time.Now().UTC(),
	}
}
