package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
	"github.com/finanzas-dashboard/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create inserts the transaction and moves the account balance in one
// database transaction. The stored balance is authoritative; it is never
// recomputed from the transaction list.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createWithBalance(tx, transaction)
	})
}

// CreateBatch inserts all transactions and their balance movements
// atomically. Returns the number of rows created.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, transaction := range transactions {
			if err := createWithBalance(tx, transaction); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(transactions), nil
}

// FindAllOrdered retrieves all transactions ordered by date descending.
func (r *transactionRepository) FindAllOrdered(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

func createWithBalance(tx *gorm.DB, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := tx.Create(transactionModel).Error; err != nil {
		return err
	}

	result := tx.Model(&model.AccountModel{}).
		Where("id = ?", transaction.AccountID).
		Update("balance", gorm.Expr("balance + ?", transaction.BalanceDelta()))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}
