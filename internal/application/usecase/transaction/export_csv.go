package transaction

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// ExportCSVUseCase writes every transaction to a CSV file in the same
// template format the importer accepts, so an export can be re-imported.
type ExportCSVUseCase struct {
	listTransactions *ListTransactionsUseCase
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(listTransactions *ListTransactionsUseCase) *ExportCSVUseCase {
	return &ExportCSVUseCase{listTransactions: listTransactions}
}

// Execute writes the CSV to w and returns the number of data rows written.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, w io.Writer) (int, error) {
	transactions, err := uc.listTransactions.Execute(ctx)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, tx := range transactions {
		record := []string{
			string(tx.Transaction.Type),
			tx.Transaction.Description,
			tx.Category.Name,
			tx.Account.Name,
			tx.Transaction.Date.Format(csvDateLayout),
			tx.Transaction.Amount.String(),
			string(tx.Transaction.PaymentMethod),
			tx.Transaction.Notes,
		}
		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}

	return len(transactions), nil
}
