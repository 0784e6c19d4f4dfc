package transaction

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	"github.com/finanzas-dashboard/backend/internal/application/usecase/category"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
)

// csvHeader is the template header every imported file must match exactly.
var csvHeader = []string{"tipo", "descripcion", "categoria", "cuenta", "fecha", "monto", "metodo_pago", "notas"}

// csvDateLayout is the dd/mm/yyyy format used by the import template.
const csvDateLayout = "02/01/2006"

// RowError describes why a single CSV row was rejected. Line is 1-based and
// counts the header.
type RowError struct {
	Line    int
	Message string
}

// ImportCSVOutput reports how many rows were created and which were rejected.
type ImportCSVOutput struct {
	Created int
	Errors  []RowError
}

// ImportCSVUseCase imports transactions from a CSV file in the template
// format. Rows are validated independently: bad rows are collected as errors
// while the valid ones are still imported in a single batch.
type ImportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	findOrCreate    *category.FindOrCreateCategoryUseCase
	cache           adapter.EntityCache
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	findOrCreate *category.FindOrCreateCategoryUseCase,
	cache adapter.EntityCache,
) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		findOrCreate:    findOrCreate,
		cache:           cache,
	}
}

// Execute parses and imports the CSV. The header must match the template
// exactly; a mismatched header rejects the whole file.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, r io.Reader) (*ImportCSVOutput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCSV,
			"csv file is empty",
			domainerror.ErrEmptyCSV,
		)
	}
	if !headerMatches(header) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCSVHeader,
			fmt.Sprintf("csv header must be %q", strings.Join(csvHeader, ",")),
			domainerror.ErrInvalidCSVHeader,
		)
	}

	output := &ImportCSVOutput{}
	var pending []*entity.Transaction

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			output.Errors = append(output.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}

		tx, err := uc.parseRow(ctx, record)
		if err != nil {
			output.Errors = append(output.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}
		pending = append(pending, tx)
	}

	if len(pending) == 0 && len(output.Errors) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCSV,
			"csv contains no data rows",
			domainerror.ErrEmptyCSV,
		)
	}

	if len(pending) > 0 {
		created, err := uc.transactionRepo.CreateBatch(ctx, pending)
		if err != nil {
			return nil, fmt.Errorf("failed to import transactions: %w", err)
		}
		output.Created = created
		uc.cache.Invalidate(ctx, adapter.CacheKeyTransactions, adapter.CacheKeyAccounts)
	}

	return output, nil
}

func (uc *ImportCSVUseCase) parseRow(ctx context.Context, record []string) (*entity.Transaction, error) {
	if len(record) != len(csvHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(record))
	}

	txType := entity.TransactionType(strings.TrimSpace(record[0]))
	if !txType.IsValid() {
		return nil, fmt.Errorf("unknown tipo %q", record[0])
	}

	description := strings.TrimSpace(record[1])
	if description == "" {
		return nil, domainerror.ErrDescriptionRequired
	}

	categoryName := strings.TrimSpace(record[2])
	if categoryName == "" {
		return nil, domainerror.ErrCategoryNameRequired
	}

	accountName := strings.TrimSpace(record[3])
	account, err := uc.accountRepo.FindByName(ctx, accountName)
	if err != nil {
		return nil, fmt.Errorf("unknown cuenta %q", accountName)
	}

	date, err := time.Parse(csvDateLayout, strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("fecha %q is not dd/mm/yyyy", record[4])
	}

	amount, err := parseCSVAmount(record[5])
	if err != nil {
		return nil, err
	}

	method := entity.PaymentMethod(strings.TrimSpace(record[6]))
	if !method.IsValid() {
		return nil, fmt.Errorf("unknown metodo_pago %q", record[6])
	}

	cat, err := uc.findOrCreate.Execute(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(record[7])

	return entity.NewTransaction(txType, description, cat.ID, account.ID, date, amount, method, notes, ""), nil
}

func parseCSVAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto %q is not a number", raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, domainerror.ErrInvalidAmount
	}
	return amount, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(csvHeader) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), csvHeader[i]) {
			return false
		}
	}
	return true
}
