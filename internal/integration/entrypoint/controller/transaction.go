package controller

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanzas-dashboard/backend/internal/application/usecase/transaction"
	"github.com/finanzas-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	importUseCase *transaction.ImportCSVUseCase
	exportUseCase *transaction.ExportCSVUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	importUseCase *transaction.ImportCSVUseCase,
	exportUseCase *transaction.ExportCSVUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		importUseCase: importUseCase,
		exportUseCase: exportUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	transactions, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := parseRequestDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Date must be dd/mm/yyyy",
			Code:  string(domainerror.ErrCodeMissingTransactionDate),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		Type:          entity.TransactionType(req.Type),
		Description:   req.Description,
		CategoryName:  req.CategoryName,
		Date:          date,
		Amount:        req.Amount,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		ReceiptURL:    req.ReceiptURL,
	}

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = categoryID
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}
	input.AccountID = accountID

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output))
}

// ImportCSV handles POST /transactions/import requests. The CSV travels as
// a multipart file field named "file".
func (c *TransactionController) ImportCSV(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "CSV file is required",
			Code:  string(domainerror.ErrCodeEmptyCSV),
		})
		return
	}
	defer file.Close()

	output, err := c.importUseCase.Execute(ctx.Request.Context(), file)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ImportResultResponse{Created: output.Created}
	for _, rowErr := range output.Errors {
		response.Errors = append(response.Errors, dto.ImportRowError{
			Line:    rowErr.Line,
			Message: rowErr.Message,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// ExportCSV handles GET /transactions/export requests.
func (c *TransactionController) ExportCSV(ctx *gin.Context) {
	var buf bytes.Buffer
	if _, err := c.exportUseCase.Execute(ctx.Request.Context(), &buf); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	filename := "transacciones-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(c.statusCodeFor(txErr.Code), dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrCategoryNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}
	if errors.Is(err, domainerror.ErrAccountNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Account not found",
			Code:  string(domainerror.ErrCodeAccountNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func (c *TransactionController) statusCodeFor(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnresolvedReference:
		return http.StatusInternalServerError
	case domainerror.ErrCodeDescriptionRequired,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeMissingTransactionDate,
		domainerror.ErrCodeInvalidCSVHeader,
		domainerror.ErrCodeEmptyCSV,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseRequestDate accepts the dd/mm/yyyy display format and the ISO date
// format as a fallback.
func parseRequestDate(raw string) (time.Time, error) {
	if date, err := time.Parse("02/01/2006", raw); err == nil {
		return date, nil
	}
	return time.Parse("2006-01-02", raw)
}
