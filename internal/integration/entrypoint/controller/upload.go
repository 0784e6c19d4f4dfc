package controller

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanzas-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finanzas-dashboard/backend/internal/domain/error"
	"github.com/finanzas-dashboard/backend/internal/integration/entrypoint/dto"
)

// maxReceiptSize caps receipt uploads at 10 MB.
const maxReceiptSize = 10 << 20

// UploadController handles receipt file uploads.
type UploadController struct {
	storage adapter.FileStorage
}

// NewUploadController creates a new upload controller instance.
func NewUploadController(storage adapter.FileStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// UploadReceipt handles POST /uploads/receipts requests. The file travels as
// a multipart field named "file"; the response carries its public URL.
func (c *UploadController) UploadReceipt(ctx *gin.Context) {
	if !c.storage.IsAvailable() {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "File storage is not configured",
			Code:  string(domainerror.ErrCodeStorageNotConfigured),
		})
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Upload file is required",
			Code:  string(domainerror.ErrCodeEmptyUpload),
		})
		return
	}
	defer file.Close()

	if header.Size == 0 || header.Size > maxReceiptSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Upload file must be between 1 byte and 10 MB",
			Code:  string(domainerror.ErrCodeEmptyUpload),
		})
		return
	}

	objectName := "receipts/" + time.Now().UTC().Format("2006/01") + "/" +
		uuid.New().String() + filepath.Ext(header.Filename)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := c.storage.Upload(ctx.Request.Context(), objectName, contentType, file)
	if err != nil {
		c.handleStorageError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}

// handleStorageError maps storage errors to HTTP responses.
func (c *UploadController) handleStorageError(ctx *gin.Context, err error) {
	var stgErr *domainerror.StorageError
	if errors.As(err, &stgErr) {
		status := http.StatusBadGateway
		if stgErr.Code == domainerror.ErrCodeStorageNotConfigured {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: stgErr.Message,
			Code:  string(stgErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
