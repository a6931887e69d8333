// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grocery-tracker/backend/internal/application/usecase/scan"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/dto"
)

// ScanController handles barcode scan endpoints.
type ScanController struct {
	scanUseCase *scan.ScanBarcodeUseCase
}

// NewScanController creates a new scan controller instance.
func NewScanController(scanUseCase *scan.ScanBarcodeUseCase) *ScanController {
	return &ScanController{
		scanUseCase: scanUseCase,
	}
}

// Scan handles GET /scan/:barcode requests.
func (c *ScanController) Scan(ctx *gin.Context) {
	input := scan.ScanBarcodeInput{
		Barcode: ctx.Param("barcode"),
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleScanError(ctx, err)
		return
	}

	if !output.Found {
		ctx.JSON(http.StatusNotFound, dto.ToScanResponse(false, nil))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScanResponse(true, output.Product))
}

// handleScanError maps scan domain errors to HTTP responses.
func (c *ScanController) handleScanError(ctx *gin.Context, err error) {
	var scanErr *domainerror.ScanError
	if errors.As(err, &scanErr) {
		statusCode := http.StatusBadGateway
		if scanErr.Code == domainerror.ErrCodeEmptyBarcode {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: scanErr.Message,
			Code:  string(scanErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
