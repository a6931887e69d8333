// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/application/usecase/purchase"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/dto"
)

// PurchaseController handles purchase endpoints.
type PurchaseController struct {
	recordUseCase *purchase.RecordPurchaseUseCase
	listUseCase   *purchase.ListPurchasesUseCase
}

// NewPurchaseController creates a new purchase controller instance.
func NewPurchaseController(
	recordUseCase *purchase.RecordPurchaseUseCase,
	listUseCase *purchase.ListPurchasesUseCase,
) *PurchaseController {
	return &PurchaseController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
	}
}

// Record handles POST /purchases requests.
func (c *PurchaseController) Record(ctx *gin.Context) {
	var req dto.RecordPurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	input := purchase.RecordPurchaseInput{
		ItemID:    itemID,
		Quantity:  req.Quantity,
		TotalCost: req.TotalCost,
		Date:      req.Date,
		StoreName: req.StoreName,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	response := dto.ToPurchaseResponse(output.Purchase)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /purchases requests. The date range defaults to the last
// thirty days when not provided.
func (c *PurchaseController) List(ctx *gin.Context) {
	now := time.Now().UTC()
	startDate := now.AddDate(0, 0, -30)
	endDate := now

	if raw := ctx.Query("start_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected RFC3339",
			})
			return
		}
		startDate = parsed
	}
	if raw := ctx.Query("end_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected RFC3339",
			})
			return
		}
		endDate = parsed
	}

	input := purchase.ListPurchasesInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve purchases",
		})
		return
	}

	response := dto.ToPurchaseListResponse(output.Purchases)
	ctx.JSON(http.StatusOK, response)
}

// handlePurchaseError maps purchase domain errors to HTTP responses.
func (c *PurchaseController) handlePurchaseError(ctx *gin.Context, err error) {
	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		statusCode := http.StatusBadRequest
		if itemErr.Code == domainerror.ErrCodeItemNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: itemErr.Message,
			Code:  string(itemErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
