// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grocery-tracker/backend/internal/application/usecase/item"
	domainerror "github.com/grocery-tracker/backend/internal/domain/error"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/dto"
)

// ItemController handles grocery catalog endpoints.
type ItemController struct {
	createUseCase       *item.CreateItemUseCase
	listUseCase         *item.ListItemsUseCase
	searchUseCase       *item.SearchItemsUseCase
	priceHistoryUseCase *item.GetPriceHistoryUseCase
}

// NewItemController creates a new item controller instance.
func NewItemController(
	createUseCase *item.CreateItemUseCase,
	listUseCase *item.ListItemsUseCase,
	searchUseCase *item.SearchItemsUseCase,
	priceHistoryUseCase *item.GetPriceHistoryUseCase,
) *ItemController {
	return &ItemController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		searchUseCase:       searchUseCase,
		priceHistoryUseCase: priceHistoryUseCase,
	}
}

// Create handles POST /items requests.
func (c *ItemController) Create(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingItemFields),
		})
		return
	}

	input := item.CreateItemInput{
		Name:     req.Name,
		Brand:    req.Brand,
		Category: req.Category,
		Unit:     req.Unit,
		Barcode:  req.Barcode,
		Aliases:  req.Aliases,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	response := dto.ToItemResponse(output.Item)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /items requests.
func (c *ItemController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve items",
		})
		return
	}

	response := dto.ToItemListResponse(output.Items)
	ctx.JSON(http.StatusOK, response)
}

// Search handles GET /items/search requests.
func (c *ItemController) Search(ctx *gin.Context) {
	input := item.SearchItemsInput{
		Query: ctx.Query("q"),
	}

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to search items",
		})
		return
	}

	response := dto.ToItemListResponse(output.Items)
	ctx.JSON(http.StatusOK, response)
}

// PriceHistory handles GET /items/:id/price-history requests.
func (c *ItemController) PriceHistory(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	input := item.GetPriceHistoryInput{
		ItemID: itemID,
	}

	output, err := c.priceHistoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	response := dto.ToPriceHistoryResponse(output.Item, output.Entries)
	ctx.JSON(http.StatusOK, response)
}

// handleItemError maps item domain errors to HTTP responses.
func (c *ItemController) handleItemError(ctx *gin.Context, err error) {
	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		statusCode := c.getStatusCodeForItemError(itemErr.Code)
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

// getStatusCodeForItemError maps item error codes to HTTP status codes.
func (c *ItemController) getStatusCodeForItemError(code domainerror.ItemErrorCode) int {
	switch code {
	case domainerror.ErrCodeItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeItemAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeEmptyItemName,
		domainerror.ErrCodeInvalidPurchaseQuantity,
		domainerror.ErrCodeInvalidPurchaseCost,
		domainerror.ErrCodeMissingItemFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
