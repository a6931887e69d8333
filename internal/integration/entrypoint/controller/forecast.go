// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grocery-tracker/backend/internal/application/usecase/forecast"
	"github.com/grocery-tracker/backend/internal/integration/entrypoint/dto"
)

// ForecastController handles replenishment forecast endpoints.
type ForecastController struct {
	forecastUseCase *forecast.ForecastReplenishmentUseCase
}

// NewForecastController creates a new forecast controller instance.
func NewForecastController(forecastUseCase *forecast.ForecastReplenishmentUseCase) *ForecastController {
	return &ForecastController{
		forecastUseCase: forecastUseCase,
	}
}

// Upcoming handles GET /forecast/upcoming requests.
func (c *ForecastController) Upcoming(ctx *gin.Context) {
	input := forecast.ForecastReplenishmentInput{
		Now: time.Now().UTC(),
	}

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute forecast",
		})
		return
	}

	response := dto.ToForecastResponse(output.Predictions)
	ctx.JSON(http.StatusOK, response)
}
