package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/middleware"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// ResultsController handles the toppers listing
type ResultsController struct {
	resultsService services.ResultsService
}

// NewResultsController creates a new ResultsController
func NewResultsController(resultsService services.ResultsService) *ResultsController {
	return &ResultsController{
		resultsService: resultsService,
	}
}

// ListToppers lists toppers
// @Summary List toppers
// @Description Lists the toppers of the institute, optionally for one year
// @Tags results
// @Produce json
// @Param year query int false "Result year" example(2025)
// @Success 200 {object} dto.APIResponse{data=dto.ResultsResponse} "Toppers"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Router /results [get]
func (c *ResultsController) ListToppers(ctx *gin.Context) {
	year, err := parseYear(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	results, err := c.resultsService.ListToppers(ctx.Request.Context(), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results))
}

// parseYear reads the optional year query parameter. Callers render the
// returned validation error in their own format.
func parseYear(ctx *gin.Context) (*int, error) {
	raw := ctx.Query("year")
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid year", map[string]interface{}{
			"year": "year must be a number",
		})
	}
	return &year, nil
}
