package services

import (
	"context"
	"slices"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// ResultsService defines the interface for the results page
type ResultsService interface {
	ListToppers(ctx context.Context, year *int) (*dto.ResultsResponse, error)
}

// resultsServiceImpl implements the ResultsService interface
type resultsServiceImpl struct {
	toppers []models.Topper
}

// NewResultsService creates a new results service instance
func NewResultsService(toppers []models.Topper) ResultsService {
	return &resultsServiceImpl{
		toppers: append([]models.Topper(nil), toppers...),
	}
}

// ListToppers returns the toppers in catalog order, optionally restricted to one year.
// Years are listed newest first.
func (s *resultsServiceImpl) ListToppers(ctx context.Context, year *int) (*dto.ResultsResponse, error) {
	if year != nil && *year <= 0 {
		return nil, apperrors.NewValidationError("year must be positive", map[string]interface{}{
			"year": "year must be positive",
		})
	}

	resp := &dto.ResultsResponse{
		Year:    year,
		Years:   []int{},
		Toppers: []dto.TopperResponse{},
	}

	for _, t := range s.toppers {
		if !slices.Contains(resp.Years, t.Year) {
			resp.Years = append(resp.Years, t.Year)
		}
		if year != nil && t.Year != *year {
			continue
		}
		resp.Toppers = append(resp.Toppers, dto.NewTopperResponse(t))
	}
	slices.Sort(resp.Years)
	slices.Reverse(resp.Years)

	return resp, nil
}
