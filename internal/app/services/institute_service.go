package services

import (
	"context"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
)

// InstituteService exposes the institute profile
type InstituteService interface {
	GetInstitute(ctx context.Context) *dto.InstituteResponse
}

type instituteServiceImpl struct {
	institute models.Institute
	options   []models.EnquiryOptionGroup
}

// NewInstituteService creates a new institute service instance
func NewInstituteService(institute models.Institute, options []models.EnquiryOptionGroup) InstituteService {
	return &instituteServiceImpl{
		institute: institute,
		options:   options,
	}
}

func (s *instituteServiceImpl) GetInstitute(ctx context.Context) *dto.InstituteResponse {
	options := s.options
	if options == nil {
		options = []models.EnquiryOptionGroup{}
	}
	return &dto.InstituteResponse{
		Institute:      s.institute,
		EnquiryOptions: options,
	}
}
