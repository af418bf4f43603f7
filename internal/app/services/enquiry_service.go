package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/validation"
	"github.com/yigit/coursecatalog/internal/pkg/whatsapp"
)

// EnquiryService defines the interface for admission enquiries
type EnquiryService interface {
	Submit(ctx context.Context, req dto.EnquiryRequest) (*dto.EnquiryResponse, error)
}

// enquiryServiceImpl implements the EnquiryService interface
type enquiryServiceImpl struct {
	registry *catalog.Registry
	links    whatsapp.LinkService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewEnquiryService creates a new enquiry service instance
func NewEnquiryService(registry *catalog.Registry, links whatsapp.LinkService, logger zerolog.Logger) EnquiryService {
	return &enquiryServiceImpl{
		registry: registry,
		links:    links,
		validate: validation.New(),
		logger:   logger,
	}
}

// Submit validates req and builds the chat link that carries it.
// An optional course id stands in for the class of interest when the latter is empty.
func (s *enquiryServiceImpl) Submit(ctx context.Context, req dto.EnquiryRequest) (*dto.EnquiryResponse, error) {
	req = normalizeEnquiry(req)

	if err := s.validate.StructCtx(ctx, req); err != nil {
		if fields := validation.FieldErrors(err); fields != nil {
			return nil, apperrors.NewValidationError("invalid enquiry", fields)
		}
		return nil, err
	}

	if req.CourseID != "" {
		course, ok := s.registry.ByID(req.CourseID)
		if !ok {
			return nil, apperrors.NewValidationError("invalid enquiry", map[string]interface{}{
				"courseId": "courseId does not match any course",
			})
		}
		if req.ClassInterest == "" {
			req.ClassInterest = course.Title
		}
	}

	enquiry := whatsapp.Enquiry{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		ClassInterest: req.ClassInterest,
		Message:       req.Message,
	}

	s.logger.Info().
		Str("classInterest", enquiry.ClassInterest).
		Bool("hasEmail", enquiry.Email != "").
		Msg("Admission enquiry received")

	return &dto.EnquiryResponse{
		Message:     s.links.Compose(enquiry),
		WhatsAppURL: s.links.Link(enquiry),
	}, nil
}

func normalizeEnquiry(req dto.EnquiryRequest) dto.EnquiryRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.ClassInterest = strings.TrimSpace(req.ClassInterest)
	req.CourseID = strings.TrimSpace(req.CourseID)
	req.Message = strings.TrimSpace(req.Message)
	return req
}
