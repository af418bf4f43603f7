package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// DefaultNavLimit is the number of courses listed per class in the navbar dropdown.
const DefaultNavLimit = 3

// CourseService defines the interface for catalog queries
type CourseService interface {
	ListCourses(ctx context.Context, filter catalog.Filter) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error)
	NavGroups(ctx context.Context, limit int) []dto.NavGroup
	Pills(ctx context.Context, current url.Values) catalog.PillRows
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	registry *catalog.Registry
	logger   zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(registry *catalog.Registry, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		registry: registry,
		logger:   logger,
	}
}

// ListCourses applies filter to the registry. An unmatched filter is not an error.
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter catalog.Filter) (*dto.CourseListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	courses := catalog.Apply(s.registry, filter)

	s.logger.Debug().
		Interface("filter", filter).
		Int("matched", len(courses)).
		Msg("Catalog query applied")

	return &dto.CourseListResponse{
		Filter:  filter,
		Total:   len(courses),
		Courses: dto.NewCourseResponses(courses),
		Pills:   catalog.Pills(s.registry, filter.Values()),
	}, nil
}

// GetCourse returns one course by id
func (s *courseServiceImpl) GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, ok := s.registry.ByID(id)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("course %q not found", id))
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// NavGroups lists up to limit courses per class level, in registry order.
// A non-positive limit lists every course.
func (s *courseServiceImpl) NavGroups(ctx context.Context, limit int) []dto.NavGroup {
	levels := s.registry.ClassLevels()
	groups := make([]dto.NavGroup, 0, len(levels))

	for _, level := range levels {
		courses := s.registry.ByClass(level)
		if limit > 0 && len(courses) > limit {
			courses = courses[:limit]
		}
		groups = append(groups, dto.NavGroup{
			Class:   level,
			Label:   "Class " + strconv.Itoa(level),
			Courses: dto.NewCourseResponses(courses),
		})
	}

	return groups
}

// Pills builds the filter controls for the given page parameters
func (s *courseServiceImpl) Pills(ctx context.Context, current url.Values) catalog.PillRows {
	return catalog.Pills(s.registry, current)
}
