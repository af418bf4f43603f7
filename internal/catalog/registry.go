// Package catalog holds the course registry, the query engine over it and
// the adapter between URL query parameters and query filters.
package catalog

import (
	"fmt"
	"strings"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// Source is the read-only view of a registry consumed by the query engine.
type Source interface {
	All() []models.Course
	ByID(id string) (models.Course, bool)
}

// Registry is the ordered, immutable list of courses of one institute.
// It is built once and safe for concurrent readers.
type Registry struct {
	courses []models.Course
	byID    map[string]int
}

// NewRegistry builds a registry from the given courses, keeping their order.
// The input slice is copied.
func NewRegistry(courses []models.Course) (*Registry, error) {
	r := &Registry{
		courses: make([]models.Course, len(courses)),
		byID:    make(map[string]int, len(courses)),
	}
	copy(r.courses, courses)

	for i, c := range r.courses {
		if strings.TrimSpace(c.ID) == "" {
			return nil, fmt.Errorf("%w: course at position %d has an empty id", apperrors.ErrInvalidCatalog, i)
		}
		if prev, exists := r.byID[c.ID]; exists {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", apperrors.ErrDuplicateCourseID, c.ID, prev, i)
		}
		r.byID[c.ID] = i
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(courses []models.Course) *Registry {
	r, err := NewRegistry(courses)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns every course in definition order.
func (r *Registry) All() []models.Course {
	out := make([]models.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// ByClass returns the courses of the given class level, in definition order.
func (r *Registry) ByClass(level int) []models.Course {
	out := []models.Course{}
	for _, c := range r.courses {
		if c.ClassLevel == level {
			out = append(out, c)
		}
	}
	return out
}

// ByID looks a course up by its id.
func (r *Registry) ByID(id string) (models.Course, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.Course{}, false
	}
	return r.courses[i], true
}

// Len returns the number of courses.
func (r *Registry) Len() int {
	return len(r.courses)
}

// ClassLevels returns the distinct class levels in order of first appearance.
func (r *Registry) ClassLevels() []int {
	seen := make(map[int]struct{})
	levels := []int{}
	for _, c := range r.courses {
		if _, ok := seen[c.ClassLevel]; ok {
			continue
		}
		seen[c.ClassLevel] = struct{}{}
		levels = append(levels, c.ClassLevel)
	}
	return levels
}

// Streams returns the distinct streams in order of first appearance.
func (r *Registry) Streams() []string {
	seen := make(map[string]struct{})
	streams := []string{}
	for _, c := range r.courses {
		if _, ok := seen[c.Stream]; ok {
			continue
		}
		seen[c.Stream] = struct{}{}
		streams = append(streams, c.Stream)
	}
	return streams
}
