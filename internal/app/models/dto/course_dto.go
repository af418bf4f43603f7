package dto

import (
	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/catalog"
)

// CourseResponse is a course as shown on a card
type CourseResponse struct {
	ID      string `json:"id" example:"11-accounts"`
	Class   int    `json:"class" example:"11"`
	Stream  string `json:"stream" example:"Commerce"`
	Title   string `json:"title" example:"Class 11 Accounts"`
	Summary string `json:"summary" example:"Expert faculty • Regular tests • Doubt support • Personal attention"`
	Href    string `json:"href" example:"/courses?select=11-accounts"`
}

// NewCourseResponse converts a course to its response form
func NewCourseResponse(c models.Course) CourseResponse {
	return CourseResponse{
		ID:      c.ID,
		Class:   c.ClassLevel,
		Stream:  c.Stream,
		Title:   c.Title,
		Summary: c.Summary(),
		Href:    catalog.SelectLocation(c.ID),
	}
}

// NewCourseResponses converts courses, keeping their order. Never nil.
func NewCourseResponses(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// CourseListResponse is the result of a catalog query
type CourseListResponse struct {
	Filter  catalog.Filter   `json:"filter"`
	Total   int              `json:"total" example:"3"`
	Courses []CourseResponse `json:"courses"`
	Pills   catalog.PillRows `json:"pills"`
}

// NavGroup is one class column of the courses dropdown
type NavGroup struct {
	Class   int              `json:"class" example:"11"`
	Label   string           `json:"label" example:"Class 11"`
	Courses []CourseResponse `json:"courses"`
}
