package dto

import "github.com/yigit/coursecatalog/internal/app/models"

// TopperResponse is one entry of the results page
type TopperResponse struct {
	Name    string `json:"name" example:"Anuj Rathore"`
	Class   string `json:"class" example:"Class 10"`
	Stream  string `json:"stream" example:"All Subjects"`
	Score   string `json:"score" example:"97%"`
	Subject string `json:"subject,omitempty" example:"in Maths"`
	Year    int    `json:"year" example:"2025"`
	Rank    int    `json:"rank,omitempty" example:"1"`
}

// ResultsResponse lists toppers, optionally for a single year
type ResultsResponse struct {
	Year    *int             `json:"year,omitempty" example:"2025"`
	Years   []int            `json:"years"`
	Toppers []TopperResponse `json:"toppers"`
}

// NewTopperResponse converts a topper to its response form
func NewTopperResponse(t models.Topper) TopperResponse {
	return TopperResponse{
		Name:    t.Name,
		Class:   t.Class,
		Stream:  t.StreamLabel(),
		Score:   t.Score,
		Subject: t.Subject,
		Year:    t.Year,
		Rank:    t.Rank,
	}
}
