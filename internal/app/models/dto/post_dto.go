package dto

import (
	"time"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/helpers"
)

// PostSummary is one card of the blog listing
type PostSummary struct {
	Slug      string    `json:"slug" example:"board-exam-study-plan"`
	Title     string    `json:"title" example:"A 90-Day Study Plan for Board Exams"`
	Date      time.Time `json:"date" example:"2025-01-10T00:00:00Z"`
	DateLabel string    `json:"dateLabel" example:"10 Jan 2025"`
	Author    string    `json:"author" example:"Deepjyoti Faculty"`
	Category  string    `json:"category,omitempty" example:"Exam Preparation"`
	ReadTime  string    `json:"readTime,omitempty" example:"6 min"`
	Excerpt   string    `json:"excerpt" example:"How to split the last three months before the boards."`
	Tags      []string  `json:"tags"`
	Image     string    `json:"image,omitempty"`
	Href      string    `json:"href" example:"/blog/board-exam-study-plan"`
}

// PostResponse is a full article with its content split into blocks
type PostResponse struct {
	PostSummary
	Content string          `json:"content"`
	Blocks  []catalog.Block `json:"blocks"`
}

// PostListResponse lists blog posts, optionally for a single tag
type PostListResponse struct {
	Tag   string        `json:"tag,omitempty" example:"Study Tips"`
	Tags  []string      `json:"tags"`
	Total int           `json:"total" example:"2"`
	Posts []PostSummary `json:"posts"`
}

// NewPostSummary converts a post to its listing form
func NewPostSummary(p models.Post) PostSummary {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostSummary{
		Slug:      p.Slug,
		Title:     p.Title,
		Date:      p.Date,
		DateLabel: helpers.FormatDate(p.Date),
		Author:    p.Author,
		Category:  p.Category,
		ReadTime:  p.ReadTime,
		Excerpt:   p.Excerpt,
		Tags:      tags,
		Image:     p.Image,
		Href:      "/blog/" + p.Slug,
	}
}

// NewPostResponse converts a post to its article form
func NewPostResponse(p models.Post) PostResponse {
	return PostResponse{
		PostSummary: NewPostSummary(p),
		Content:     p.Content,
		Blocks:      catalog.ParseContent(p.Content),
	}
}
