package models

import (
	"strings"
	"time"
)

// Post is an article of the institute blog.
type Post struct {
	Slug     string    `json:"slug" yaml:"slug"` // URL segment under /blog/
	Title    string    `json:"title" yaml:"title"`
	Date     time.Time `json:"date" yaml:"date"`
	Author   string    `json:"author" yaml:"author"`
	Category string    `json:"category,omitempty" yaml:"category"`
	ReadTime string    `json:"readTime,omitempty" yaml:"read_time"` // e.g. "5 min"
	Excerpt  string    `json:"excerpt" yaml:"excerpt"`
	Tags     []string  `json:"tags,omitempty" yaml:"tags"`
	Image    string    `json:"image,omitempty" yaml:"image"`
	Content  string    `json:"content" yaml:"content"` // Line-oriented markdown subset, see catalog.ParseContent
}

// HasTag reports whether the post carries tag, ignoring case.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
