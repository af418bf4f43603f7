package models

import "strconv"

// DefaultCourseSummary is shown for courses without a short description.
const DefaultCourseSummary = "Expert faculty • Regular tests • Doubt support • Personal attention"

// Course represents one offering of the institute's catalog.
type Course struct {
	ID         string `json:"id" yaml:"id"`                 // Stable identifier, referenced from URLs
	ClassLevel int    `json:"class" yaml:"class"`           // School class, e.g. 11 or 12
	Stream     string `json:"stream" yaml:"stream"`         // Commerce, Maths, Science, ...
	Title      string `json:"title" yaml:"title"`           // Display name
	Short      string `json:"short,omitempty" yaml:"short"` // Optional short description
}

// Summary returns the short description or the generic fallback.
func (c Course) Summary() string {
	if c.Short == "" {
		return DefaultCourseSummary
	}
	return c.Short
}

// ClassParam returns the class level in the form used by the "class" URL parameter.
func (c Course) ClassParam() string {
	return strconv.Itoa(c.ClassLevel)
}
